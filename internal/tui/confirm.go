package tui

// confirmModel asks a yes/no question before a destructive action.
type confirmModel struct {
	prompt string
}

func deletePrompt(label string) string {
	return "「" + label + "」を削除しますか?"
}

const clearDataPrompt = "すべてのローカルデータを削除しますか?\nアルバムと写真が削除され、元に戻せません。"

func (m confirmModel) View() string {
	content := m.prompt + "\n\n"
	content += helpStyle.Render("y: はい    n: いいえ")
	return overlayBoxStyle.Render(content)
}
