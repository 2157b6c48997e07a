package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type createAlbumModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateAlbumModel() createAlbumModel {
	title := textinput.New()
	title.Placeholder = "タイトル"
	title.CharLimit = 255
	title.Focus()

	description := textinput.New()
	description.Placeholder = "説明 (任意)"
	description.CharLimit = 1000

	return createAlbumModel{inputs: []textinput.Model{title, description}}
}

func (m createAlbumModel) View() string {
	var b strings.Builder
	b.WriteString("タイトル\n" + m.inputs[0].View() + "\n\n")
	b.WriteString("説明\n" + m.inputs[1].View() + "\n")
	if m.submitting {
		b.WriteString("\n作成しています...")
	}
	return renderPage("新しいアルバム", b.String(), "tab: 次へ  enter: 作成  esc: 戻る")
}

func (m appModel) updateCreateAlbum(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.create.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAlbums
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create.focus = focusNext(m.create.inputs, m.create.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create.focus = focusPrev(m.create.inputs, m.create.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			title := strings.TrimSpace(m.create.inputs[0].Value())
			if title == "" {
				m.showErrorf("タイトルを入力してください")
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateAlbum(title, m.create.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m appModel) onAlbumCreated(msg albumCreatedMsg) (tea.Model, tea.Cmd) {
	m.create.submitting = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.currentScreen = screenAlbums
	m.albums.status = "「" + msg.album.Title + "」を作成しました"
	reload := m.reloadAlbums()
	return m, tea.Batch(reload, cmdClearStatus())
}
