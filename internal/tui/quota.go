package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/store"
)

// quotaWarningModel is the panel shown when a local write was rejected for
// lack of space. Nothing of the failed write was stored.
type quotaWarningModel struct{}

func (quotaWarningModel) View() string {
	content := errorStyle.Render("ストレージの空き容量がありません") + "\n\n" +
		app.MsgStorageQuota + "\n" +
		"不要な写真を削除するか、すべてのローカルデータを削除してください。\n\n" +
		helpStyle.Render("x: すべてのデータを削除  u: 使用量を確認  esc: 閉じる")
	return overlayBoxStyle.Render(content)
}

// reportError shows err to the user. Quota errors get the quota warning panel
// with its remediation actions; everything else the error overlay.
func (m *appModel) reportError(err error) {
	if errors.Is(err, store.ErrStorageQuota) {
		m.showQuotaWarning = true
		return
	}
	m.showErrorf(errorText(err))
}

func (m appModel) updateQuotaWarning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.clearData):
		m.showQuotaWarning = false
		m.currentScreen = screenUsage
		m.usage.status = ""
		m.showConfirm = true
		m.confirm.prompt = clearDataPrompt
		m.pendingClear = true
	case key.Matches(msg, keys.usage):
		m.showQuotaWarning = false
		m.currentScreen = screenUsage
		m.usage.status = ""
		m.usage.loading = true
		return m, m.cmdEstimateUsage()
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.showQuotaWarning = false
	}
	return m, nil
}
