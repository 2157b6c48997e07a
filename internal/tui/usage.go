// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/models"
)

type usageModel struct {
	usage   models.StorageUsage
	loading bool
	bar     progress.Model
	status  string
}

func newUsageModel() usageModel {
	return usageModel{bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))}
}

func (m usageModel) View() string {
	if m.loading {
		return renderPage("ストレージ使用量", "計算しています...", "esc: 戻る")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "使用量: %s\n", formatBytes(m.usage.UsedBytes))
	if m.usage.QuotaBytes > 0 {
		pct := m.usage.UsagePercentage()
		fmt.Fprintf(&b, "上限:   %s\n\n", formatBytes(m.usage.QuotaBytes))
		b.WriteString(m.bar.ViewAs(min(pct, 100)/100) + "\n")
	} else {
		b.WriteString("上限:   不明\n")
	}
	if m.usage.Estimated {
		b.WriteString("\n" + helpStyle.Render("※ 概算値です") + "\n")
	}
	if !m.usage.IsAvailable {
		b.WriteString("\n" + errorStyle.Render("空き容量が不足しています。不要な写真を削除するか、x ですべてのデータを削除してください") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("ストレージ使用量", b.String(), "r: 再計算  x: すべてのデータを削除  esc: 戻る")
}

func (m appModel) updateUsage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.usage.status = ""
		m.currentScreen = screenAlbums
	case key.Matches(keyMsg, keys.clearData):
		if m.usage.loading {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.prompt = clearDataPrompt
		m.pendingClear = true
	case key.Matches(keyMsg, keys.reload):
		m.usage.loading = true
		return m, m.cmdEstimateUsage()
	}
	return m, nil
}

func (m appModel) onUsageLoaded(msg usageLoadedMsg) (tea.Model, tea.Cmd) {
	m.usage.loading = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.usage.usage = msg.usage
	return m, nil
}

// onLocalDataCleared re-estimates usage after the stores were emptied.
func (m appModel) onLocalDataCleared(msg localDataClearedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.usage.loading = false
		m.reportError(msg.err)
		return m, nil
	}
	m.usage.status = fmt.Sprintf("%d 件のデータを削除しました", msg.removed)
	reload := m.reloadAlbums()
	return m, tea.Batch(reload, m.cmdEstimateUsage())
}
