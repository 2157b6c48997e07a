package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/models"
)

const demoDisplayName = "テストユーザー"

type welcomeModel struct {
	items      []string
	idx        int
	submitting bool
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"LINEプロフィールでログイン", "デモユーザーで試す"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("写真アルバムへようこそ\n\n")
	for i, item := range m.items {
		line := cursor(i == m.idx) + item
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.submitting {
		b.WriteString("\nログインしています...")
	}
	return renderPage("go-photo-album", b.String(), "enter: 選択  v: アプリ情報  q: 終了")
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.welcome.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
			return m, nil
		}
		m.welcome.submitting = true
		return m, m.cmdLogin(models.PlatformProfile{
			UserID:      m.services.Session.DemoUserID(),
			DisplayName: demoDisplayName,
		})
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}
