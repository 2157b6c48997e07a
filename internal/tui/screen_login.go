// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/models"
)

// loginModel collects the platform profile exchanged for a session token:
// user id, display name and picture URL.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	userID := textinput.New()
	userID.Placeholder = "LINEユーザーID"
	userID.CharLimit = 64
	userID.Focus()

	displayName := textinput.New()
	displayName.Placeholder = "表示名"
	displayName.CharLimit = 100

	picture := textinput.New()
	picture.Placeholder = "プロフィール画像URL (任意)"
	picture.CharLimit = 500

	return loginModel{inputs: []textinput.Model{userID, displayName, picture}}
}

func (m loginModel) profile() models.PlatformProfile {
	return models.PlatformProfile{
		UserID:      strings.TrimSpace(m.inputs[0].Value()),
		DisplayName: strings.TrimSpace(m.inputs[1].Value()),
		PictureURL:  strings.TrimSpace(m.inputs[2].Value()),
	}
}

func (m loginModel) View() string {
	labels := []string{"ユーザーID", "表示名", "画像URL"}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i] + "\n")
		b.WriteString(input.View() + "\n\n")
	}
	if m.submitting {
		b.WriteString("ログインしています...")
	}
	return renderPage("LINEログイン", b.String(), "tab: 次へ  enter: ログイン  esc: 戻る")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.login.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			profile := m.login.profile()
			if profile.UserID == "" {
				m.showErrorf("ユーザーIDを入力してください")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(profile)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}
