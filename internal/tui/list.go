package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/models"
)

type albumListModel struct {
	albums  []models.Album
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newAlbumListModel() albumListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return albumListModel{spinner: s, loading: true}
}

func (m albumListModel) current() (models.Album, bool) {
	if len(m.albums) == 0 || m.idx < 0 || m.idx >= len(m.albums) {
		return models.Album{}, false
	}
	return m.albums[m.idx], true
}

func (m albumListModel) View(user models.SessionUser) string {
	var b strings.Builder

	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	b.WriteString(name + " さんのアルバム\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " 読み込み中...\n")
	case len(m.albums) == 0:
		b.WriteString("アルバムがありません\n")
	default:
		for i, a := range m.albums {
			line := fmt.Sprintf("%s%s (%d枚)", cursor(i == m.idx), fitText(a.Title, 40), a.PhotoCount)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		if a, ok := m.current(); ok && a.Description != nil {
			b.WriteString("\n" + helpStyle.Render(fitText(*a.Description, 70)) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("アルバム一覧", b.String(),
		"enter: 開く  n: 新規  D: デフォルト作成  u: 容量  r: 更新  L: ログアウト  q: 終了")
}

func (m appModel) updateAlbums(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.albums.idx > 0 {
				m.albums.idx--
			}
		case key.Matches(msg, keys.down):
			if m.albums.idx < len(m.albums.albums)-1 {
				m.albums.idx++
			}
		case key.Matches(msg, keys.enter):
			album, ok := m.albums.current()
			if !ok {
				return m, nil
			}
			m.album = newAlbumModel(album)
			m.currentScreen = screenAlbum
			return m, tea.Batch(m.album.spinner.Tick, m.cmdLoadPhotos(album.ID))
		case key.Matches(msg, keys.newAlbum):
			m.create = newCreateAlbumModel()
			m.currentScreen = screenCreateAlbum
		case key.Matches(msg, keys.defAlbum):
			return m, m.cmdEnsureDefaultAlbum()
		case key.Matches(msg, keys.usage):
			m.usage.loading = true
			m.currentScreen = screenUsage
			return m, m.cmdEstimateUsage()
		case key.Matches(msg, keys.reload):
			cmd := m.reloadAlbums()
			return m, cmd
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.albums.loading {
			var cmd tea.Cmd
			m.albums.spinner, cmd = m.albums.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *appModel) reloadAlbums() tea.Cmd {
	m.albums.loading = true
	return tea.Batch(m.albums.spinner.Tick, m.cmdLoadAlbums())
}

func (m appModel) onAlbumsLoaded(msg albumsLoadedMsg) (tea.Model, tea.Cmd) {
	m.albums.loading = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.albums.albums = msg.albums
	m.albums.idx = max(0, min(m.albums.idx, len(msg.albums)-1))
	return m, nil
}

func (m appModel) onDefaultAlbum(msg defaultAlbumMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	if msg.created {
		m.albums.status = "「" + msg.album.Title + "」を作成しました"
	} else {
		m.albums.status = "デフォルトアルバムは既に存在します"
	}
	reload := m.reloadAlbums()
	return m, tea.Batch(reload, cmdClearStatus())
}
