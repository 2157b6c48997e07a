package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/models"
)

// albumModel shows the photos of one album in display order. The preview
// page reuses idx as the photo being shown.
type albumModel struct {
	album   models.Album
	photos  []models.Photo
	idx     int
	loading bool
	busy    bool
	spinner spinner.Model
	status  string
}

func newAlbumModel(album models.Album) albumModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return albumModel{album: album, spinner: s, loading: true}
}

func (m albumModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

// wrapIndex moves i by delta inside [0, n), wrapping at both ends.
func wrapIndex(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// movePhoto returns a copy of photos with the photo at i swapped with its
// neighbour in direction delta. ok is false at the edges.
func movePhoto(photos []models.Photo, i, delta int) (moved []models.Photo, ok bool) {
	j := i + delta
	if i < 0 || i >= len(photos) || j < 0 || j >= len(photos) {
		return nil, false
	}
	moved = slices.Clone(photos)
	moved[i], moved[j] = moved[j], moved[i]
	return moved, true
}

func photoLabel(p models.Photo) string {
	label := p.Filename
	if label == "" {
		label = p.ID
	}
	if p.IsUploaded() {
		label += " *"
	}
	return label
}

func (m albumModel) View() string {
	var b strings.Builder

	if m.album.Description != nil {
		b.WriteString(helpStyle.Render(fitText(*m.album.Description, 70)) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " 読み込み中...\n")
	case len(m.photos) == 0:
		b.WriteString("写真がありません\n")
	default:
		for i, p := range m.photos {
			line := fmt.Sprintf("%s%2d. %s", cursor(i == m.idx), p.DisplayOrder, fitText(photoLabel(p), 50))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("* アップロードした写真") + "\n")
	}

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " 保存しています...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(m.album.Title, b.String(),
		"enter: プレビュー  K/J: 並べ替え  d: 削除  a: 追加  s: スライドショー  c: コピー  r: 更新  esc: 戻る")
}

func (m albumModel) PreviewView() string {
	p, ok := m.current()
	if !ok {
		return renderPage(m.album.Title, "", "esc: 戻る")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d / %d\n\n", m.idx+1, len(m.photos))
	fmt.Fprintf(&b, "ファイル名: %s\n", p.Filename)
	if p.Width > 0 && p.Height > 0 {
		fmt.Fprintf(&b, "サイズ:     %d x %d\n", p.Width, p.Height)
	}
	if p.FileSize > 0 {
		fmt.Fprintf(&b, "容量:       %s\n", formatBytes(p.FileSize))
	}
	if p.MimeType != "" {
		fmt.Fprintf(&b, "形式:       %s\n", p.MimeType)
	}
	fmt.Fprintf(&b, "表示順:     %d\n", p.DisplayOrder)
	if p.UploadedAt != nil {
		fmt.Fprintf(&b, "追加日時:   %s\n", p.UploadedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "ソース:     %s\n", fitText(p.Source(), 60))

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(m.album.Title, b.String(), "←/→: 前後の写真  c: コピー  esc: 一覧へ")
}

func (m appModel) updateAlbum(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.album.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenAlbums
			cmd := m.reloadAlbums()
			return m, cmd
		case key.Matches(msg, keys.up):
			if m.album.idx > 0 {
				m.album.idx--
			}
		case key.Matches(msg, keys.down):
			if m.album.idx < len(m.album.photos)-1 {
				m.album.idx++
			}
		case key.Matches(msg, keys.moveUp), key.Matches(msg, keys.moveDown):
			delta := 1
			if key.Matches(msg, keys.moveUp) {
				delta = -1
			}
			moved, ok := movePhoto(m.album.photos, m.album.idx, delta)
			if !ok {
				return m, nil
			}
			m.album.idx += delta
			m.album.busy = true
			return m, tea.Batch(m.album.spinner.Tick, m.cmdReorder(moved))
		case key.Matches(msg, keys.enter):
			if _, ok := m.album.current(); ok {
				m.currentScreen = screenPreview
			}
		case key.Matches(msg, keys.delete):
			p, ok := m.album.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.prompt = deletePrompt(photoLabel(p))
			m.pendingDelete = p.ID
		case key.Matches(msg, keys.upload):
			m.upload = newUploadModel()
			m.currentScreen = screenUpload
			cmd := m.upload.input.Focus()
			return m, cmd
		case key.Matches(msg, keys.slideshow):
			m.currentScreen = screenSlideshow
			m.slideshow = newSlideshowModel(models.DefaultSlideshowSettings(m.album.album.ID))
			return m, m.cmdLoadSettings(m.album.album.ID)
		case key.Matches(msg, keys.copy):
			if p, ok := m.album.current(); ok {
				return m, cmdCopyToClipboard(p.Source())
			}
		case key.Matches(msg, keys.reload):
			m.album.loading = true
			return m, tea.Batch(m.album.spinner.Tick, m.cmdLoadPhotos(m.album.album.ID))
		}
	case spinner.TickMsg:
		if m.album.loading || m.album.busy {
			var cmd tea.Cmd
			m.album.spinner, cmd = m.album.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenAlbum
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.up):
		m.album.idx = wrapIndex(m.album.idx, -1, len(m.album.photos))
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.down):
		m.album.idx = wrapIndex(m.album.idx, 1, len(m.album.photos))
	case key.Matches(keyMsg, keys.copy):
		if p, ok := m.album.current(); ok {
			return m, cmdCopyToClipboard(p.Source())
		}
	}
	return m, nil
}

func (m appModel) onPhotosLoaded(msg photosLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.albumID != m.album.album.ID {
		return m, nil
	}
	m.album.loading = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.album.photos = msg.photos
	m.album.idx = max(0, min(m.album.idx, len(msg.photos)-1))
	return m, nil
}

func (m appModel) onPhotosChanged(msg photosChangedMsg) (tea.Model, tea.Cmd) {
	m.album.busy = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, m.cmdLoadPhotos(m.album.album.ID)
	}
	m.album.photos = msg.photos
	m.album.idx = max(0, min(m.album.idx, len(msg.photos)-1))
	if msg.status != "" {
		m.album.status = msg.status
		return m, cmdClearStatus()
	}
	return m, nil
}
