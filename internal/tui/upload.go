package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/models"
)

type uploadModel struct {
	input      textinput.Model
	submitting bool
	spinner    spinner.Model
}

func newUploadModel() uploadModel {
	in := textinput.New()
	in.Placeholder = "/path/to/a.jpg, /path/to/b.png"
	in.CharLimit = 4096
	in.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot

	return uploadModel{input: in, spinner: s}
}

// uploadPaths splits a comma separated list of paths, dropping blanks.
func uploadPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (m uploadModel) View(album models.Album) string {
	var b strings.Builder
	b.WriteString("追加する画像のパス (カンマ区切り)\n\n")
	b.WriteString(m.input.View() + "\n")
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " 圧縮してアップロードしています...\n")
	}
	return renderPage(fmt.Sprintf("写真を追加: %s", album.Title), b.String(), "enter: アップロード  esc: 戻る")
}

func (m appModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.upload.submitting {
		if tick, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			m.upload.spinner, cmd = m.upload.spinner.Update(tick)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.upload.input.Blur()
			m.currentScreen = screenAlbum
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			paths := uploadPaths(m.upload.input.Value())
			if len(paths) == 0 {
				m.showErrorf(errorText(service.ErrNoPhotos))
				return m, nil
			}
			files := make([]service.UploadFile, len(paths))
			for i, p := range paths {
				files[i] = service.UploadFromPath(p)
			}
			m.upload.submitting = true
			return m, tea.Batch(m.upload.spinner.Tick, m.cmdUpload(files))
		}
	}

	var cmd tea.Cmd
	m.upload.input, cmd = m.upload.input.Update(msg)
	return m, cmd
}

func (m appModel) onUploaded(msg uploadedMsg) (tea.Model, tea.Cmd) {
	m.upload.submitting = false
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}

	m.upload.input.Reset()
	m.upload.input.Blur()
	m.currentScreen = screenAlbum
	m.album.loading = true
	m.album.status = fmt.Sprintf("%d 枚の写真を追加しました", len(msg.photos))
	return m, tea.Batch(m.album.spinner.Tick, m.cmdLoadPhotos(m.album.album.ID), cmdClearStatus())
}
