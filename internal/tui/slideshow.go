package tui

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/models"
)

const (
	fieldTransition = iota
	fieldSeconds
	fieldMusic
	fieldLoop
	fieldShuffle
	fieldCount
)

type slideshowModel struct {
	settings models.SlideshowSettings
	field    int
	music    textinput.Model
	loaded   bool
	status   string
}

func newSlideshowModel(settings models.SlideshowSettings) slideshowModel {
	music := textinput.New()
	music.Placeholder = "BGM のファイルまたは URL"
	music.CharLimit = 2048
	music.Width = 50
	music.SetValue(settings.Music)

	return slideshowModel{settings: settings, music: music}
}

// shiftTransition moves to the neighbouring transition, wrapping around.
func shiftTransition(t models.Transition, delta int) models.Transition {
	i := slices.Index(models.Transitions, t)
	if i < 0 {
		return models.Transitions[0]
	}
	return models.Transitions[wrapIndex(i, delta, len(models.Transitions))]
}

func clampSeconds(s int) int {
	return max(models.MinSecondsPerPhoto, min(models.MaxSecondsPerPhoto, s))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m slideshowModel) View(album models.Album) string {
	if !m.loaded {
		return renderPage("スライドショー: "+album.Title, "読み込み中...", "esc: 戻る")
	}

	rows := []string{
		fmt.Sprintf("トランジション  ◀ %s ▶", m.settings.Transition),
		fmt.Sprintf("表示秒数        ◀ %d ▶ 秒", m.settings.SecondsPerPhoto),
		"BGM             " + m.music.View(),
		"ループ再生      " + checkbox(m.settings.Loop),
		"シャッフル      " + checkbox(m.settings.Shuffle),
	}

	var b strings.Builder
	for i, row := range rows {
		line := cursor(i == m.field) + row
		if i == m.field {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("スライドショー: "+album.Title, b.String(),
		"↑/↓: 項目  ←/→: 変更  space: 切替  enter: 保存  p: 再生  esc: 戻る")
}

func (m *slideshowModel) setField(field int) tea.Cmd {
	m.field = field
	if field == fieldMusic {
		return m.music.Focus()
	}
	m.music.Blur()
	return nil
}

func (m appModel) updateSlideshow(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.slideshow.loaded {
		if ok && key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenAlbum
		}
		return m, nil
	}

	s := &m.slideshow
	switch {
	case key.Matches(keyMsg, keys.esc):
		s.music.Blur()
		m.currentScreen = screenAlbum
		return m, nil
	case keyMsg.Type == tea.KeyUp, key.Matches(keyMsg, keys.backtab):
		cmd := s.setField((s.field - 1 + fieldCount) % fieldCount)
		return m, cmd
	case keyMsg.Type == tea.KeyDown, key.Matches(keyMsg, keys.tab):
		cmd := s.setField((s.field + 1) % fieldCount)
		return m, cmd
	case key.Matches(keyMsg, keys.enter):
		s.settings.Music = strings.TrimSpace(s.music.Value())
		return m, m.cmdSaveSettings(s.settings)
	}

	if s.field == fieldMusic {
		var cmd tea.Cmd
		s.music, cmd = s.music.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
		delta := 1
		if key.Matches(keyMsg, keys.left) {
			delta = -1
		}
		switch s.field {
		case fieldTransition:
			s.settings.Transition = shiftTransition(s.settings.Transition, delta)
		case fieldSeconds:
			s.settings.SecondsPerPhoto = clampSeconds(s.settings.SecondsPerPhoto + delta)
		}
	case key.Matches(keyMsg, keys.space):
		switch s.field {
		case fieldLoop:
			s.settings.Loop = !s.settings.Loop
		case fieldShuffle:
			s.settings.Shuffle = !s.settings.Shuffle
		}
	case key.Matches(keyMsg, keys.play):
		if len(m.album.photos) == 0 {
			m.showErrorf(errorText(service.ErrNoPhotos))
			return m, nil
		}
		s.settings.Music = strings.TrimSpace(s.music.Value())
		m.player = newPlayerModel(m.album.photos, s.settings, m.player.seq+1)
		m.currentScreen = screenPlayer
		return m, m.player.tick()
	}

	return m, nil
}

func (m appModel) onSettingsLoaded(msg settingsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.slideshow = newSlideshowModel(msg.settings)
	m.slideshow.loaded = true
	return m, nil
}

func (m appModel) onSettingsSaved(msg settingsSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.reportError(msg.err)
		return m, nil
	}
	m.slideshow.status = "設定を保存しました"
	return m, cmdClearStatus()
}

// playerModel plays the album photos with the chosen settings. Every tick
// carries seq so that ticks scheduled before a pause or a manual step are
// dropped.
type playerModel struct {
	photos   []models.Photo
	settings models.SlideshowSettings
	idx      int
	seq      int
	paused   bool
	finished bool
}

func newPlayerModel(photos []models.Photo, settings models.SlideshowSettings, seq int) playerModel {
	order := slices.Clone(photos)
	if settings.Shuffle {
		rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return playerModel{photos: order, settings: settings, seq: seq}
}

func (m playerModel) tick() tea.Cmd {
	seq := m.seq
	d := time.Duration(clampSeconds(m.settings.SecondsPerPhoto)) * time.Second
	return tea.Tick(d, func(time.Time) tea.Msg {
		return playerTickMsg{seq: seq}
	})
}

// advance moves to the next photo. It reports false when the last photo
// was shown and looping is off.
func (m *playerModel) advance() bool {
	if m.idx+1 >= len(m.photos) {
		if !m.settings.Loop {
			return false
		}
		m.idx = 0
		return true
	}
	m.idx++
	return true
}

func (m playerModel) View() string {
	if len(m.photos) == 0 {
		return renderPage("スライドショー", "", "esc: 終了")
	}

	p := m.photos[m.idx]
	var b strings.Builder
	fmt.Fprintf(&b, "%d / %d  (%s, %d 秒)\n\n", m.idx+1, len(m.photos), m.settings.Transition, m.settings.SecondsPerPhoto)
	b.WriteString(selectedStyle.Render(fitText(photoLabel(p), 60)) + "\n")
	b.WriteString(helpStyle.Render(fitText(p.Source(), 60)) + "\n")
	if m.settings.Music != "" {
		b.WriteString("\n♪ " + fitText(m.settings.Music, 56) + "\n")
	}

	switch {
	case m.finished:
		b.WriteString("\n" + statusStyle.Render("再生が終了しました") + "\n")
	case m.paused:
		b.WriteString("\n" + statusStyle.Render("一時停止中") + "\n")
	}

	return renderPage("スライドショー", b.String(), "space: 一時停止/再開  ←/→: 前後  esc: 終了")
}

func (m appModel) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	p := &m.player
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		p.seq++
		m.currentScreen = screenSlideshow
		return m, nil
	case key.Matches(keyMsg, keys.space):
		p.seq++
		if p.finished {
			p.finished, p.paused, p.idx = false, false, 0
			return m, p.tick()
		}
		p.paused = !p.paused
		if p.paused {
			return m, nil
		}
		return m, p.tick()
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
		delta := 1
		if key.Matches(keyMsg, keys.left) {
			delta = -1
		}
		p.idx = wrapIndex(p.idx, delta, len(p.photos))
		p.finished = false
		p.seq++
		if p.paused {
			return m, nil
		}
		return m, p.tick()
	}
	return m, nil
}

func (m appModel) onPlayerTick(msg playerTickMsg) (tea.Model, tea.Cmd) {
	p := &m.player
	if m.currentScreen != screenPlayer || msg.seq != p.seq || p.paused || p.finished {
		return m, nil
	}
	if !p.advance() {
		p.finished = true
		return m, nil
	}
	return m, p.tick()
}
