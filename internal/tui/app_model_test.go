package tui

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/mock"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/models"
)

const testDemoUserID = "test-user-1"

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ad := mock.NewMockServerAdapter(ctrl)
	ad.EXPECT().SetToken(gomock.Any()).AnyTimes()

	storages := store.NewClientStoragesFromKV(store.NewMemoryKV(0), store.NewMemoryKV(0), logger.Nop())
	cfg := config.ClientConfig{
		App:     config.ClientApp{DemoUserID: testDemoUserID},
		Workers: config.ClientWorkers{AuthCheckInterval: time.Hour},
	}
	return service.NewClientServices(storages, ad, cfg, logger.Nop()), ad
}

// newDemoModel returns the album pages signed in as the demo user, whose
// albums live in local storage.
func newDemoModel(t *testing.T) appModel {
	t.Helper()
	services, _ := newTestServices(t)
	user := models.SessionUser{ID: testDemoUserID, DisplayName: demoDisplayName}
	require.NoError(t, services.Session.Login(context.Background(), "tok", user))

	return newMainAppModel(context.Background(), services, models.NewAppBuildInfo("", "", ""), user)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func TestAppModel_QuitOnWelcome(t *testing.T) {
	services, _ := newTestServices(t)
	m := newLoginAppModel(context.Background(), services, models.AppBuildInfo{})

	m, cmd := update(t, m, keyPress("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.err, ErrUserQuit)
}

func TestAppModel_DemoLogin(t *testing.T) {
	services, ad := newTestServices(t)
	user := models.SessionUser{ID: testDemoUserID, DisplayName: demoDisplayName}
	ad.EXPECT().
		LoginWithProfile(gomock.Any(), models.PlatformProfile{UserID: testDemoUserID, DisplayName: demoDisplayName}).
		Return(models.AuthResponse{Success: true, Token: "tok", User: user}, nil)

	m := newLoginAppModel(context.Background(), services, models.AppBuildInfo{})
	m, _ = update(t, m, keyPress("down"))
	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.welcome.submitting)

	m, cmd = update(t, m, cmd())

	assert.Equal(t, user, m.user)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, services.Session.IsDemoUser())
}

func TestAppModel_LoginRequiresUserID(t *testing.T) {
	services, _ := newTestServices(t)
	m := newLoginAppModel(context.Background(), services, models.AppBuildInfo{})

	m, _ = update(t, m, keyPress("enter"))
	require.Equal(t, screenLogin, m.currentScreen)

	m, cmd := update(t, m, keyPress("enter"))

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.False(t, m.login.submitting)

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showError)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestAppModel_DemoAlbumFlow(t *testing.T) {
	m := newDemoModel(t)

	m, _ = update(t, m, m.cmdEnsureDefaultAlbum()())
	assert.Contains(t, m.albums.status, models.DefaultAlbumTitle)

	m, _ = update(t, m, m.cmdLoadAlbums()())
	require.Len(t, m.albums.albums, 1)
	assert.False(t, m.albums.loading)

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	require.Equal(t, screenAlbum, m.currentScreen)
	assert.Equal(t, models.DefaultAlbumID, m.album.album.ID)

	m, _ = update(t, m, m.cmdLoadPhotos(m.album.album.ID)())
	require.Len(t, m.album.photos, 6)
	first, second := m.album.photos[0].ID, m.album.photos[1].ID

	// Move the first photo down.
	m, cmd = update(t, m, keyPress("J"))
	require.NotNil(t, cmd)
	assert.True(t, m.album.busy)
	assert.Equal(t, 1, m.album.idx)

	moved, ok := movePhoto(m.album.photos, 0, 1)
	require.True(t, ok)
	m, _ = update(t, m, m.cmdReorder(moved)())
	assert.False(t, m.album.busy)
	assert.Equal(t, second, m.album.photos[0].ID)
	assert.Equal(t, first, m.album.photos[1].ID)
	for i, p := range m.album.photos {
		assert.Equal(t, i+1, p.DisplayOrder)
	}

	// Preview wraps around.
	m, _ = update(t, m, keyPress("enter"))
	require.Equal(t, screenPreview, m.currentScreen)
	m, _ = update(t, m, keyPress("right"))
	assert.Equal(t, 2, m.album.idx)
	m.album.idx = 5
	m, _ = update(t, m, keyPress("right"))
	assert.Equal(t, 0, m.album.idx)
	m, _ = update(t, m, keyPress("left"))
	assert.Equal(t, 5, m.album.idx)

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, screenAlbum, m.currentScreen)

	m, cmd = update(t, m, keyPress("esc"))
	assert.Equal(t, screenAlbums, m.currentScreen)
	assert.True(t, m.albums.loading)
	assert.NotNil(t, cmd)
}

func TestAppModel_DeleteNeedsConfirmation(t *testing.T) {
	m := newDemoModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1", Title: "Trip"})
	m.album.loading = false
	m.album.photos = []models.Photo{{ID: "p1", Filename: "one.jpg"}, {ID: "p2", Filename: "two.jpg"}}
	m.currentScreen = screenAlbum

	m, cmd := update(t, m, keyPress("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Equal(t, "p1", m.pendingDelete)
	assert.Contains(t, m.View(), "one.jpg")

	m, cmd = update(t, m, keyPress("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete)
	assert.Len(t, m.album.photos, 2)

	m, _ = update(t, m, keyPress("d"))
	m, cmd = update(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = update(t, m, cmd())
	require.Len(t, m.album.photos, 1)
	assert.Equal(t, "p2", m.album.photos[0].ID)
	assert.Equal(t, "写真を削除しました", m.album.status)
}

func TestAppModel_UploadRejectsEmptyInput(t *testing.T) {
	m := newDemoModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1", Title: "Trip"})
	m.currentScreen = screenAlbum

	m, _ = update(t, m, keyPress("a"))
	require.Equal(t, screenUpload, m.currentScreen)

	m, cmd := update(t, m, keyPress("enter"))

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.False(t, m.upload.submitting)
}

func TestAppModel_SlideshowSettings(t *testing.T) {
	m := newDemoModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1", Title: "Trip"})
	m.album.photos = []models.Photo{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	m.currentScreen = screenAlbum

	m, cmd := update(t, m, keyPress("s"))
	require.NotNil(t, cmd)
	require.Equal(t, screenSlideshow, m.currentScreen)

	m, _ = update(t, m, cmd())
	require.True(t, m.slideshow.loaded)
	assert.Equal(t, models.DefaultSlideshowSettings("a1"), m.slideshow.settings)

	// Transition: fade -> slide.
	m, _ = update(t, m, keyPress("right"))
	assert.Equal(t, models.TransitionSlide, m.slideshow.settings.Transition)

	// Seconds stay inside the allowed range.
	m, _ = update(t, m, keyPress("down"))
	for range 5 {
		m, _ = update(t, m, keyPress("right"))
	}
	assert.Equal(t, models.MaxSecondsPerPhoto, m.slideshow.settings.SecondsPerPhoto)

	// Skip the music field and toggle shuffle.
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	require.Equal(t, fieldShuffle, m.slideshow.field)
	m, _ = update(t, m, keyPress(" "))
	assert.True(t, m.slideshow.settings.Shuffle)

	m, cmd = update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())
	assert.Equal(t, "設定を保存しました", m.slideshow.status)
	assert.NotNil(t, cmd)

	stored, err := m.services.SlideshowService.Settings(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, m.slideshow.settings, stored)
}

func TestAppModel_Player(t *testing.T) {
	m := newDemoModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1"})
	m.album.photos = []models.Photo{{ID: "p1"}, {ID: "p2"}}
	settings := models.DefaultSlideshowSettings("a1")
	settings.Loop = false
	m.slideshow = newSlideshowModel(settings)
	m.slideshow.loaded = true
	m.currentScreen = screenSlideshow

	m, cmd := update(t, m, keyPress("p"))
	require.NotNil(t, cmd)
	require.Equal(t, screenPlayer, m.currentScreen)
	seq := m.player.seq

	// Stale ticks are dropped.
	m, cmd = update(t, m, playerTickMsg{seq: seq - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.player.idx)

	m, cmd = update(t, m, playerTickMsg{seq: seq})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.player.idx)

	// The last photo ends a run without loop.
	m, cmd = update(t, m, playerTickMsg{seq: seq})
	assert.Nil(t, cmd)
	assert.True(t, m.player.finished)
	assert.Equal(t, 1, m.player.idx)

	// Space restarts a finished run from the first photo.
	m, cmd = update(t, m, keyPress(" "))
	assert.NotNil(t, cmd)
	assert.False(t, m.player.finished)
	assert.Equal(t, 0, m.player.idx)

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, screenSlideshow, m.currentScreen)
}

func TestAppModel_PlayWithoutPhotos(t *testing.T) {
	m := newDemoModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1"})
	m.slideshow = newSlideshowModel(models.DefaultSlideshowSettings("a1"))
	m.slideshow.loaded = true
	m.currentScreen = screenSlideshow

	m, cmd := update(t, m, keyPress("p"))

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, screenSlideshow, m.currentScreen)
}

func TestPlayerModel_Advance(t *testing.T) {
	photos := []models.Photo{{ID: "a"}, {ID: "b"}}

	looping := newPlayerModel(photos, models.DefaultSlideshowSettings("x"), 1)
	assert.True(t, looping.advance())
	assert.True(t, looping.advance())
	assert.Equal(t, 0, looping.idx)

	settings := models.DefaultSlideshowSettings("x")
	settings.Loop = false
	once := newPlayerModel(photos, settings, 1)
	assert.True(t, once.advance())
	assert.False(t, once.advance())
	assert.Equal(t, 1, once.idx)
}

func TestPlayerModel_ShuffleKeepsEveryPhoto(t *testing.T) {
	photos := []models.Photo{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	settings := models.DefaultSlideshowSettings("x")
	settings.Shuffle = true

	p := newPlayerModel(photos, settings, 1)

	assert.ElementsMatch(t, photos, p.photos)
	assert.Equal(t, "a", photos[0].ID, "album order is not modified")
}

func TestAppModel_UsageScreen(t *testing.T) {
	m := newDemoModel(t)

	m, cmd := update(t, m, keyPress("u"))
	require.NotNil(t, cmd)
	require.Equal(t, screenUsage, m.currentScreen)
	assert.True(t, m.usage.loading)

	m, _ = update(t, m, cmd())
	assert.False(t, m.usage.loading)
	assert.Positive(t, m.usage.usage.UsedBytes, "the saved session takes space")
	assert.Contains(t, m.View(), "ストレージ使用量")

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, screenAlbums, m.currentScreen)
}

func TestAppModel_ClearLocalData(t *testing.T) {
	m := newDemoModel(t)
	ctx := context.Background()

	_, err := m.services.AlbumService.CreateAlbum(ctx, "旅行", "")
	require.NoError(t, err)

	m, cmd := update(t, m, keyPress("u"))
	m, _ = update(t, m, cmd())

	// declined
	m, _ = update(t, m, keyPress("x"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "すべてのローカルデータを削除しますか")
	m, cmd = update(t, m, keyPress("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.False(t, m.pendingClear)

	// confirmed
	m, _ = update(t, m, keyPress("x"))
	m, cmd = update(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.True(t, m.usage.loading)

	cleared, ok := cmd().(localDataClearedMsg)
	require.True(t, ok)
	require.NoError(t, cleared.err)
	assert.Positive(t, cleared.removed)

	m, cmd = update(t, m, cleared)
	require.NotNil(t, cmd)
	assert.Contains(t, m.usage.status, "件のデータを削除しました")

	albums, err := m.services.AlbumService.ListAlbums(ctx)
	require.NoError(t, err)
	for _, a := range albums {
		assert.NotEqual(t, "旅行", a.Title)
	}

	_, ok = m.services.Session.User()
	assert.True(t, ok, "the session survives clearing")
}

// newQuotaModel is signed in as the demo user on a persistent store too
// small for any photo.
func newQuotaModel(t *testing.T) appModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	ad := mock.NewMockServerAdapter(ctrl)
	ad.EXPECT().SetToken(gomock.Any()).AnyTimes()

	storages := store.NewClientStoragesFromKV(store.NewMemoryKV(300), store.NewMemoryKV(0), logger.Nop())
	cfg := config.ClientConfig{
		App:     config.ClientApp{DemoUserID: testDemoUserID},
		Workers: config.ClientWorkers{AuthCheckInterval: time.Hour},
	}
	services := service.NewClientServices(storages, ad, cfg, logger.Nop())

	user := models.SessionUser{ID: testDemoUserID, DisplayName: demoDisplayName}
	require.NoError(t, services.Session.Login(context.Background(), "tok", user))
	return newMainAppModel(context.Background(), services, models.NewAppBuildInfo("", "", ""), user)
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x * y), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestAppModel_UploadOverQuotaOffersClearing(t *testing.T) {
	m := newQuotaModel(t)
	m.album = newAlbumModel(models.Album{ID: "a1", Title: "旅行"})
	m.currentScreen = screenUpload

	msg := m.cmdUpload([]service.UploadFile{service.UploadFromPath(writePNG(t, 32, 32))})()
	uploaded, ok := msg.(uploadedMsg)
	require.True(t, ok)
	require.ErrorIs(t, uploaded.err, store.ErrStorageQuota)

	m, cmd := update(t, m, uploaded)
	assert.Nil(t, cmd)
	assert.True(t, m.showQuotaWarning)
	assert.False(t, m.showError, "quota errors use their own panel")
	assert.Contains(t, m.View(), "すべてのデータを削除")

	// esc only dismisses the panel
	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showQuotaWarning)
	assert.Equal(t, screenUpload, m.currentScreen)

	m, _ = update(t, m, uploaded)
	m, cmd = update(t, m, keyPress("x"))
	assert.Nil(t, cmd)
	assert.False(t, m.showQuotaWarning)
	assert.Equal(t, screenUsage, m.currentScreen)
	assert.True(t, m.showConfirm)
	assert.True(t, m.pendingClear)

	m, cmd = update(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	cleared, ok := cmd().(localDataClearedMsg)
	require.True(t, ok)
	require.NoError(t, cleared.err)

	m, _ = update(t, m, cleared)
	assert.Contains(t, m.usage.status, "件のデータを削除しました")
}

func TestAppModel_QuotaWarningShowsUsage(t *testing.T) {
	m := newQuotaModel(t)

	m, _ = update(t, m, settingsSavedMsg{err: store.ErrStorageQuota})
	require.True(t, m.showQuotaWarning)

	m, cmd := update(t, m, keyPress("u"))
	require.NotNil(t, cmd)
	assert.Equal(t, screenUsage, m.currentScreen)
	assert.True(t, m.usage.loading)
	assert.False(t, m.showConfirm)
}

func TestAppModel_OtherErrorsUseOverlay(t *testing.T) {
	m := newDemoModel(t)

	m, _ = update(t, m, uploadedMsg{err: service.ErrNoPhotos})
	assert.True(t, m.showError)
	assert.False(t, m.showQuotaWarning)
}

func TestAppModel_BuildInfoOnlyOnMenus(t *testing.T) {
	m := newDemoModel(t)

	m, _ = update(t, m, keyPress("v"))
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "N/A")

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showBuildInfo)

	m.currentScreen = screenCreateAlbum
	m.create = newCreateAlbumModel()
	m, _ = update(t, m, keyPress("v"))
	assert.False(t, m.showBuildInfo)
	assert.Equal(t, "v", m.create.inputs[0].Value())
}

func TestAppModel_LogoutKey(t *testing.T) {
	m := newDemoModel(t)

	m, cmd := update(t, m, keyPress("L"))

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
