package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenAlbums
	screenCreateAlbum
	screenAlbum
	screenPreview
	screenUpload
	screenSlideshow
	screenPlayer
	screenUsage
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	mode          appMode
	currentScreen screen

	welcome   welcomeModel
	login     loginModel
	albums    albumListModel
	create    createAlbumModel
	album     albumModel
	upload    uploadModel
	slideshow slideshowModel
	player    playerModel
	usage     usageModel

	user             models.SessionUser
	err              error
	showError        bool
	errorOverlay     errorOverlayModel
	showQuotaWarning bool
	showConfirm      bool
	confirm          confirmModel
	pendingDelete    string
	pendingClear     bool
	showBuildInfo    bool
	logout           bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		albums:        newAlbumListModel(),
		upload:        newUploadModel(),
		usage:         newUsageModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, user models.SessionUser) appModel {
	m := newLoginAppModel(ctx, services, buildInfo)
	m.mode = modeMain
	m.user = user
	m.currentScreen = screenAlbums
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.albums.spinner.Tick, m.cmdLoadAlbums())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			if m.mode == modeLogin {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showQuotaWarning {
			return m.updateQuotaWarning(msg)
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.version) && m.isMenuScreen() {
			m.showBuildInfo = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.usage.bar.Width = max(10, min(60, msg.Width-8))
		return m, nil

	case loggedInMsg:
		m.login.submitting = false
		m.welcome.submitting = false
		if msg.err != nil {
			m.reportError(msg.err)
			return m, nil
		}
		m.user = msg.user
		return m, tea.Quit

	case albumsLoadedMsg:
		return m.onAlbumsLoaded(msg)
	case albumCreatedMsg:
		return m.onAlbumCreated(msg)
	case defaultAlbumMsg:
		return m.onDefaultAlbum(msg)
	case photosLoadedMsg:
		return m.onPhotosLoaded(msg)
	case photosChangedMsg:
		return m.onPhotosChanged(msg)
	case uploadedMsg:
		return m.onUploaded(msg)
	case settingsLoadedMsg:
		return m.onSettingsLoaded(msg)
	case settingsSavedMsg:
		return m.onSettingsSaved(msg)
	case usageLoadedMsg:
		return m.onUsageLoaded(msg)
	case localDataClearedMsg:
		return m.onLocalDataCleared(msg)
	case playerTickMsg:
		return m.onPlayerTick(msg)

	case failedMsg:
		m.reportError(msg.err)
		return m, nil
	case copiedMsg:
		m.setStatus("コピーしました")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenAlbums:
		return m.updateAlbums(msg)
	case screenCreateAlbum:
		return m.updateCreateAlbum(msg)
	case screenAlbum:
		return m.updateAlbum(msg)
	case screenPreview:
		return m.updatePreview(msg)
	case screenUpload:
		return m.updateUpload(msg)
	case screenSlideshow:
		return m.updateSlideshow(msg)
	case screenPlayer:
		return m.updatePlayer(msg)
	case screenUsage:
		return m.updateUsage(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenAlbums:
		body = m.albums.View(m.user)
	case screenCreateAlbum:
		body = m.create.View()
	case screenAlbum:
		body = m.album.View()
	case screenPreview:
		body = m.album.PreviewView()
	case screenUpload:
		body = m.upload.View(m.album.album)
	case screenSlideshow:
		body = m.slideshow.View(m.album.album)
	case screenPlayer:
		body = m.player.View()
	case screenUsage:
		body = m.usage.View()
	}

	if m.showQuotaWarning {
		body += "\n\n" + quotaWarningModel{}.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	m.albums.status = status
	m.album.status = status
	m.slideshow.status = status
}

func (m appModel) isMenuScreen() bool {
	return m.currentScreen == screenWelcome || m.currentScreen == screenAlbums
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		photoID, clearAll := m.pendingDelete, m.pendingClear
		m.resetConfirm()
		switch {
		case clearAll:
			m.usage.loading = true
			return m, m.cmdClearLocalData()
		case photoID != "":
			return m, m.cmdDeletePhoto(photoID)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.resetConfirm()
	}
	return m, nil
}

func (m *appModel) resetConfirm() {
	m.showConfirm = false
	m.pendingDelete = ""
	m.pendingClear = false
}

func (m appModel) cmdLogin(profile models.PlatformProfile) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		user, err := session.LoginWithPlatformProfile(ctx, profile)
		return loggedInMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadAlbums() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AlbumService
	return func() tea.Msg {
		albums, err := svc.ListAlbums(ctx)
		return albumsLoadedMsg{albums: albums, err: err}
	}
}

func (m appModel) cmdCreateAlbum(title, description string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AlbumService
	return func() tea.Msg {
		album, err := svc.CreateAlbum(ctx, title, description)
		return albumCreatedMsg{album: album, err: err}
	}
}

func (m appModel) cmdEnsureDefaultAlbum() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AlbumService
	return func() tea.Msg {
		album, created, err := svc.EnsureDefaultAlbum(ctx)
		return defaultAlbumMsg{album: album, created: created, err: err}
	}
}

func (m appModel) cmdLoadPhotos(albumID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PhotoService
	return func() tea.Msg {
		photos, err := svc.List(ctx, albumID)
		return photosLoadedMsg{albumID: albumID, photos: photos, err: err}
	}
}

func (m appModel) cmdReorder(photos []models.Photo) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PhotoService
	albumID := m.album.album.ID
	return func() tea.Msg {
		reordered, err := svc.Reorder(ctx, albumID, photos)
		return photosChangedMsg{photos: reordered, err: err}
	}
}

func (m appModel) cmdDeletePhoto(photoID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PhotoService
	albumID := m.album.album.ID
	photos := m.album.photos
	return func() tea.Msg {
		remaining, err := svc.Delete(ctx, albumID, photos, photoID)
		return photosChangedMsg{photos: remaining, status: "写真を削除しました", err: err}
	}
}

func (m appModel) cmdUpload(files []service.UploadFile) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PhotoService
	albumID := m.album.album.ID
	return func() tea.Msg {
		photos, err := svc.Upload(ctx, albumID, files)
		return uploadedMsg{photos: photos, err: err}
	}
}

func (m appModel) cmdLoadSettings(albumID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SlideshowService
	return func() tea.Msg {
		settings, err := svc.Settings(ctx, albumID)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdSaveSettings(settings models.SlideshowSettings) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SlideshowService
	return func() tea.Msg {
		return settingsSavedMsg{err: svc.SaveSettings(ctx, settings)}
	}
}

func (m appModel) cmdEstimateUsage() tea.Cmd {
	ctx := m.ctx
	monitor := m.services.StorageUsage
	return func() tea.Msg {
		usage, err := monitor.EstimateUsage(ctx)
		return usageLoadedMsg{usage: usage, err: err}
	}
}

func (m appModel) cmdClearLocalData() tea.Cmd {
	ctx := m.ctx
	monitor := m.services.StorageUsage
	return func() tea.Msg {
		removed, err := monitor.ClearLocalData(ctx)
		return localDataClearedMsg{removed: removed, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return failedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
