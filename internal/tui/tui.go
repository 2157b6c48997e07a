// Package tui implements the terminal pages of the photo album client.
//
// A single Bubble Tea model switches between screens: login, album list,
// album detail with photo preview, upload, slideshow settings and player,
// and local storage usage. Every service call runs inside a tea.Cmd and
// reports back through a message.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// LoginFlow runs the login pages until a session is established.
// ErrUserQuit is returned when the user leaves without logging in.
func (t *TUI) LoginFlow(ctx context.Context) (models.SessionUser, error) {
	model := newLoginAppModel(t.logger.WithContext(ctx), t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.SessionUser{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.SessionUser{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.SessionUser{}, result.err
	}
	return result.user, nil
}

// MainLoop runs the album pages for the signed in user. logout reports
// whether the user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	user, _ := t.services.Session.User()
	model := newMainAppModel(t.logger.WithContext(ctx), t.services, t.buildInfo, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
