package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/tui"
	"github.com/MKhiriev/go-photo-album/internal/workers"
)

// pendingLogoutTimeout bounds how long the process waits at exit for
// server logouts that are still in flight.
const pendingLogoutTimeout = 3 * time.Second

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers.New(services.AuthCheckJob),
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	session := a.services.Session

	if err := session.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("starting without a saved session")
	}

	if session.State() == service.StateAuthenticated {
		if err := session.CheckAuth(ctx); err != nil {
			a.logger.Info().Err(err).Str("func", "App.Run").Msg("saved session was not accepted")
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	var pending []*workers.Task
	defer func() {
		waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pendingLogoutTimeout)
		defer cancel()
		for _, task := range pending {
			_ = task.Wait(waitCtx)
		}
	}()

	for {
		if _, ok := session.User(); !ok {
			user, err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			a.logger.Info().Str("func", "App.Run").Str("user_id", user.ID).Msg("signed in")
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		pending = append(pending, session.Logout(ctx))
		a.logger.Info().Str("func", "App.Run").Msg("signed out")
	}
}
