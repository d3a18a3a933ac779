package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/internal/tui"
)

// App runs the client: bootstrap the local collections, restore or acquire a
// session, then hand control to the main loop until exit or logout.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, storages *store.ClientStorages, services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || storages == nil || services == nil || ui == nil {
		return nil, errors.New("app requires config, storages, services and ui")
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		tui:      ui,
		logger:   log,
	}, nil
}

var _ Client = (*App)(nil)

func (a *App) Run() error {
	ctx := context.Background()

	if err := a.bootstrap(ctx); err != nil {
		return err
	}

	user, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		if err := a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		return a.Run()
	}

	return nil
}

// bootstrap seeds the fixed admin account and, unless disabled, the demo
// scan collection. Both steps are no-ops after the first run.
func (a *App) bootstrap(ctx context.Context) error {
	if err := a.storages.Users.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize users: %w", err)
	}

	if a.cfg.SeedDisabled {
		a.logger.Debug().Msg("demo seeding disabled")
		return nil
	}

	if err := a.storages.Scans.Bootstrap(ctx, service.NewSampleSeeder(nil, nil)); err != nil {
		return fmt.Errorf("bootstrap scans: %w", err)
	}

	return nil
}
