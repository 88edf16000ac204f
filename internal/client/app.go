package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/adapter"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/tui"
)

type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, errors.New("server adapter is required")
	}
	if ui == nil {
		return nil, errors.New("terminal ui is required")
	}
	return &App{server: server, tui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Int64("user_id", user.UserID).Msg("signed in")

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.server.SetToken("")
	}
}
