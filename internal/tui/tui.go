package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/teamgrid/richinfo-server/internal/adapter"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/models"
)

var ErrUserQuit = errors.New("user quit")

// TUI runs the terminal client on top of a server adapter.
type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errors.New("server adapter is required")
	}
	return &TUI{server: server, logger: logger}, nil
}

// LoginFlow runs the authentication screens and returns the signed-in user.
// Returns [ErrUserQuit] if the user exits before authenticating.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newLoginAppModel(ctx, t.server)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.User{}, result.err
	}

	return result.resultUser, nil
}

// MainLoop runs the profile-management screens for an authenticated user.
// Returns logout=true when the user asked to switch accounts.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainAppModel(ctx, t.server, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
