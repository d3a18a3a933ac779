package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/models"
)

// ErrUserQuit is returned by LoginFlow when the user leaves the program
// without signing in.
var ErrUserQuit = errors.New("user quit the program")

// TUI owns the two interactive flows of the client: the login flow and the
// main loop.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// LoginFlow runs the menu/login/register pages until a session is
// established or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.resultUser.ID).Msg("login flow finished")
	return result.resultUser, nil
}

// MainLoop runs the tabbed main screen for an authenticated user. It returns
// logout=true when the user asked to sign out rather than exit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
