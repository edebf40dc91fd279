// Package tui implements the terminal UI of the form builder client: the
// authentication flow (menu, login, register) and the main loop (forms list,
// drag-and-drop canvas, prospects view). All server communication goes
// through [adapter.ServerAdapter]; the package holds no persistence of its
// own.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/internal/config"
	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/models"
)

// ErrUserQuit is returned by LoginFlow when the user exits the program
// before authenticating. It is not an error condition for the caller.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	server adapter.ServerAdapter
	cfg    *config.ClientConfig
}

func New(server adapter.ServerAdapter, cfg *config.ClientConfig, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server, cfg: cfg}, nil
}

// LoginFlow runs the authentication screens and blocks until the user either
// logs in (the resulting token is returned) or quits ([ErrUserQuit]).
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Token{}, ErrUserQuit
	}

	return result.resultToken, nil
}

// MainLoop runs the forms screen until the user quits or logs out.
// A true logout return means the caller should restart the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.server, t.cfg.PublicBaseURL)
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
