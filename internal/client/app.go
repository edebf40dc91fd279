package client

import (
	"context"
	"errors"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/tui"
)

// App is the builder client runtime: authentication flow first, then the
// main loop, with logout cycling back to the start.
type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{server: server, tui: ui, logger: log}, nil
}

// Run blocks until the user quits. The server adapter keeps the bearer token
// between the login flow and the main loop; logout drops it and restarts the
// whole cycle.
func (a *App) Run() error {
	ctx := context.Background()

	token, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Str("func", "Run").Str("userID", token.UserID).Msg("user logged in")

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.server.SetToken("")
		return a.Run()
	}

	return nil
}
