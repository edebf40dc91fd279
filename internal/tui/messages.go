package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formkeeper/formkeeper/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// re-dispatched to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult carries the outcome of an async login command. A nil Err means
// the token is valid and the flow can finish.
type LoginResult struct {
	Token models.Token
	Err   error
}

// RegisterResult carries the outcome of an async registration command.
type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is passed back to the menu page after a successful
// registration so it can show a confirmation line.
type RegisterSuccessNotice struct {
	Login string
}
