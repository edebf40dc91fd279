// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the formkeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the builder
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/formkeeper/formkeeper/models"
)

// ServerAdapter defines transport-agnostic communication with the formkeeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the user with the id parsed from
	// the token's subject claim.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateForm creates an empty form owned by the authenticated user and
	// returns it, server-assigned id included.
	CreateForm(ctx context.Context) (models.Form, error)

	// ListForms returns all forms owned by the authenticated user.
	ListForms(ctx context.Context) ([]models.Form, error)

	// GetForm loads a form and its ordered component list for editing.
	GetForm(ctx context.Context, formID string) (models.FormWithComponents, error)

	// SaveComponents issues the replace-all save: the given list fully
	// overwrites the form's stored components, list order carrying position.
	SaveComponents(ctx context.Context, formID string, components []models.Component) error

	// DeleteForm removes a form together with its components and prospects.
	DeleteForm(ctx context.Context, formID string) error

	// GetPreview loads the public respondent view of a form. No token needed.
	GetPreview(ctx context.Context, formID string) (models.FormWithComponents, error)

	// SubmitProspect posts respondent answers against a form. No token needed.
	SubmitProspect(ctx context.Context, formID string, answers map[string]string) error

	// ListProspects returns the submissions collected by an owned form.
	ListProspects(ctx context.Context, formID string) ([]models.Prospect, error)
}
