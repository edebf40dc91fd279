package store

import (
	"context"

	"github.com/formkeeper/formkeeper/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// FormRepository is the persistence boundary for forms and their ordered
// component lists.
//
// Owner-scoped methods take the caller's user id and report [ErrFormNotFound]
// both for missing forms and for forms owned by someone else.
type FormRepository interface {
	CreateForm(ctx context.Context, userID string) (models.Form, error)
	GetForm(ctx context.Context, formID string) (models.Form, error)
	GetOwnedForm(ctx context.Context, userID, formID string) (models.Form, error)
	ListForms(ctx context.Context, userID string) ([]models.Form, error)
	UpdateTitle(ctx context.Context, formID, title string) error
	DeleteForm(ctx context.Context, userID, formID string) error
}

// ComponentRepository persists the placed-component list of a form.
//
// ReplaceAll implements replace-all save semantics: inside one transaction
// every existing row of the form is deleted and the given list is inserted
// in order, with position set to the list index. GetByForm returns rows
// ordered by position so the saved order is exactly what loads back.
type ComponentRepository interface {
	ReplaceAll(ctx context.Context, formID string, components []models.Component) error
	GetByForm(ctx context.Context, formID string) ([]models.Component, error)
}

// ProspectRepository persists respondent submissions.
type ProspectRepository interface {
	CreateProspect(ctx context.Context, prospect models.Prospect) (models.Prospect, error)
	ListByForm(ctx context.Context, formID string) ([]models.Prospect, error)
}
