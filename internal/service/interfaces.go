package service

import (
	"context"

	"github.com/formkeeper/formkeeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FormService owns form lifecycle and the replace-all save protocol.
type FormService interface {
	CreateForm(ctx context.Context, userID string) (models.Form, error)
	ListForms(ctx context.Context, userID string) ([]models.Form, error)
	GetForm(ctx context.Context, userID, formID string) (models.FormWithComponents, error)
	GetPreview(ctx context.Context, formID string) (models.FormWithComponents, error)
	SaveComponents(ctx context.Context, userID, formID string, components []models.Component) error
	DeleteForm(ctx context.Context, userID, formID string) error
}

// ProspectService accepts respondent submissions and lists them for owners.
type ProspectService interface {
	Submit(ctx context.Context, formID string, answers map[string]string) (models.Prospect, error)
	ListProspects(ctx context.Context, userID, formID string) ([]models.Prospect, error)
}
