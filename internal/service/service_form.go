package service

import (
	"context"
	"fmt"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/store"
	"github.com/formkeeper/formkeeper/models"
)

// formService is the concrete implementation of FormService.
//
// Saves follow a replace-all protocol: the incoming list fully overwrites the
// stored one, positions taken from list order. After every successful list
// write the form title is re-derived from the heading components.
type formService struct {
	formRepository      store.FormRepository
	componentRepository store.ComponentRepository
	logger              *logger.Logger
}

func NewFormService(formRepository store.FormRepository, componentRepository store.ComponentRepository, logger *logger.Logger) FormService {
	return &formService{
		formRepository:      formRepository,
		componentRepository: componentRepository,
		logger:              logger,
	}
}

// CreateForm creates an empty form owned by userID with the default title.
func (s *formService) CreateForm(ctx context.Context, userID string) (models.Form, error) {
	log := logger.FromContext(ctx)

	form, err := s.formRepository.CreateForm(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*formService.CreateForm").Msg("form creation failed")
		return models.Form{}, fmt.Errorf("form creation failed: %w", err)
	}

	return form, nil
}

// ListForms returns all forms owned by userID.
func (s *formService) ListForms(ctx context.Context, userID string) ([]models.Form, error) {
	forms, err := s.formRepository.ListForms(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing forms failed: %w", err)
	}

	return forms, nil
}

// GetForm returns the form and its ordered component list, restricted to the
// owner. A missing or foreign form surfaces as store.ErrFormNotFound.
func (s *formService) GetForm(ctx context.Context, userID, formID string) (models.FormWithComponents, error) {
	form, err := s.formRepository.GetOwnedForm(ctx, userID, formID)
	if err != nil {
		return models.FormWithComponents{}, err
	}

	return s.withComponents(ctx, form)
}

// GetPreview returns the form and its ordered component list without an
// ownership check. This backs the public respondent view of a shared form.
func (s *formService) GetPreview(ctx context.Context, formID string) (models.FormWithComponents, error) {
	form, err := s.formRepository.GetForm(ctx, formID)
	if err != nil {
		return models.FormWithComponents{}, err
	}

	return s.withComponents(ctx, form)
}

func (s *formService) withComponents(ctx context.Context, form models.Form) (models.FormWithComponents, error) {
	components, err := s.componentRepository.GetByForm(ctx, form.ID)
	if err != nil {
		return models.FormWithComponents{}, fmt.Errorf("loading components failed: %w", err)
	}

	return models.FormWithComponents{
		Form:       form,
		Components: components,
	}, nil
}

// SaveComponents overwrites the form's component list with the given one and
// re-derives the title.
//
// Every component type must belong to the closed enumeration; a payload with
// an unknown type is rejected with ErrUnknownComponentType before anything is
// written. Ownership is checked first, so an unauthorized caller never
// triggers a write. An empty list is a valid save and empties the form.
func (s *formService) SaveComponents(ctx context.Context, userID, formID string, components []models.Component) error {
	log := logger.FromContext(ctx)

	for _, c := range components {
		if _, err := models.ParseComponentType(string(c.Type)); err != nil {
			log.Error().
				Str("func", "*formService.SaveComponents").
				Str("type", string(c.Type)).
				Msg("save rejected: unknown component type")
			return ErrUnknownComponentType
		}
	}

	form, err := s.formRepository.GetOwnedForm(ctx, userID, formID)
	if err != nil {
		return err
	}

	if err := s.componentRepository.ReplaceAll(ctx, formID, components); err != nil {
		log.Err(err).Str("func", "*formService.SaveComponents").Msg("replace-all write failed")
		return fmt.Errorf("replace-all write failed: %w", err)
	}

	if title, ok := titleFromComponents(components); ok && title != form.Title {
		if err := s.formRepository.UpdateTitle(ctx, formID, title); err != nil {
			log.Err(err).Str("func", "*formService.SaveComponents").Msg("title sync failed")
			return fmt.Errorf("title sync failed: %w", err)
		}
	}

	return nil
}

// titleFromComponents derives the form title from the component list: the
// value of the last heading wins. With no heading present it reports false
// and the title keeps its prior value.
func titleFromComponents(components []models.Component) (string, bool) {
	title, found := "", false
	for _, c := range components {
		if c.Type == models.Heading {
			title, found = c.Value, true
		}
	}
	return title, found
}

// DeleteForm removes the form owned by userID together with its components
// and prospects.
func (s *formService) DeleteForm(ctx context.Context, userID, formID string) error {
	log := logger.FromContext(ctx)

	if err := s.formRepository.DeleteForm(ctx, userID, formID); err != nil {
		log.Err(err).Str("func", "*formService.DeleteForm").Msg("form deletion failed")
		return err
	}

	return nil
}
