package service

import (
	"context"
	"fmt"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/store"
	"github.com/formkeeper/formkeeper/models"
)

// prospectService is the concrete implementation of ProspectService.
//
// Submissions never trust a client-declared shape: the set of accepted answer
// keys is re-derived from the form's stored components on every submit, and
// only the intersection of that set with the raw answers is persisted.
type prospectService struct {
	formRepository      store.FormRepository
	componentRepository store.ComponentRepository
	prospectRepository  store.ProspectRepository
	logger              *logger.Logger
}

func NewProspectService(
	formRepository store.FormRepository,
	componentRepository store.ComponentRepository,
	prospectRepository store.ProspectRepository,
	logger *logger.Logger,
) ProspectService {
	return &prospectService{
		formRepository:      formRepository,
		componentRepository: componentRepository,
		prospectRepository:  prospectRepository,
		logger:              logger,
	}
}

// Submit persists one respondent submission against the form.
//
// The form is looked up without an ownership check (submissions are public);
// a missing form surfaces as store.ErrFormNotFound. Raw answers may carry
// arbitrary extra keys — only those the form actually asks for survive.
func (s *prospectService) Submit(ctx context.Context, formID string, answers map[string]string) (models.Prospect, error) {
	log := logger.FromContext(ctx)

	if _, err := s.formRepository.GetForm(ctx, formID); err != nil {
		return models.Prospect{}, err
	}

	components, err := s.componentRepository.GetByForm(ctx, formID)
	if err != nil {
		return models.Prospect{}, fmt.Errorf("loading components failed: %w", err)
	}

	prospect := ShapeAnswers(RequiredAnswerKeys(components), answers)
	prospect.FormID = formID

	created, err := s.prospectRepository.CreateProspect(ctx, prospect)
	if err != nil {
		log.Err(err).Str("func", "*prospectService.Submit").Msg("prospect creation failed")
		return models.Prospect{}, fmt.Errorf("prospect creation failed: %w", err)
	}

	return created, nil
}

// ListProspects returns the form's submissions, restricted to the owner.
func (s *prospectService) ListProspects(ctx context.Context, userID, formID string) ([]models.Prospect, error) {
	if _, err := s.formRepository.GetOwnedForm(ctx, userID, formID); err != nil {
		return nil, err
	}

	prospects, err := s.prospectRepository.ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("listing prospects failed: %w", err)
	}

	return prospects, nil
}

// RequiredAnswerKeys derives the set of answer keys the form's components ask
// for. Each component contributes zero or more keys (fullname contributes
// two, calendar contributes "date", structural types contribute none); the
// union is deduplicated, so two email components still yield one "email" key.
func RequiredAnswerKeys(components []models.Component) []models.AnswerKey {
	seen := make(map[models.AnswerKey]struct{})
	var keys []models.AnswerKey
	for _, c := range components {
		for _, key := range c.Type.AnswerKeys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

// ShapeAnswers reduces raw submitted answers to exactly the required keys
// that are present on the raw object. Required keys missing from the raw
// answers are omitted, not defaulted; extra raw keys are dropped.
func ShapeAnswers(required []models.AnswerKey, answers map[string]string) models.Prospect {
	var prospect models.Prospect
	for _, key := range required {
		value, ok := answers[string(key)]
		if !ok {
			continue
		}
		if field := prospect.Field(key); field != nil {
			v := value
			*field = &v
		}
	}
	return prospect
}
