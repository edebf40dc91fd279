package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

// formRepository is the SQL-backed implementation of [FormRepository].
//
// Ownership is enforced in SQL: owner-scoped queries filter on both form id
// and user id, so a form that exists but belongs to someone else produces
// the same [ErrFormNotFound] as a missing one.
type formRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	logger.Debug().Msg("creating form repository")
	return &formRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateForm inserts a new form owned by userID with the default title.
func (r *formRepository) CreateForm(ctx context.Context, userID string) (models.Form, error) {
	log := logger.FromContext(ctx)

	form := models.Form{
		ID:     r.ids.Generate(),
		UserID: userID,
		Title:  models.DefaultFormTitle,
	}

	query, args, err := r.db.builder.
		Insert("forms").
		Columns("id", "user_id", "title").
		Values(form.ID, form.UserID, form.Title).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*formRepository.CreateForm").Msg("error building query")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*formRepository.CreateForm").Msg("error inserting form")
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return form, nil
}

// GetForm retrieves a form by id regardless of owner. Used on the public
// respondent path, where no caller identity exists.
func (r *formRepository) GetForm(ctx context.Context, formID string) (models.Form, error) {
	return r.getForm(ctx, sq.Eq{"id": formID})
}

// GetOwnedForm retrieves a form by id, restricted to the given owner.
func (r *formRepository) GetOwnedForm(ctx context.Context, userID, formID string) (models.Form, error) {
	return r.getForm(ctx, sq.Eq{"id": formID, "user_id": userID})
}

func (r *formRepository) getForm(ctx context.Context, where sq.Eq) (models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "title", "created_at").
		From("forms").
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*formRepository.getForm").Msg("error building query")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var form models.Form
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&form.ID, &form.UserID, &form.Title, &form.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Form{}, ErrFormNotFound
		}
		log.Err(err).Str("func", "*formRepository.getForm").Msg("error: scanning error")
		return models.Form{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return form, nil
}

// ListForms returns all forms owned by userID, newest first.
func (r *formRepository) ListForms(ctx context.Context, userID string) ([]models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "title", "created_at").
		From("forms").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*formRepository.ListForms").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.ListForms").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var forms []models.Form
	for rows.Next() {
		var form models.Form
		if err := rows.Scan(&form.ID, &form.UserID, &form.Title, &form.CreatedAt); err != nil {
			log.Err(err).Str("func", "*formRepository.ListForms").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return forms, nil
}

// UpdateTitle sets the form's title. Called by the title-sync step of a
// replace-all save; a zero-row update means the form vanished underneath us
// and is reported as [ErrFormNotFound].
func (r *formRepository) UpdateTitle(ctx context.Context, formID, title string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("forms").
		Set("title", title).
		Where(sq.Eq{"id": formID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*formRepository.UpdateTitle").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.UpdateTitle").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrFormNotFound
	}

	return nil
}

// DeleteForm removes the form owned by userID. Components and prospects go
// with it via ON DELETE CASCADE.
func (r *formRepository) DeleteForm(ctx context.Context, userID, formID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("forms").
		Where(sq.Eq{"id": formID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*formRepository.DeleteForm").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*formRepository.DeleteForm").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrFormNotFound
	}

	return nil
}
