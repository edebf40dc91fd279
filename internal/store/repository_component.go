package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/models"
)

// componentRepository is the SQL-backed implementation of [ComponentRepository].
type componentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewComponentRepository(db *DB, logger *logger.Logger) ComponentRepository {
	logger.Debug().Msg("creating component repository")
	return &componentRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the form's entire component list in one transaction:
// delete every existing row, then insert the given list with position set
// to the list index. An empty list still runs the delete, which is how a
// builder that dragged everything out persists an empty form.
func (r *componentRepository) ReplaceAll(ctx context.Context, formID string, components []models.Component) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete("components").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error deleting components")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(components) > 0 {
		insert := r.db.builder.
			Insert("components").
			Columns("id", "form_id", "type", "value", "position")
		for position, component := range components {
			insert = insert.Values(component.ID, formID, component.Type, component.Value, position)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error building insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error inserting components")
			return fmt.Errorf("%w: %w", ErrComponentsNotSaved, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*componentRepository.ReplaceAll").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetByForm returns the form's components ordered by their saved position.
func (r *componentRepository) GetByForm(ctx context.Context, formID string) ([]models.Component, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "form_id", "type", "value", "position").
		From("components").
		Where(sq.Eq{"form_id": formID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*componentRepository.GetByForm").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*componentRepository.GetByForm").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var components []models.Component
	for rows.Next() {
		var component models.Component
		if err := rows.Scan(&component.ID, &component.FormID, &component.Type, &component.Value, &component.Position); err != nil {
			log.Err(err).Str("func", "*componentRepository.GetByForm").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		components = append(components, component)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return components, nil
}
