package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

// prospectRepository is the SQL-backed implementation of [ProspectRepository].
type prospectRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewProspectRepository(db *DB, logger *logger.Logger) ProspectRepository {
	logger.Debug().Msg("creating prospect repository")
	return &prospectRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateProspect inserts one respondent submission. Answer columns the form
// did not ask for are stored as NULL.
func (r *prospectRepository) CreateProspect(ctx context.Context, prospect models.Prospect) (models.Prospect, error) {
	log := logger.FromContext(ctx)

	prospect.ID = r.ids.Generate()

	query, args, err := r.db.builder.
		Insert("prospects").
		Columns("id", "form_id", "firstname", "lastname", "phone", "email", "gender", "date").
		Values(
			prospect.ID,
			prospect.FormID,
			prospect.Firstname,
			prospect.Lastname,
			prospect.Phone,
			prospect.Email,
			prospect.Gender,
			prospect.Date,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*prospectRepository.CreateProspect").Msg("error building query")
		return models.Prospect{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*prospectRepository.CreateProspect").Msg("error inserting prospect")
		return models.Prospect{}, fmt.Errorf("%w: %w", ErrProspectNotSaved, err)
	}

	return prospect, nil
}

// ListByForm returns every submission for the form, oldest first.
func (r *prospectRepository) ListByForm(ctx context.Context, formID string) ([]models.Prospect, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "form_id", "firstname", "lastname", "phone", "email", "gender", "date", "created_at").
		From("prospects").
		Where(sq.Eq{"form_id": formID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*prospectRepository.ListByForm").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*prospectRepository.ListByForm").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var prospects []models.Prospect
	for rows.Next() {
		var p models.Prospect
		err := rows.Scan(
			&p.ID,
			&p.FormID,
			&p.Firstname,
			&p.Lastname,
			&p.Phone,
			&p.Email,
			&p.Gender,
			&p.Date,
			&p.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*prospectRepository.ListByForm").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		prospects = append(prospects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return prospects, nil
}
