package store

import (
	"context"
	"fmt"

	"github.com/formkeeper/formkeeper/internal/config"
	"github.com/formkeeper/formkeeper/internal/logger"
)

// Storages bundles every repository the service layer depends on,
// all backed by the same database connection.
type Storages struct {
	UserRepository      UserRepository
	FormRepository      FormRepository
	ComponentRepository ComponentRepository
	ProspectRepository  ProspectRepository
}

// NewStorages connects to the configured database backend, runs pending
// migrations and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error running migrations")
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		FormRepository:      NewFormRepository(db, log),
		ComponentRepository: NewComponentRepository(db, log),
		ProspectRepository:  NewProspectRepository(db, log),
	}, nil
}

// Connect opens the database connection named by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Driver)
	}
}
