package store

import (
	"database/sql"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/migrations"
)

// DB is the connection pool shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	db.logger.Info().Msg("applying database migrations")

	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Msg("database migration failed")
		return err
	}

	db.logger.Info().Msg("database migrations applied")
	return nil
}
