package store

import (
	"database/sql"

	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/migrations"
)

// DB wraps the raw sql.DB connection together with the application logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations to the underlying database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
