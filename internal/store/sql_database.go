package store

import (
	"database/sql"

	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/migrations"
)

// DB is the local database handle shared by the client repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
