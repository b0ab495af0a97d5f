package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps :memory: databases stable and serializes the
	// single-slot writes.
	db.SetMaxOpenConns(1)

	return &DB{db}, nil
}

// RunMigrations runs the migrations directly (for testing)
// In production, migrations are applied from the embedded migrations package
func (db *DB) RunMigrations() error {
	migration := `
-- Document slots: each key holds one JSON-serialized document. The project
-- collection lives in a single slot and is always rewritten wholesale.
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
