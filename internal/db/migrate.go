package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS drafts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		plan_json   TEXT NOT NULL,
		step_index  INTEGER NOT NULL DEFAULT 0,
		final_report TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
