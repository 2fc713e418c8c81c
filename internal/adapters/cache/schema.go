package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the route cache schema. The statement is valid for both the
// SQLite and Postgres backends.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		profile TEXT NOT NULL,
		polyline TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (origin, destination, profile)
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create route_cache: %w", err)
	}

	return nil
}
