package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a single schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in order. SQL is embedded rather than read
// from loose files so a fresh database can be stood up from the binary
// alone.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_venues",
		SQL: `
			CREATE TABLE IF NOT EXISTS venues (
				id TEXT PRIMARY KEY,
				place_id TEXT,
				name TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				rating REAL DEFAULT 0,
				category TEXT NOT NULL DEFAULT 'other',
				opening_hours TEXT,
				popular_times TEXT,
				data_source TEXT NOT NULL DEFAULT 'simulated',
				created_at INTEGER NOT NULL,
				updated_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_venues_category ON venues(category);
		`,
	},
	{
		Version: 2,
		Name:    "create_events",
		SQL: `
			CREATE TABLE IF NOT EXISTS events (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				category TEXT NOT NULL DEFAULT 'other',
				venue_id TEXT NOT NULL REFERENCES venues(id),
				start_time INTEGER NOT NULL,
				end_time INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'pending',
				confirmed_count INTEGER NOT NULL DEFAULT 0,
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_events_status_start ON events(status, start_time);
		`,
	},
	{
		Version: 3,
		Name:    "create_checkins",
		SQL: `
			CREATE TABLE IF NOT EXISTS checkins (
				id TEXT PRIMARY KEY,
				venue_id TEXT,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				created_at INTEGER NOT NULL,
				anonymous INTEGER NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_checkins_created_at ON checkins(created_at);
		`,
	},
}

// RunMigrations applies all pending migrations
func RunMigrations(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}
