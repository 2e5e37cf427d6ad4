package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			title          TEXT NOT NULL,
			duration       INTEGER NOT NULL,
			completed      BOOLEAN NOT NULL DEFAULT FALSE,
			placement_kind TEXT NOT NULL DEFAULT 'none' CHECK(placement_kind IN ('none', 'recurring', 'onetime')),
			recurring_days TEXT,
			day            INTEGER,
			pinned_date    DATE,
			start_hour     INTEGER,
			end_hour       INTEGER,
			created_at     DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS projects (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL,
			start_date  DATE NOT NULL,
			end_date    DATE NOT NULL,
			description TEXT
		);

		CREATE TABLE IF NOT EXISTS availability (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			day_of_week INTEGER NOT NULL,
			start_hour  INTEGER NOT NULL,
			end_hour    INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_placement ON tasks(placement_kind);
		CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
		CREATE INDEX IF NOT EXISTS idx_projects_start ON projects(start_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
