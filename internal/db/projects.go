package db

import (
	"context"
	"database/sql"
	"fmt"

	"planit/internal/project"
)

// CreateProject adds a new project to the store and assigns its ID.
func (s *SQLite) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (name, start_date, end_date, description)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Start.Format("2006-01-02"),
		p.End.Format("2006-01-02"),
		p.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	p.ID = id

	return nil
}

// ListProjects returns all projects ordered by start date.
func (s *SQLite) ListProjects(ctx context.Context) ([]*project.Project, error) {
	query := `
		SELECT id, name, start_date, end_date, description
		FROM projects
		ORDER BY start_date ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*project.Project
	for rows.Next() {
		var (
			p           project.Project
			startDate   string
			endDate     string
			description sql.NullString
		)

		if err := rows.Scan(&p.ID, &p.Name, &startDate, &endDate, &description); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		if p.Start, err = parseDate(startDate); err != nil {
			return nil, fmt.Errorf("parsing start date: %w", err)
		}
		if p.End, err = parseDate(endDate); err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}
		p.Description = description.String

		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// DeleteProject removes a project.
func (s *SQLite) DeleteProject(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", project.ErrProjectNotFound, id)
	}

	return nil
}
