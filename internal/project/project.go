// Package project defines the project timeline domain types.
package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"planit/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName = errors.New("project name cannot be empty")
)

// Domain errors.
var (
	ErrProjectNotFound = errors.New("project not found")
)

// Project is a named date range shown on the timeline. Projects carry no
// relationship to tasks; they exist purely for display.
type Project struct {
	ID          int64
	Name        string
	Start       time.Time
	End         time.Time
	Description string
}

// New creates a Project from "MM/DD" start and end dates. The year is
// inferred from now; an end date before the start rolls into next year.
func New(name, startDate, endDate, description string, now time.Time) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	start, err := dateutil.ParseMonthDay(startDate, now)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseMonthDay(endDate, now)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		end = end.AddDate(1, 0, 0)
	}

	return &Project{
		Name:        name,
		Start:       start,
		End:         end,
		Description: strings.TrimSpace(description),
	}, nil
}

// DurationDays returns the inclusive length of the project in days.
func (p *Project) DurationDays() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// Overlaps returns true if the project's range intersects [from, to].
func (p *Project) Overlaps(from, to time.Time) bool {
	return !p.Start.After(to) && !p.End.Before(from)
}

// Repository defines the storage interface for projects.
type Repository interface {
	// CreateProject adds a new project and assigns its ID.
	CreateProject(ctx context.Context, p *Project) error

	// ListProjects returns all projects ordered by start date.
	ListProjects(ctx context.Context) ([]*Project, error)

	// DeleteProject removes a project.
	// Returns ErrProjectNotFound if the ID does not exist.
	DeleteProject(ctx context.Context, id int64) error
}
