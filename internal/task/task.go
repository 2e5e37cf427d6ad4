// Package task defines the core domain types for planit.
package task

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be a positive number of hours")
	ErrInvalidHourRange = errors.New("hours must satisfy 0 <= start < end <= 24")
	ErrInvalidDaySpec   = errors.New("days must be 'daily' or a comma list of mon,tue,wed,thu,fri,sat,sun")
	ErrInvalidWeekday   = errors.New("weekday out of range")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Task is a unit of work with an hour-granular duration and at most one
// active placement.
type Task struct {
	ID        int64
	Title     string
	Duration  int // whole hours
	Completed bool
	Placement Placement
	CreatedAt time.Time
}

// New creates an unscheduled task.
func New(title string, duration int) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Task{
		Title:     title,
		Duration:  duration,
		Placement: Unscheduled(),
		CreatedAt: time.Now(),
	}, nil
}

// NewRecurring creates a task that repeats weekly on the given days,
// occupying [startHour, startHour+duration).
func NewRecurring(title string, duration int, days DaySet, startHour int) (*Task, error) {
	t, err := New(title, duration)
	if err != nil {
		return nil, err
	}
	p, err := NewRecurringPlacement(days, startHour, startHour+duration)
	if err != nil {
		return nil, err
	}
	t.Placement = p
	return t, nil
}

// NewPinned creates a task manually scheduled on a calendar date,
// occupying [startHour, startHour+duration).
func NewPinned(title string, duration int, date time.Time, startHour int) (*Task, error) {
	t, err := New(title, duration)
	if err != nil {
		return nil, err
	}
	p, err := NewPinnedPlacement(date, startHour, startHour+duration)
	if err != nil {
		return nil, err
	}
	t.Placement = p
	return t, nil
}

// IsScheduled returns true if the task has any placement.
func (t *Task) IsScheduled() bool {
	return t.Placement.IsScheduled()
}

// IsRecurring returns true if the task repeats weekly.
func (t *Task) IsRecurring() bool {
	return t.Placement.Kind == PlacementRecurring
}

// IsPending returns true if the task is eligible for auto-scheduling:
// not completed and without a placement.
func (t *Task) IsPending() bool {
	return !t.Completed && !t.IsScheduled()
}
