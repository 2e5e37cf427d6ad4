// Package db provides the SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"planit/internal/task"
)

// SQLite implements task.Repository and project.Repository.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store, runs migrations, and seeds the default
// availability if none exists.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if err := s.seedAvailability(); err != nil {
		return nil, fmt.Errorf("seeding availability: %w", err)
	}

	return s, nil
}

// seedAvailability inserts the Monday-Friday 9h-18h default exactly once.
// Existing windows are never overwritten.
func (s *SQLite) seedAvailability() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM availability`).Scan(&count); err != nil {
		return fmt.Errorf("counting windows: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, w := range task.DefaultAvailability() {
		_, err := s.db.Exec(
			`INSERT INTO availability (day_of_week, start_hour, end_hour) VALUES (?, ?, ?)`,
			int(w.Day), w.Start, w.End,
		)
		if err != nil {
			return fmt.Errorf("inserting default window: %w", err)
		}
	}
	return nil
}

// CreateTask adds a new task to the store and assigns its ID.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	cols := placementColumns(t.Placement)

	query := `
		INSERT INTO tasks (
			title, duration, completed, placement_kind,
			recurring_days, day, pinned_date, start_hour, end_hour, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Duration,
		t.Completed,
		string(t.Placement.Kind),
		cols.recurringDays,
		cols.day,
		cols.pinnedDate,
		cols.startHour,
		cols.endHour,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

const taskColumns = `id, title, duration, completed, placement_kind,
	recurring_days, day, pinned_date, start_hour, end_hour, created_at`

// GetTask retrieves a task by ID. Returns (nil, nil) if missing.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// ListTasks returns all tasks, recurring first, then by ascending ID.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		ORDER BY placement_kind = 'recurring' DESC, id ASC`
	return s.queryTasks(ctx, query)
}

// ListUnscheduled returns non-completed tasks without a placement,
// ordered by ascending ID.
func (s *SQLite) ListUnscheduled(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE completed = FALSE AND placement_kind = 'none'
		ORDER BY id ASC`
	return s.queryTasks(ctx, query)
}

// ListRecurring returns all tasks with a recurring placement.
func (s *SQLite) ListRecurring(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE placement_kind = 'recurring'
		ORDER BY id ASC`
	return s.queryTasks(ctx, query)
}

// ListPlaced returns non-completed tasks with any placement.
func (s *SQLite) ListPlaced(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE completed = FALSE AND placement_kind != 'none'
		ORDER BY id ASC`
	return s.queryTasks(ctx, query)
}

// CompleteTask marks a task as done. The placement is kept.
func (s *SQLite) CompleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = TRUE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", task.ErrTaskNotFound, id)
	}

	return nil
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", task.ErrTaskNotFound, id)
	}

	return nil
}

// CommitPlacement transitions an unscheduled task to a one-time placement.
// The guard in the WHERE clause makes the write atomic per task: either
// the transition applies or the task stays eligible for the next pass.
func (s *SQLite) CommitPlacement(ctx context.Context, id int64, day task.Weekday, start, end int) error {
	if err := task.ValidateHourRange(start, end); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET placement_kind = 'onetime', day = ?, start_hour = ?, end_hour = ?
		WHERE id = ? AND completed = FALSE AND placement_kind = 'none'
	`

	result, err := s.db.ExecContext(ctx, query, int(day), start, end, id)
	if err != nil {
		return fmt.Errorf("committing placement: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d is not eligible for placement", id)
	}

	return nil
}

// ResetPlacements clears every one-time placement.
func (s *SQLite) ResetPlacements(ctx context.Context) (int64, error) {
	query := `
		UPDATE tasks
		SET placement_kind = 'none', day = NULL, pinned_date = NULL, start_hour = NULL, end_hour = NULL
		WHERE placement_kind = 'onetime'
	`

	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("resetting placements: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting affected rows: %w", err)
	}
	return rows, nil
}

// ListAvailability returns windows ordered by day, then insertion.
func (s *SQLite) ListAvailability(ctx context.Context) ([]task.AvailabilityWindow, error) {
	query := `SELECT day_of_week, start_hour, end_hour FROM availability ORDER BY day_of_week, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying availability: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var windows []task.AvailabilityWindow
	for rows.Next() {
		var day, start, end int
		if err := rows.Scan(&day, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning window: %w", err)
		}
		windows = append(windows, task.AvailabilityWindow{Day: task.Weekday(day), Start: start, End: end})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating windows: %w", err)
	}

	return windows, nil
}

// AddAvailability appends a window.
func (s *SQLite) AddAvailability(ctx context.Context, w task.AvailabilityWindow) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO availability (day_of_week, start_hour, end_hour) VALUES (?, ?, ?)`,
		int(w.Day), w.Start, w.End,
	)
	if err != nil {
		return fmt.Errorf("inserting window: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) queryTasks(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// nullablePlacement holds the placement fields as they go to and from
// the nullable columns.
type nullablePlacement struct {
	recurringDays sql.NullString
	day           sql.NullInt64
	pinnedDate    sql.NullString
	startHour     sql.NullInt64
	endHour       sql.NullInt64
}

func placementColumns(p task.Placement) nullablePlacement {
	var cols nullablePlacement
	switch p.Kind {
	case task.PlacementRecurring:
		cols.recurringDays = sql.NullString{String: p.Days.String(), Valid: true}
		cols.startHour = sql.NullInt64{Int64: int64(p.Start), Valid: true}
		cols.endHour = sql.NullInt64{Int64: int64(p.End), Valid: true}
	case task.PlacementOneTime:
		cols.day = sql.NullInt64{Int64: int64(p.Day), Valid: true}
		cols.startHour = sql.NullInt64{Int64: int64(p.Start), Valid: true}
		cols.endHour = sql.NullInt64{Int64: int64(p.End), Valid: true}
		if p.Date != nil {
			cols.pinnedDate = sql.NullString{String: p.Date.Format("2006-01-02"), Valid: true}
		}
	}
	return cols
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t         task.Task
		kind      string
		cols      nullablePlacement
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Duration,
		&t.Completed,
		&kind,
		&cols.recurringDays,
		&cols.day,
		&cols.pinnedDate,
		&cols.startHour,
		&cols.endHour,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.Placement, err = placementFromColumns(task.PlacementKind(kind), cols)
	if err != nil {
		return nil, fmt.Errorf("restoring placement for task %d: %w", t.ID, err)
	}

	t.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &t, nil
}

func placementFromColumns(kind task.PlacementKind, cols nullablePlacement) (task.Placement, error) {
	switch kind {
	case task.PlacementRecurring:
		p := task.Placement{
			Kind:  task.PlacementRecurring,
			Days:  task.ParseDaySpec(cols.recurringDays.String),
			Start: int(cols.startHour.Int64),
			End:   int(cols.endHour.Int64),
		}
		return p, nil
	case task.PlacementOneTime:
		p := task.Placement{
			Kind:  task.PlacementOneTime,
			Day:   task.Weekday(cols.day.Int64),
			Start: int(cols.startHour.Int64),
			End:   int(cols.endHour.Int64),
		}
		if cols.pinnedDate.Valid {
			date, err := parseDate(cols.pinnedDate.String)
			if err != nil {
				return task.Placement{}, err
			}
			p.Date = &date
		}
		return p, nil
	default:
		return task.Unscheduled(), nil
	}
}

// parseDate parses a date string in the formats SQLite might return.
// Date-only values are parsed in local time to match time.Now() dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"; extract the
	// date part and treat it as local midnight.
	if len(s) >= 10 {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
