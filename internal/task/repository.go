package task

import "context"

// Repository defines the storage interface for tasks and availability.
type Repository interface {
	// CreateTask adds a new task and assigns its ID.
	CreateTask(ctx context.Context, t *Task) error

	// GetTask retrieves a task by ID. Returns (nil, nil) if missing.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// ListTasks returns all tasks, recurring first, then by ascending ID.
	ListTasks(ctx context.Context) ([]*Task, error)

	// ListUnscheduled returns non-completed tasks without a placement,
	// ordered by ascending ID. This is the auto-scheduler's input order.
	ListUnscheduled(ctx context.Context) ([]*Task, error)

	// ListRecurring returns all tasks with a recurring placement.
	ListRecurring(ctx context.Context) ([]*Task, error)

	// ListPlaced returns non-completed tasks with any placement,
	// recurring or one-time. This feeds the week view.
	ListPlaced(ctx context.Context) ([]*Task, error)

	// CompleteTask marks a task as done. The placement is kept.
	// Returns ErrTaskNotFound if the ID does not exist.
	CompleteTask(ctx context.Context, id int64) error

	// DeleteTask removes a task.
	// Returns ErrTaskNotFound if the ID does not exist.
	DeleteTask(ctx context.Context, id int64) error

	// CommitPlacement transitions an unscheduled task to a one-time
	// placement in a single statement. Either the whole transition is
	// written or the task stays eligible for the next pass.
	CommitPlacement(ctx context.Context, id int64, day Weekday, start, end int) error

	// ResetPlacements clears every one-time placement and returns the
	// number of affected tasks. Recurring placements are untouched.
	ResetPlacements(ctx context.Context) (int64, error)

	// ListAvailability returns windows ordered by day, then insertion.
	ListAvailability(ctx context.Context) ([]AvailabilityWindow, error)

	// AddAvailability appends a window. Windows are not merged; overlapping
	// windows on the same day are allowed and scanned independently.
	AddAvailability(ctx context.Context, w AvailabilityWindow) error

	// Close releases any resources held by the repository.
	Close() error
}
