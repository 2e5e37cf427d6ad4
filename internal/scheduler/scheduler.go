package scheduler

import (
	"context"
	"fmt"

	"planit/internal/task"
)

// ReasonNoFreeSlot is the failure reason recorded when no window can
// hold a task of the requested duration.
const ReasonNoFreeSlot = "no free slot of requested duration"

// Committer persists a successful placement. The write must be atomic
// per task: either the task transitions to its one-time placement or it
// stays unscheduled and eligible for the next pass.
type Committer interface {
	CommitPlacement(ctx context.Context, id int64, day task.Weekday, start, end int) error
}

// Placement records one successful assignment from a pass.
type Placement struct {
	TaskID int64
	Title  string
	Day    task.Weekday
	Start  int
	End    int
}

func (p Placement) String() string {
	return fmt.Sprintf("%s %dh-%dh", p.Day, p.Start, p.End)
}

// Failure records one task that could not be placed.
type Failure struct {
	TaskID int64
	Title  string
	Reason string
}

// Result is the outcome of one scheduling pass.
type Result struct {
	Placements []Placement
	Failures   []Failure
}

// Scheduler drives a placement pass over pending tasks.
type Scheduler struct {
	store    Committer
	strategy Strategy
}

// New creates a Scheduler with the first-fit strategy.
func New(store Committer) *Scheduler {
	return NewWithStrategy(store, FirstFit{})
}

// NewWithStrategy creates a Scheduler with a custom slot-finding strategy.
func NewWithStrategy(store Committer, strategy Strategy) *Scheduler {
	return &Scheduler{store: store, strategy: strategy}
}

// Run places each pending task into the first free slot, in the order
// given. Callers supply only unscheduled, non-completed tasks, ordered
// by ascending ID, and availability windows sorted by day; this fixes
// the first-come, first-fit policy.
//
// Occupancy starts from the recurring tasks and grows with every commit,
// so a pass can never double-book and a second pass with no new tasks
// places nothing. An unplaceable task is recorded as a failure and the
// pass continues; a store error aborts the pass, leaving already
// committed placements in place.
func (s *Scheduler) Run(ctx context.Context, pending, recurring []*task.Task, windows []task.AvailabilityWindow) (*Result, error) {
	occupied := BuildOccupancy(recurring)
	result := &Result{}

	for _, t := range pending {
		if t.Duration <= 0 {
			// Rejected at creation; left here so a corrupt row degrades
			// to a failure entry instead of a zero-length booking.
			result.Failures = append(result.Failures, Failure{TaskID: t.ID, Title: t.Title, Reason: ReasonNoFreeSlot})
			continue
		}

		slot, ok := s.strategy.FindSlot(t.Duration, windows, occupied)
		if !ok {
			result.Failures = append(result.Failures, Failure{TaskID: t.ID, Title: t.Title, Reason: ReasonNoFreeSlot})
			continue
		}

		end := slot.Hour + t.Duration
		if err := s.store.CommitPlacement(ctx, t.ID, slot.Day, slot.Hour, end); err != nil {
			return result, fmt.Errorf("committing placement for task %d: %w", t.ID, err)
		}

		occupied.AddRange(slot.Day, slot.Hour, end)
		result.Placements = append(result.Placements, Placement{
			TaskID: t.ID,
			Title:  t.Title,
			Day:    slot.Day,
			Start:  slot.Hour,
			End:    end,
		})
	}

	return result, nil
}
