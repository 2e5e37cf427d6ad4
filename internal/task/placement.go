package task

import (
	"fmt"
	"time"
)

// PlacementKind discriminates the placement variants.
type PlacementKind string

const (
	PlacementNone      PlacementKind = "none"
	PlacementRecurring PlacementKind = "recurring"
	PlacementOneTime   PlacementKind = "onetime"
)

// Valid returns true if the kind is a known value.
func (k PlacementKind) Valid() bool {
	switch k {
	case PlacementNone, PlacementRecurring, PlacementOneTime:
		return true
	default:
		return false
	}
}

// Placement is a tagged variant: exactly one of the three kinds is active.
// Hours are whole and half-open: the task occupies [Start, End).
type Placement struct {
	Kind  PlacementKind
	Days  DaySet     // recurring: which weekdays
	Day   Weekday    // one-time: the weekday slot
	Date  *time.Time // one-time: set only for manually pinned tasks
	Start int
	End   int
}

// Unscheduled returns the empty placement.
func Unscheduled() Placement {
	return Placement{Kind: PlacementNone}
}

// NewRecurringPlacement builds a weekly placement over the given days.
func NewRecurringPlacement(days DaySet, start, end int) (Placement, error) {
	if days.Empty() {
		return Placement{}, ErrInvalidDaySpec
	}
	if err := ValidateHourRange(start, end); err != nil {
		return Placement{}, err
	}
	return Placement{Kind: PlacementRecurring, Days: days, Start: start, End: end}, nil
}

// NewOneTimePlacement builds a week-agnostic one-time placement, as produced
// by the auto-scheduler.
func NewOneTimePlacement(day Weekday, start, end int) (Placement, error) {
	if !day.Valid() {
		return Placement{}, ErrInvalidWeekday
	}
	if err := ValidateHourRange(start, end); err != nil {
		return Placement{}, err
	}
	return Placement{Kind: PlacementOneTime, Day: day, Start: start, End: end}, nil
}

// NewPinnedPlacement builds a one-time placement anchored to a calendar date.
// The weekday slot is derived from the date; the week view uses the date to
// show the task only in its actual week.
func NewPinnedPlacement(date time.Time, start, end int) (Placement, error) {
	if err := ValidateHourRange(start, end); err != nil {
		return Placement{}, err
	}
	day := FromTime(date.Weekday())
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return Placement{Kind: PlacementOneTime, Day: day, Date: &d, Start: start, End: end}, nil
}

// IsScheduled returns true for any placement other than the empty one.
func (p Placement) IsScheduled() bool {
	return p.Kind != PlacementNone && p.Kind != ""
}

// String renders the placement for display.
// One-time: "Monday 9h-11h". Recurring: "mon,wed 9h-11h (weekly)".
func (p Placement) String() string {
	switch p.Kind {
	case PlacementRecurring:
		return fmt.Sprintf("%s %dh-%dh (weekly)", p.Days, p.Start, p.End)
	case PlacementOneTime:
		if p.Date != nil {
			return fmt.Sprintf("%s %s %dh-%dh", p.Day, p.Date.Format("02/01"), p.Start, p.End)
		}
		return fmt.Sprintf("%s %dh-%dh", p.Day, p.Start, p.End)
	default:
		return "Not scheduled"
	}
}

// ValidateHourRange checks 0 <= start < end <= 24.
func ValidateHourRange(start, end int) error {
	if start < 0 || end > 24 || start >= end {
		return ErrInvalidHourRange
	}
	return nil
}
