// Package scheduler implements the auto-placement engine: recurrence
// expansion, free-slot search, and the scheduling pass itself.
package scheduler

import "planit/internal/task"

// Slot is one (weekday, hour) unit of calendar time.
type Slot struct {
	Day  task.Weekday
	Hour int
}

// SlotSet is the set of slots already claimed by recurring commitments
// and by placements made earlier in the same pass. It is rebuilt at the
// start of every pass and never persisted.
type SlotSet map[Slot]struct{}

// NewSlotSet returns an empty set.
func NewSlotSet() SlotSet {
	return make(SlotSet)
}

// Has returns true if the slot is claimed.
func (s SlotSet) Has(slot Slot) bool {
	_, ok := s[slot]
	return ok
}

// Add claims a single slot.
func (s SlotSet) Add(slot Slot) {
	s[slot] = struct{}{}
}

// AddRange claims every hour of [start, end) on the given day.
func (s SlotSet) AddRange(day task.Weekday, start, end int) {
	for h := start; h < end; h++ {
		s.Add(Slot{Day: day, Hour: h})
	}
}

// Union adds all slots from other.
func (s SlotSet) Union(other []Slot) {
	for _, slot := range other {
		s.Add(slot)
	}
}

// ExpandRecurring expands a weekly recurrence into the slots it occupies:
// every member day crossed with the half-open hour range [start, end).
// An inverted range yields no slots.
func ExpandRecurring(days task.DaySet, start, end int) []Slot {
	if start >= end {
		return nil
	}
	var slots []Slot
	for _, day := range days.Days() {
		for h := start; h < end; h++ {
			slots = append(slots, Slot{Day: day, Hour: h})
		}
	}
	return slots
}

// BuildOccupancy expands every recurring task into a single slot set.
// Tasks whose stored recurrence is unusable (empty day set or inverted
// hours) are skipped; a bad record never aborts the pass. Overlapping
// recurrences simply coalesce.
func BuildOccupancy(recurring []*task.Task) SlotSet {
	occupied := NewSlotSet()
	for _, t := range recurring {
		p := t.Placement
		if p.Kind != task.PlacementRecurring || p.Days.Empty() {
			continue
		}
		occupied.Union(ExpandRecurring(p.Days, p.Start, p.End))
	}
	return occupied
}
