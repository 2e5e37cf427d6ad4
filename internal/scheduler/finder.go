package scheduler

import "planit/internal/task"

// Strategy finds a free slot for a task of the given duration. The
// scheduling policy is deliberately pluggable so the first-fit behavior
// stays fixed unless a caller explicitly swaps it out.
type Strategy interface {
	// FindSlot returns the start slot of the first free contiguous range
	// of duration hours, or false if no window can hold the task.
	// Windows are scanned in the order supplied.
	FindSlot(duration int, windows []task.AvailabilityWindow, occupied SlotSet) (Slot, bool)
}

// FirstFit accepts the earliest valid candidate: windows in supplied
// order, candidate hours ascending within each window. It never trades
// a fit away for fragmentation or balance.
type FirstFit struct{}

// FindSlot implements Strategy.
func (FirstFit) FindSlot(duration int, windows []task.AvailabilityWindow, occupied SlotSet) (Slot, bool) {
	if duration <= 0 {
		return Slot{}, false
	}
	for _, w := range windows {
		for candidate := w.Start; candidate <= w.End-duration; candidate++ {
			if rangeFree(occupied, w.Day, candidate, candidate+duration) {
				return Slot{Day: w.Day, Hour: candidate}, true
			}
		}
	}
	return Slot{}, false
}

func rangeFree(occupied SlotSet, day task.Weekday, start, end int) bool {
	for h := start; h < end; h++ {
		if occupied.Has(Slot{Day: day, Hour: h}) {
			return false
		}
	}
	return true
}
