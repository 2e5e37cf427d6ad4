package task

import "fmt"

// AvailabilityWindow is a contiguous range of hours on a weekday during
// which scheduling is permitted. Hours are half-open: [Start, End).
type AvailabilityWindow struct {
	Day   Weekday
	Start int
	End   int
}

// NewAvailabilityWindow validates and builds a window.
func NewAvailabilityWindow(day Weekday, start, end int) (AvailabilityWindow, error) {
	if !day.Valid() {
		return AvailabilityWindow{}, ErrInvalidWeekday
	}
	if err := ValidateHourRange(start, end); err != nil {
		return AvailabilityWindow{}, err
	}
	return AvailabilityWindow{Day: day, Start: start, End: end}, nil
}

// Hours returns the window length in hours.
func (w AvailabilityWindow) Hours() int {
	return w.End - w.Start
}

func (w AvailabilityWindow) String() string {
	return fmt.Sprintf("%s %dh-%dh", w.Day, w.Start, w.End)
}

// DefaultAvailability is the schedule seeded when none exists:
// Monday through Friday, 9h to 18h.
func DefaultAvailability() []AvailabilityWindow {
	windows := make([]AvailabilityWindow, 0, 5)
	for d := Monday; d <= Friday; d++ {
		windows = append(windows, AvailabilityWindow{Day: d, Start: 9, End: 18})
	}
	return windows
}
