package task

import (
	"strings"
	"time"
)

// Weekday indexes days Monday (0) through Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
var weekdayCodes = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Valid returns true if the weekday is in range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the full day name, e.g. "Monday".
func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return weekdayNames[d]
}

// Code returns the 3-letter day code, e.g. "mon".
func (d Weekday) Code() string {
	if !d.Valid() {
		return ""
	}
	return weekdayCodes[d]
}

// ParseWeekdayCode parses a 3-letter day code ("mon".."sun").
func ParseWeekdayCode(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, code := range weekdayCodes {
		if s == code {
			return Weekday(i), true
		}
	}
	return 0, false
}

// ParseWeekdayName parses a full day name ("Monday".."Sunday"), case-insensitive.
func ParseWeekdayName(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if s == strings.ToLower(name) {
			return Weekday(i), true
		}
	}
	return 0, false
}

// FromTime converts a time.Weekday (Sunday=0) to a Weekday (Monday=0).
func FromTime(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(int(d) - 1)
}

// DaySet is a set of weekdays.
type DaySet uint8

// AllDays contains every weekday.
const AllDays DaySet = 1<<7 - 1

// Add adds a weekday to the set.
func (s *DaySet) Add(d Weekday) {
	if d.Valid() {
		*s |= 1 << uint(d)
	}
}

// Has returns true if the weekday is in the set.
func (s DaySet) Has(d Weekday) bool {
	return d.Valid() && s&(1<<uint(d)) != 0
}

// Empty returns true if the set contains no days.
func (s DaySet) Empty() bool {
	return s == 0
}

// Days returns the member weekdays in ascending order (Monday first).
func (s DaySet) Days() []Weekday {
	var days []Weekday
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String returns the canonical day spec: "daily" for the full set,
// otherwise a comma-separated list of codes.
func (s DaySet) String() string {
	if s == AllDays {
		return "daily"
	}
	codes := make([]string, 0, 7)
	for _, d := range s.Days() {
		codes = append(codes, d.Code())
	}
	return strings.Join(codes, ",")
}

// ParseDaySpec parses a day spec: the literal "daily" or a comma-separated
// list of 3-letter codes. Unrecognized codes are skipped; the expander
// tolerates sloppy stored specs rather than failing a whole pass.
func ParseDaySpec(spec string) DaySet {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "daily" {
		return AllDays
	}
	var set DaySet
	for _, part := range strings.Split(spec, ",") {
		if d, ok := ParseWeekdayCode(part); ok {
			set.Add(d)
		}
	}
	return set
}

// ParseDaySpecStrict parses a day spec, rejecting unknown codes.
// Used at the input boundary where malformed specs must not be stored.
func ParseDaySpecStrict(spec string) (DaySet, error) {
	trimmed := strings.ToLower(strings.TrimSpace(spec))
	if trimmed == "daily" {
		return AllDays, nil
	}
	var set DaySet
	for _, part := range strings.Split(trimmed, ",") {
		d, ok := ParseWeekdayCode(part)
		if !ok {
			return 0, ErrInvalidDaySpec
		}
		set.Add(d)
	}
	if set.Empty() {
		return 0, ErrInvalidDaySpec
	}
	return set, nil
}
