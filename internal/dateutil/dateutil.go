// Package dateutil provides date parsing and week arithmetic utilities.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidMonthDay = errors.New("date must be in MM/DD format")
)

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekDates returns the 7 dates of the week containing t, shifted by
// offset whole weeks. Index 0 is Monday.
func WeekDates(t time.Time, offset int) [7]time.Time {
	monday := StartOfWeek(t).AddDate(0, 0, offset*7)
	var dates [7]time.Time
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// ParseMonthDay parses an "MM/DD" date, inferring the year from now.
func ParseMonthDay(s string, now time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return time.Time{}, ErrInvalidMonthDay
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, ErrInvalidMonthDay
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, ErrInvalidMonthDay
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidMonthDay
	}
	date := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	// Reject normalized overflow like 02/30.
	if int(date.Month()) != month || date.Day() != day {
		return time.Time{}, ErrInvalidMonthDay
	}
	return date, nil
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}
