package scheduler

import (
	"time"

	"planit/internal/dateutil"
	"planit/internal/task"
)

// WeekGrid projects placed tasks onto a concrete 7x24 grid for one
// calendar week. Cells hold task titles; an empty string means free.
type WeekGrid struct {
	Offset int
	Dates  [7]time.Time // Monday (0) through Sunday (6)
	Cells  [7][24]string
}

// BuildWeekGrid projects the given tasks onto the week containing today
// shifted by offset whole weeks (offset may be negative).
//
// Recurring placements label every member weekday. One-time placements
// label their weekday; when the placement carries a pinned date, it only
// appears in the week actually containing that date. If two items claim
// the same cell the later one wins; conflicts were already prevented at
// scheduling time, so this is display-only tolerance.
func BuildWeekGrid(today time.Time, offset int, tasks []*task.Task) *WeekGrid {
	g := &WeekGrid{
		Offset: offset,
		Dates:  dateutil.WeekDates(today, offset),
	}

	for _, t := range tasks {
		if t.Completed {
			continue
		}
		switch p := t.Placement; p.Kind {
		case task.PlacementRecurring:
			if p.Start >= p.End {
				continue
			}
			for _, day := range p.Days.Days() {
				g.fill(day, p.Start, p.End, t.Title)
			}
		case task.PlacementOneTime:
			if p.Start >= p.End || !p.Day.Valid() {
				continue
			}
			if p.Date != nil && !g.contains(*p.Date) {
				continue
			}
			g.fill(p.Day, p.Start, p.End, t.Title)
		}
	}

	return g
}

func (g *WeekGrid) fill(day task.Weekday, start, end int, label string) {
	for h := start; h < end && h < 24; h++ {
		if h < 0 {
			continue
		}
		g.Cells[day][h] = label
	}
}

func (g *WeekGrid) contains(date time.Time) bool {
	d := dateutil.TruncateToDay(date)
	return !d.Before(g.Dates[0]) && !d.After(g.Dates[6])
}

// StartDate returns the Monday of the displayed week.
func (g *WeekGrid) StartDate() time.Time {
	return g.Dates[0]
}

// EndDate returns the Sunday of the displayed week.
func (g *WeekGrid) EndDate() time.Time {
	return g.Dates[6]
}

// IsEmpty returns true if no cell is labeled.
func (g *WeekGrid) IsEmpty() bool {
	for d := range g.Cells {
		for h := range g.Cells[d] {
			if g.Cells[d][h] != "" {
				return false
			}
		}
	}
	return true
}

// HourTotals sums labeled hours per task title across the whole week.
func (g *WeekGrid) HourTotals() map[string]int {
	totals := make(map[string]int)
	for d := range g.Cells {
		for h := range g.Cells[d] {
			if label := g.Cells[d][h]; label != "" {
				totals[label]++
			}
		}
	}
	return totals
}
