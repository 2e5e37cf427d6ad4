package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planit/internal/dateutil"
	"planit/internal/project"
)

// monthBarWidth is the number of cells each month occupies in the timeline.
const monthBarWidth = 8

func (a *App) timelineCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the project timeline",
		Long:  `Display project date ranges as bars over the coming months.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			projects, err := a.projects.ListProjects(context.Background())
			if err != nil {
				return fmt.Errorf("listing projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects to display in timeline.")
				return nil
			}

			printTimeline(projects, time.Now(), months)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 4, "Number of months to display")

	return cmd
}

func printTimeline(projects []*project.Project, now time.Time, monthCount int) {
	if monthCount < 1 {
		monthCount = 1
	}
	if maxMonths := (termWidth() - 26) / (monthBarWidth + 3); monthCount > maxMonths && maxMonths >= 1 {
		monthCount = maxMonths
	}

	months := make([]time.Time, monthCount)
	for i := range months {
		months[i] = dateutil.MonthStart(now).AddDate(0, i, 0)
	}

	fmt.Printf("\n=== %s ===\n", formatHeader(fmt.Sprintf("PROJECT TIMELINE (Next %d Months)", monthCount)))

	header := "ID │ Project Name        │"
	for _, m := range months {
		header += fmt.Sprintf(" %-8s │", m.Format("Jan 2006"))
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("─", len([]rune(header))))

	for _, p := range projects {
		line := fmt.Sprintf("%2d │ %-19s │", p.ID, truncate(p.Name, 19))
		for _, m := range months {
			line += " " + monthBar(p, m) + " │"
		}
		fmt.Println(line)

		if p.Description != "" {
			desc := fmt.Sprintf("   │ %-19s │", formatMuted(truncate(p.Description, 19)))
			for range months {
				desc += fmt.Sprintf(" %-8s │", "")
			}
			fmt.Println(desc)
		}
	}

	fmt.Println(formatMuted("\nUse 'planit delproject <ID>' to delete a project"))
}

// monthBar renders the slice of a project's range that falls inside the
// given month as a fixed-width bar, e.g. "  ├────┤ ".
func monthBar(p *project.Project, month time.Time) string {
	monthStart := dateutil.MonthStart(month)
	monthEnd := dateutil.MonthEnd(month)

	if !p.Overlaps(monthStart, monthEnd) {
		return strings.Repeat(" ", monthBarWidth)
	}

	overlapStart := p.Start
	if overlapStart.Before(monthStart) {
		overlapStart = monthStart
	}
	overlapEnd := p.End
	if overlapEnd.After(monthEnd) {
		overlapEnd = monthEnd
	}

	daysInMonth := monthEnd.Day()
	startPos := (overlapStart.Day() - 1) * monthBarWidth / daysInMonth
	endPos := (overlapEnd.Day() - 1) * monthBarWidth / daysInMonth

	bar := []rune(strings.Repeat(" ", monthBarWidth))
	for i := startPos; i <= endPos && i < monthBarWidth; i++ {
		switch i {
		case startPos:
			bar[i] = '├'
		case endPos:
			bar[i] = '┤'
		default:
			bar[i] = '─'
		}
	}
	// A range that starts and ends on the same cell still shows both ends.
	if startPos == endPos && startPos < monthBarWidth {
		bar[startPos] = '┤'
	}

	return string(bar)
}
