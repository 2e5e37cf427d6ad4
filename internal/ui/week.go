package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planit/internal/scheduler"
	"planit/internal/task"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		offset int
		next   bool
		prev   bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly schedule grid",
		Long: `Display a 7x24 grid of the week's placements, recurring and one-off.

The displayed week defaults to the current one; shift it with --offset,
or use --next / --prev as shortcuts for +1 / -1.`,
		Example: `  planit week
  planit week --next
  planit week --offset -2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case next && prev:
				return fmt.Errorf("--next and --prev are mutually exclusive")
			case next:
				offset = 1
			case prev:
				offset = -1
			}

			placed, err := a.tasks.ListPlaced(context.Background())
			if err != nil {
				return fmt.Errorf("loading placed tasks: %w", err)
			}

			grid := scheduler.BuildWeekGrid(time.Now(), offset, placed)
			printWeekGrid(grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Week offset (0 = current, may be negative)")
	cmd.Flags().BoolVarP(&next, "next", "n", false, "Show next week")
	cmd.Flags().BoolVarP(&prev, "prev", "p", false, "Show previous week")

	return cmd
}

func printWeekGrid(g *scheduler.WeekGrid) {
	header := fmt.Sprintf("WEEKLY SCHEDULE (%s - %s)",
		g.StartDate().Format("02/01"), g.EndDate().Format("02/01"))
	fmt.Printf("\n=== %s ===\n", formatHeader(header))

	switch {
	case g.Offset == 0:
		fmt.Println(formatMuted("(Current week)"))
	case g.Offset > 0:
		fmt.Println(formatMuted(fmt.Sprintf("(+%d week%s)", g.Offset, plural(g.Offset))))
	default:
		fmt.Println(formatMuted(fmt.Sprintf("(%d week%s)", g.Offset, plural(-g.Offset))))
	}

	if g.IsEmpty() {
		fmt.Println("No scheduled tasks.")
		return
	}

	fmt.Print("\nTime ")
	for d := task.Monday; d <= task.Sunday; d++ {
		fmt.Printf("| %s %-6s", d.Code(), g.Dates[d].Format("02/01"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 6+13*7))

	for hour := 0; hour < 24; hour++ {
		fmt.Printf("%2dh  ", hour)
		for d := task.Monday; d <= task.Sunday; d++ {
			fmt.Printf("| %-10s", truncate(g.Cells[d][hour], 10))
		}
		fmt.Println()
	}

	totals := g.HourTotals()
	if len(totals) > 0 {
		fmt.Printf("\n%s\n", formatHeader("HOURS THIS WEEK"))
		for _, title := range sortedKeys(totals) {
			fmt.Printf("  • %s: %dh\n", title, totals[title])
		}
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
