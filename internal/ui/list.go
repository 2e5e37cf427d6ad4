package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planit/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List every task: recurring commitments first, then one-off tasks
in creation order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			tasks, err := a.tasks.ListTasks(context.Background())
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("  %s\n", formatHeader("TASKS"))
			for _, t := range tasks {
				printTaskRow(t)
			}

			return nil
		},
	}
}

func printTaskRow(t *task.Task) {
	status := formatFail("○")
	if t.Completed {
		status = formatOK("✓")
	}

	placement := formatMuted("Not scheduled")
	if t.IsScheduled() {
		placement = formatSlot(t.Placement.String())
	}

	marker := "   "
	if t.IsRecurring() {
		marker = formatRecurring(" ⟳ ")
	}

	fmt.Printf("  %s #%-3d%s %-25s %2dh  %s\n", status, t.ID, marker, truncate(t.Title, 25), t.Duration, placement)
}

// truncate shortens s to at most max characters, counting runes so a
// multi-byte title is never cut mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
