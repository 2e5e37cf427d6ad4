package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planit/internal/scheduler"
)

func (a *App) scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Auto-schedule pending tasks into free slots",
		Long: `Place every unscheduled task into the first free slot of your weekly
availability, skipping hours claimed by recurring commitments and by
tasks placed earlier in the same pass. Tasks are handled in creation
order; a task that does not fit is reported and the pass continues.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			pending, err := a.tasks.ListUnscheduled(ctx)
			if err != nil {
				return fmt.Errorf("loading pending tasks: %w", err)
			}
			if len(pending) == 0 {
				fmt.Println("No pending tasks to schedule.")
				return nil
			}

			windows, err := a.tasks.ListAvailability(ctx)
			if err != nil {
				return fmt.Errorf("loading availability: %w", err)
			}
			if len(windows) == 0 {
				fmt.Println(formatFail("No availability defined."))
				return nil
			}

			recurring, err := a.tasks.ListRecurring(ctx)
			if err != nil {
				return fmt.Errorf("loading recurring tasks: %w", err)
			}

			result, err := scheduler.New(a.tasks).Run(ctx, pending, recurring, windows)
			printScheduleResult(result)
			if err != nil {
				return fmt.Errorf("scheduling pass: %w", err)
			}

			return nil
		},
	}
}

func printScheduleResult(result *scheduler.Result) {
	for _, p := range result.Placements {
		fmt.Printf("%s %s scheduled: %s\n", formatOK("✓"), p.Title, formatSlot(p.String()))
	}
	for _, f := range result.Failures {
		fmt.Printf("%s Cannot schedule: %s (%s)\n", formatFail("✗"), f.Title, f.Reason)
	}

	fmt.Printf("\n%s task(s) scheduled automatically.\n", formatOK(fmt.Sprintf("%d", len(result.Placements))))
}
