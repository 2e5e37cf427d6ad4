package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planit/internal/task"
)

func (a *App) availabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "List weekly availability windows",
		Long: `Show the weekly windows the auto-scheduler may place tasks into.

A default of Monday-Friday 9h-18h is seeded the first time the store is
created; windows added here extend it.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			windows, err := a.tasks.ListAvailability(context.Background())
			if err != nil {
				return fmt.Errorf("listing availability: %w", err)
			}

			if len(windows) == 0 {
				fmt.Println("No availability defined.")
				return nil
			}

			fmt.Printf("  %s\n", formatHeader("AVAILABILITY"))
			for _, w := range windows {
				fmt.Printf("  %-9s %s\n", w.Day, formatSlot(fmt.Sprintf("%dh-%dh", w.Start, w.End)))
			}
			return nil
		},
	}

	cmd.AddCommand(a.availabilityAddCmd())

	return cmd
}

func (a *App) availabilityAddCmd() *cobra.Command {
	var (
		day   string
		start int
		end   int
	)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an availability window",
		Example: `  planit availability add --day sat --start 10 --end 14`,
		RunE: func(_ *cobra.Command, _ []string) error {
			weekday, ok := task.ParseWeekdayCode(day)
			if !ok {
				return task.ErrInvalidDaySpec
			}

			w, err := task.NewAvailabilityWindow(weekday, start, end)
			if err != nil {
				return err
			}

			if err := a.tasks.AddAvailability(context.Background(), w); err != nil {
				return fmt.Errorf("adding window: %w", err)
			}

			fmt.Printf("%s Availability added: %s\n", formatOK("✓"), w)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day code (mon..sun, required)")
	cmd.Flags().IntVar(&start, "start", 0, "Start hour (0-23)")
	cmd.Flags().IntVar(&end, "end", 0, "End hour (1-24)")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
