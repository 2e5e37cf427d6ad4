package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planit/internal/dateutil"
	"planit/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		duration  int
		recurring bool
		days      string
		startHour int
		date      string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a task to your list.

A plain task stays unscheduled until 'planit schedule' places it.
With --recurring the task occupies the same weekly slot on the given
days. With --date the task is pinned manually to a calendar date.`,
		Example: `  planit add "Write report" --duration 2
  planit add "Gym" --duration 2 --recurring --days mon,wed,fri --start 18
  planit add "Standup" --duration 1 --recurring --days daily --start 9
  planit add "Dentist" --duration 1 --date 03/14 --start 15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTask(cmd, args[0], duration, recurring, days, startHour, date)
			if err != nil {
				return err
			}

			if err := a.tasks.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			switch {
			case t.IsRecurring():
				fmt.Printf("%s Recurring task #%d: %s (%s)\n", formatOK("✓"), t.ID, t.Title, t.Placement)
			case t.IsScheduled():
				fmt.Printf("%s Task #%d manually scheduled: %s (%s)\n", formatOK("✓"), t.ID, t.Title, t.Placement)
			default:
				fmt.Printf("%s Task #%d added: %s (%dh, unscheduled)\n", formatOK("✓"), t.ID, t.Title, t.Duration)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "Duration in hours (required)")
	cmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "Repeat weekly on the given days")
	cmd.Flags().StringVar(&days, "days", "daily", "Days for recurring tasks (daily or mon,tue,...)")
	cmd.Flags().IntVarP(&startHour, "start", "s", -1, "Start hour (0-23)")
	cmd.Flags().StringVar(&date, "date", "", "Pin to a date (MM/DD), requires --start")

	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func buildTask(cmd *cobra.Command, title string, duration int, recurring bool, days string, startHour int, date string) (*task.Task, error) {
	switch {
	case recurring:
		daySet, err := task.ParseDaySpecStrict(days)
		if err != nil {
			return nil, err
		}
		if !cmd.Flags().Changed("start") {
			return nil, errors.New("--start is required for recurring tasks")
		}
		return task.NewRecurring(title, duration, daySet, startHour)

	case date != "":
		if !cmd.Flags().Changed("start") {
			return nil, errors.New("--start is required with --date")
		}
		pinned, err := dateutil.ParseMonthDay(date, time.Now())
		if err != nil {
			return nil, err
		}
		return task.NewPinned(title, duration, pinned, startHour)

	default:
		return task.New(title, duration)
	}
}
