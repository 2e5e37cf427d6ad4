package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planit/internal/task"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [task-id]",
		Short:   "Delete a task",
		Example: `  planit delete 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.tasks.DeleteTask(context.Background(), id); err != nil {
				if errors.Is(err, task.ErrTaskNotFound) {
					fmt.Printf("%s Task %d not found\n", formatFail("✗"), id)
					return nil
				}
				return fmt.Errorf("deleting task: %w", err)
			}

			fmt.Printf("%s Task %d deleted\n", formatOK("✓"), id)
			return nil
		},
	}
}

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done [task-id]",
		Short:   "Mark a task as completed",
		Example: `  planit done 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.tasks.CompleteTask(context.Background(), id); err != nil {
				if errors.Is(err, task.ErrTaskNotFound) {
					fmt.Printf("%s Task %d not found\n", formatFail("✗"), id)
					return nil
				}
				return fmt.Errorf("completing task: %w", err)
			}

			fmt.Printf("%s Task %d marked as done\n", formatOK("✓"), id)
			return nil
		},
	}
}

func (a *App) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all auto-scheduled and manual placements",
		Long: `Reset every one-time placement back to unscheduled. Recurring
commitments keep their weekly slots.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := a.tasks.ResetPlacements(context.Background())
			if err != nil {
				return fmt.Errorf("resetting schedule: %w", err)
			}

			fmt.Printf("%s Schedule reset (%d placement(s) cleared)\n", formatOK("✓"), n)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
