package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planit/internal/project"
)

func (a *App) projectCmd() *cobra.Command {
	var (
		startDate   string
		endDate     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "project [name]",
		Short: "Add a new project",
		Long: `Add a project to the timeline. Dates are MM/DD with the year inferred
from today; an end date earlier than the start rolls into next year.`,
		Example: `  planit project "Website redesign" --start 09/01 --end 11/15 --desc "marketing site"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := project.New(args[0], startDate, endDate, description, time.Now())
			if err != nil {
				return err
			}

			if err := a.projects.CreateProject(context.Background(), p); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}

			fmt.Printf("%s Project #%d added: %s (%s → %s)\n",
				formatOK("✓"), p.ID, p.Name,
				p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date (MM/DD, required)")
	cmd.Flags().StringVarP(&endDate, "end", "e", "", "End date (MM/DD, required)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Project description")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) delprojectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delproject [project-id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.projects.DeleteProject(context.Background(), id); err != nil {
				if errors.Is(err, project.ErrProjectNotFound) {
					fmt.Printf("%s Project %d not found\n", formatFail("✗"), id)
					return nil
				}
				return fmt.Errorf("deleting project: %w", err)
			}

			fmt.Printf("%s Project %d deleted\n", formatOK("✓"), id)
			return nil
		},
	}
}
