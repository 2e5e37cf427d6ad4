package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"planit/internal/config"
	"planit/internal/project"
	"planit/internal/task"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	tasks    task.Repository
	projects project.Repository
	config   *config.Config
	root     *cobra.Command
}

// NewApp creates a new CLI application over the given stores and config.
func NewApp(tasks task.Repository, projects project.Repository, cfg *config.Config) *App {
	a := &App{tasks: tasks, projects: projects, config: cfg}

	a.root = &cobra.Command{
		Use:   "planit",
		Short: "A personal task and appointment scheduler",
		Long: `PlanIt keeps your tasks, recurring commitments, and weekly availability
in one place and auto-schedules pending work into free slots.

Add tasks (plain, recurring, or pinned to a date), run 'planit schedule'
to place them, and inspect the result with 'planit week'.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor, _ := a.root.PersistentFlags().GetBool("no-color"); noColor || !cfg.UI.Color {
				DisableColor()
			}
		},
	}

	a.root.PersistentFlags().Bool("no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.resetCmd())
	a.root.AddCommand(a.availabilityCmd())
	a.root.AddCommand(a.projectCmd())
	a.root.AddCommand(a.delprojectCmd())
	a.root.AddCommand(a.timelineCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("planit %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
