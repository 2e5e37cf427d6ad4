package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planit/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: `Print the resolved configuration. If no config file exists yet, one is
created with default values.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			configPath := config.DefaultConfigPath()
			fmt.Printf("Config file: %s\n\n", configPath)

			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
				fmt.Println("No config file found. Creating with default values...")
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Printf("Created %s\n\n", configPath)
			}

			fmt.Println("Current configuration:")
			fmt.Println("──────────────────────")
			fmt.Println("[storage]")
			fmt.Printf("  db_path = %s\n", cfg.Storage.DBPath)
			fmt.Println("\n[ui]")
			fmt.Printf("  color   = %t\n", cfg.UI.Color)

			return nil
		},
	}
}
