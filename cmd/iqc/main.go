// Command iqc manages the Superset configuration for the insightiq stack:
// it resolves the settings record from the environment, renders it for the
// Superset container, lints it, and sequences startup against the metadata
// database and the Superset API.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "iqc <command>",
	Short: "Superset configuration toolkit for the insightiq stack",
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "config", Title: "Configuration:"},
		&cobra.Group{ID: "readiness", Title: "Readiness:"},
	)
	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(secretCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(supersetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
