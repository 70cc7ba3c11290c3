package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/render"
	"github.com/tushardwivedi/insightiq/internal/settings"
)

var (
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Short:   "Render the Superset configuration record",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := render.Render(settings.Load(), render.Format(renderFormat))
		if err != nil {
			return err
		}

		if renderOut == "" || renderOut == "-" {
			_, err := os.Stdout.Write(out)
			return err
		}
		if err := os.WriteFile(renderOut, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", renderOut, err)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "python", "output format (python, json, env, or toml)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "write to file instead of stdout")
}
