package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/settings"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Lint the resolved configuration for latent defects",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		findings := settings.Check(settings.Load())

		if jsonOutput {
			if findings == nil {
				findings = []settings.Finding{}
			}
			printJSON(findings)
		} else if len(findings) == 0 {
			fmt.Println("No findings.")
		} else {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SEVERITY\tFIELD\tMESSAGE")
			for _, f := range findings {
				fmt.Fprintf(w, "%s\t%s\t%s\n", severityLabel(f.Severity), f.Field, f.Message)
			}
			w.Flush()
		}

		if settings.HasErrors(findings) {
			os.Exit(1)
		}
		return nil
	},
}
