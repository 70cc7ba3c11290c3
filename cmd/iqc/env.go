package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/settings"
)

var envCmd = &cobra.Command{
	Use:     "env",
	Short:   "Show the environment contract and how each variable resolved",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		vars := settings.Environ()

		if jsonOutput {
			printJSON(vars)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VARIABLE\tVALUE\tSOURCE\tDEFAULT")
		for _, v := range vars {
			source := "default"
			if v.FromEnv {
				source = "environment"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Name, v.Value, source, v.Default)
		}
		w.Flush()
		return nil
	},
}
