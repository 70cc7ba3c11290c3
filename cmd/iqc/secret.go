package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/settings"
)

var secretCmd = &cobra.Command{
	Use:     "secret",
	Short:   "Generate a production SECRET_KEY value",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := settings.GenerateSecretKey()
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(map[string]string{"secret_key": key})
			return nil
		}
		fmt.Println(key)
		return nil
	},
}
