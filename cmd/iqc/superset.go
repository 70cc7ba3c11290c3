package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/config"
	"github.com/tushardwivedi/insightiq/internal/superset"
)

var supersetCmd = &cobra.Command{
	Use:     "superset",
	Short:   "Probe the Superset instance the config is destined for",
	GroupID: "readiness",
}

func newSupersetClient() (*superset.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client := superset.NewClient(cfg.SupersetURL, cfg.AdminUser, cfg.AdminPassword, newLogger())
	return client, cfg, nil
}

var supersetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the Superset health endpoint once",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newSupersetClient()
		if err != nil {
			return err
		}

		if err := client.Health(cmd.Context()); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(map[string]string{"status": "healthy", "url": cfg.SupersetURL})
			return nil
		}
		fmt.Printf("%s is healthy\n", cfg.SupersetURL)
		return nil
	},
}

var supersetWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until Superset answers its health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newSupersetClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.WaitTimeout)
		defer cancel()

		return client.WaitHealthy(ctx, cfg.WaitInterval)
	},
}

var supersetDatabasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List database registrations known to Superset",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newSupersetClient()
		if err != nil {
			return err
		}

		dbs, err := client.Databases(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(dbs)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, db := range dbs {
			fmt.Fprintf(w, "%d\t%s\n", db.ID, db.Name)
		}
		w.Flush()
		if len(dbs) == 0 {
			fmt.Println("No databases registered.")
		}
		return nil
	},
}

func init() {
	supersetCmd.AddCommand(supersetStatusCmd)
	supersetCmd.AddCommand(supersetWaitCmd)
	supersetCmd.AddCommand(supersetDatabasesCmd)
}
