package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/config"
	"github.com/tushardwivedi/insightiq/internal/metadb"
	"github.com/tushardwivedi/insightiq/internal/settings"
)

var dbCmd = &cobra.Command{
	Use:     "db",
	Short:   "Probe the Superset metadata database",
	GroupID: "readiness",
}

var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping the metadata database once and report its version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := metadb.Open(settings.Load().DatabaseURI())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := metadb.Ping(cmd.Context(), db); err != nil {
			return err
		}
		version, err := metadb.Version(cmd.Context(), db)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{"status": "ok", "version": version})
			return nil
		}
		fmt.Println(version)
		return nil
	},
}

var dbWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until the metadata database accepts connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := metadb.Open(settings.Load().DatabaseURI())
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.WaitTimeout)
		defer cancel()

		return metadb.WaitReady(ctx, db, cfg.WaitInterval, logger)
	},
}

func init() {
	dbCmd.AddCommand(dbPingCmd)
	dbCmd.AddCommand(dbWaitCmd)
}
