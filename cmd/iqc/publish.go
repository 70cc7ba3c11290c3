package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tushardwivedi/insightiq/internal/config"
	"github.com/tushardwivedi/insightiq/internal/publish"
	"github.com/tushardwivedi/insightiq/internal/render"
	"github.com/tushardwivedi/insightiq/internal/settings"
)

var (
	publishBucket string
	publishKey    string
)

var publishCmd = &cobra.Command{
	Use:     "publish",
	Short:   "Render the Python config and upload it to S3",
	GroupID: "config",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		bucket := cfg.S3Bucket
		if publishBucket != "" {
			bucket = publishBucket
		}
		if bucket == "" {
			return fmt.Errorf("no bucket configured (set INSIGHTIQ_S3_BUCKET or pass --bucket)")
		}
		key := cfg.S3Key
		if publishKey != "" {
			key = publishKey
		}

		out := render.Python(settings.Load())

		dest, err := publish.NewS3Destination(cmd.Context(), bucket, key,
			cfg.S3Region, cfg.S3Endpoint, "text/x-python")
		if err != nil {
			return err
		}
		if err := dest.Write(cmd.Context(), out); err != nil {
			return err
		}

		logger.Info("configuration published", "bucket", bucket, "key", key, "bytes", len(out))
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishBucket, "bucket", "", "S3 bucket (overrides INSIGHTIQ_S3_BUCKET)")
	publishCmd.Flags().StringVar(&publishKey, "key", "", "S3 object key (overrides INSIGHTIQ_S3_KEY)")
}
