// Package config loads the toolkit's own runtime configuration from the
// environment. This is distinct from internal/settings, which builds the
// record the host framework consumes: these values drive iqc itself.
package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	SupersetURL   string // INSIGHTIQ_SUPERSET_URL (default "http://superset:8088")
	AdminUser     string // INSIGHTIQ_SUPERSET_ADMIN_USER (default "admin")
	AdminPassword string // INSIGHTIQ_SUPERSET_ADMIN_PASSWORD (default "admin")

	// Readiness polling
	WaitInterval time.Duration // INSIGHTIQ_WAIT_INTERVAL (default 2s)
	WaitTimeout  time.Duration // INSIGHTIQ_WAIT_TIMEOUT (default 2m)

	// S3 publication
	S3Bucket   string // INSIGHTIQ_S3_BUCKET (required for publish)
	S3Key      string // INSIGHTIQ_S3_KEY (default "superset/superset_config.py")
	S3Region   string // INSIGHTIQ_S3_REGION (default "us-east-1")
	S3Endpoint string // INSIGHTIQ_S3_ENDPOINT (custom endpoint for MinIO)
}

func Load() (*Config, error) {
	c := &Config{
		SupersetURL:   envOrDefault("INSIGHTIQ_SUPERSET_URL", "http://superset:8088"),
		AdminUser:     envOrDefault("INSIGHTIQ_SUPERSET_ADMIN_USER", "admin"),
		AdminPassword: envOrDefault("INSIGHTIQ_SUPERSET_ADMIN_PASSWORD", "admin"),
		S3Bucket:      os.Getenv("INSIGHTIQ_S3_BUCKET"),
		S3Key:         envOrDefault("INSIGHTIQ_S3_KEY", "superset/superset_config.py"),
		S3Region:      envOrDefault("INSIGHTIQ_S3_REGION", "us-east-1"),
		S3Endpoint:    os.Getenv("INSIGHTIQ_S3_ENDPOINT"),
	}

	var err error
	if c.WaitInterval, err = durationEnv("INSIGHTIQ_WAIT_INTERVAL", 2*time.Second); err != nil {
		return nil, err
	}
	if c.WaitTimeout, err = durationEnv("INSIGHTIQ_WAIT_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
