package config

import (
	"testing"
	"time"
)

// configEnvVars lists all env vars Load reads; cleared between tests.
var configEnvVars = []string{
	"INSIGHTIQ_SUPERSET_URL", "INSIGHTIQ_SUPERSET_ADMIN_USER", "INSIGHTIQ_SUPERSET_ADMIN_PASSWORD",
	"INSIGHTIQ_WAIT_INTERVAL", "INSIGHTIQ_WAIT_TIMEOUT",
	"INSIGHTIQ_S3_BUCKET", "INSIGHTIQ_S3_KEY", "INSIGHTIQ_S3_REGION", "INSIGHTIQ_S3_ENDPOINT",
}

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAllEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SupersetURL != "http://superset:8088" {
		t.Errorf("SupersetURL = %q", cfg.SupersetURL)
	}
	if cfg.AdminUser != "admin" || cfg.AdminPassword != "admin" {
		t.Errorf("admin credentials = %q/%q, want admin/admin", cfg.AdminUser, cfg.AdminPassword)
	}
	if cfg.WaitInterval != 2*time.Second {
		t.Errorf("WaitInterval = %v, want 2s", cfg.WaitInterval)
	}
	if cfg.WaitTimeout != 2*time.Minute {
		t.Errorf("WaitTimeout = %v, want 2m", cfg.WaitTimeout)
	}
	if cfg.S3Bucket != "" {
		t.Errorf("S3Bucket = %q, want empty", cfg.S3Bucket)
	}
	if cfg.S3Key != "superset/superset_config.py" {
		t.Errorf("S3Key = %q", cfg.S3Key)
	}
	if cfg.S3Region != "us-east-1" {
		t.Errorf("S3Region = %q", cfg.S3Region)
	}
}

func TestLoadCustom(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("INSIGHTIQ_SUPERSET_URL", "http://localhost:8089")
	t.Setenv("INSIGHTIQ_SUPERSET_ADMIN_USER", "ops")
	t.Setenv("INSIGHTIQ_SUPERSET_ADMIN_PASSWORD", "hunter2")
	t.Setenv("INSIGHTIQ_WAIT_INTERVAL", "500ms")
	t.Setenv("INSIGHTIQ_WAIT_TIMEOUT", "10m")
	t.Setenv("INSIGHTIQ_S3_BUCKET", "config-bucket")
	t.Setenv("INSIGHTIQ_S3_KEY", "custom/superset_config.py")
	t.Setenv("INSIGHTIQ_S3_REGION", "eu-west-1")
	t.Setenv("INSIGHTIQ_S3_ENDPOINT", "http://minio:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SupersetURL != "http://localhost:8089" {
		t.Errorf("SupersetURL = %q", cfg.SupersetURL)
	}
	if cfg.AdminUser != "ops" || cfg.AdminPassword != "hunter2" {
		t.Errorf("admin credentials = %q/%q", cfg.AdminUser, cfg.AdminPassword)
	}
	if cfg.WaitInterval != 500*time.Millisecond {
		t.Errorf("WaitInterval = %v", cfg.WaitInterval)
	}
	if cfg.WaitTimeout != 10*time.Minute {
		t.Errorf("WaitTimeout = %v", cfg.WaitTimeout)
	}
	if cfg.S3Bucket != "config-bucket" {
		t.Errorf("S3Bucket = %q", cfg.S3Bucket)
	}
	if cfg.S3Key != "custom/superset_config.py" {
		t.Errorf("S3Key = %q", cfg.S3Key)
	}
	if cfg.S3Region != "eu-west-1" {
		t.Errorf("S3Region = %q", cfg.S3Region)
	}
	if cfg.S3Endpoint != "http://minio:9000" {
		t.Errorf("S3Endpoint = %q", cfg.S3Endpoint)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("INSIGHTIQ_WAIT_INTERVAL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid INSIGHTIQ_WAIT_INTERVAL")
	}
}
