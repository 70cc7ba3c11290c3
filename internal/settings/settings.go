// Package settings builds the Superset configuration record for the
// insightiq stack: metadata database credentials resolved from the
// environment, the derived SQLAlchemy URI, and the fixed literals Superset
// expects for embedded dashboard access (feature flags, CORS policy, guest
// role). The record is constructed once at startup and never mutated.
package settings

import (
	"fmt"
	"os"
)

// Defaults applied when the corresponding environment variable is unset
// or empty.
const (
	DefaultDatabaseUser     = "superset"
	DefaultDatabasePassword = "superset"
	DefaultDatabaseName     = "superset"
	DefaultSecretKey        = "insightiq-secret-key-change-in-production"
)

// The metadata database always lives at the compose-network hostname
// "postgres"; host and port are not configurable.
const (
	MetadataHost = "postgres"
	MetadataPort = 5432
)

// Fixed literals consumed by the host framework. Superset's embedded SDK
// authenticates guests against the Gamma role, and the public role mirrors
// it so anonymous dashboard views work.
const (
	GuestRoleName       = "Gamma"
	PublicRoleLikeGamma = true
	CSRFEnabled         = false
	CORSEnabled         = true
)

// Settings holds the environment-resolved portion of the configuration
// record. Everything else in the record is a literal.
type Settings struct {
	DatabaseUser     string // POSTGRES_USER (default "superset")
	DatabasePassword string // POSTGRES_PASSWORD (default "superset")
	DatabaseName     string // POSTGRES_DB (default "superset")
	SecretKey        string // SECRET_KEY (default placeholder, must change in production)
}

// Load reads the recognized environment variables, substituting defaults
// for unset or empty values. It cannot fail: every lookup succeeds by
// falling back to the documented literal.
func Load() Settings {
	return Settings{
		DatabaseUser:     envOrDefault("POSTGRES_USER", DefaultDatabaseUser),
		DatabasePassword: envOrDefault("POSTGRES_PASSWORD", DefaultDatabasePassword),
		DatabaseName:     envOrDefault("POSTGRES_DB", DefaultDatabaseName),
		SecretKey:        envOrDefault("SECRET_KEY", DefaultSecretKey),
	}
}

// DatabaseURI derives the SQLAlchemy connection string from the three
// credential fields. It is a method rather than a field so the URI is
// always re-derived and never independently settable.
//
// Credentials are interpolated raw, without URI escaping, to stay
// compatible with the stack's original configuration. Check flags
// credentials that would produce an unparseable URI.
func (s Settings) DatabaseURI() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		s.DatabaseUser, s.DatabasePassword, MetadataHost, MetadataPort, s.DatabaseName)
}

// FeatureFlags returns the fixed Superset feature flag set. A fresh map is
// returned on every call so callers cannot mutate the record.
func FeatureFlags() map[string]bool {
	return map[string]bool{
		"EMBEDDED_SUPERSET":          true,
		"ENABLE_TEMPLATE_PROCESSING": true,
	}
}

// CORSOptions mirrors Superset's CORS_OPTIONS mapping: credentials
// supported, all headers allowed, all origins allowed for every resource.
type CORSOptions struct {
	SupportsCredentials bool                       `json:"supports_credentials" toml:"supports_credentials"`
	AllowHeaders        []string                   `json:"allow_headers" toml:"allow_headers"`
	Resources           map[string]ResourceOrigins `json:"resources" toml:"resources"`
}

// ResourceOrigins is the per-resource origin allow-list.
type ResourceOrigins struct {
	Origins string `json:"origins" toml:"origins"`
}

// CORS returns the fixed CORS policy.
func CORS() CORSOptions {
	return CORSOptions{
		SupportsCredentials: true,
		AllowHeaders:        []string{"*"},
		Resources: map[string]ResourceOrigins{
			"*": {Origins: "*"},
		},
	}
}

// RecordKeys lists the configuration keys in the order the host framework's
// config file declares them. The names are a fixed external contract;
// renaming any of them breaks Superset startup.
var RecordKeys = []string{
	"SQLALCHEMY_DATABASE_URI",
	"SECRET_KEY",
	"WTF_CSRF_ENABLED",
	"FEATURE_FLAGS",
	"ENABLE_CORS",
	"CORS_OPTIONS",
	"GUEST_ROLE_NAME",
	"PUBLIC_ROLE_LIKE_GAMMA",
}

// Record returns the flat configuration record keyed by the exact names
// the host framework consumes.
func (s Settings) Record() map[string]any {
	return map[string]any{
		"SQLALCHEMY_DATABASE_URI": s.DatabaseURI(),
		"SECRET_KEY":              s.SecretKey,
		"WTF_CSRF_ENABLED":        CSRFEnabled,
		"FEATURE_FLAGS":           FeatureFlags(),
		"ENABLE_CORS":             CORSEnabled,
		"CORS_OPTIONS":            CORS(),
		"GUEST_ROLE_NAME":         GuestRoleName,
		"PUBLIC_ROLE_LIKE_GAMMA":  PublicRoleLikeGamma,
	}
}

// EnvVar describes one recognized environment variable and how it
// resolved: the value in effect and whether it came from the environment
// or the default.
type EnvVar struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Default string `json:"default"`
	FromEnv bool   `json:"from_env"`
}

// Environ reports the resolution of every recognized environment variable
// for the current process environment.
func Environ() []EnvVar {
	vars := []struct {
		name string
		def  string
	}{
		{"POSTGRES_USER", DefaultDatabaseUser},
		{"POSTGRES_PASSWORD", DefaultDatabasePassword},
		{"POSTGRES_DB", DefaultDatabaseName},
		{"SECRET_KEY", DefaultSecretKey},
	}

	out := make([]EnvVar, 0, len(vars))
	for _, v := range vars {
		ev := EnvVar{Name: v.name, Default: v.def, Value: v.def}
		if val := os.Getenv(v.name); val != "" {
			ev.Value = val
			ev.FromEnv = true
		}
		out = append(out, ev)
	}
	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
