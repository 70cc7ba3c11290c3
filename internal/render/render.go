// Package render serializes the Superset configuration record into the
// formats the deployment consumes: the Python config module Superset loads
// at startup, plus JSON, env-file, and TOML views for tooling.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tushardwivedi/insightiq/internal/settings"
)

// Format selects an output serialization.
type Format string

const (
	FormatPython Format = "python"
	FormatJSON   Format = "json"
	FormatEnv    Format = "env"
	FormatTOML   Format = "toml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatPython, FormatJSON, FormatEnv, FormatTOML}

// Render serializes the record for the given settings in the requested
// format.
func Render(s settings.Settings, format Format) ([]byte, error) {
	switch format {
	case FormatPython:
		return Python(s), nil
	case FormatJSON:
		return renderJSON(s)
	case FormatEnv:
		return renderEnv(s), nil
	case FormatTOML:
		return renderTOML(s)
	default:
		return nil, fmt.Errorf("unknown format %q (must be python, json, env, or toml)", format)
	}
}

func renderJSON(s settings.Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s.Record(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return append(data, '\n'), nil
}

// renderEnv emits the scalar settings as KEY=value lines. The mapping
// values (feature flags, CORS options) have no env representation and are
// omitted; they are fixed literals anyway.
func renderEnv(s settings.Settings) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SQLALCHEMY_DATABASE_URI=%s\n", s.DatabaseURI())
	fmt.Fprintf(&buf, "SECRET_KEY=%s\n", s.SecretKey)
	fmt.Fprintf(&buf, "WTF_CSRF_ENABLED=%t\n", settings.CSRFEnabled)
	fmt.Fprintf(&buf, "ENABLE_CORS=%t\n", settings.CORSEnabled)
	fmt.Fprintf(&buf, "GUEST_ROLE_NAME=%s\n", settings.GuestRoleName)
	fmt.Fprintf(&buf, "PUBLIC_ROLE_LIKE_GAMMA=%t\n", settings.PublicRoleLikeGamma)
	return buf.Bytes()
}

// tomlRecord fixes field order for the TOML encoder; the key names match
// the host framework contract.
type tomlRecord struct {
	DatabaseURI         string               `toml:"SQLALCHEMY_DATABASE_URI"`
	SecretKey           string               `toml:"SECRET_KEY"`
	CSRFEnabled         bool                 `toml:"WTF_CSRF_ENABLED"`
	CORSEnabled         bool                 `toml:"ENABLE_CORS"`
	GuestRoleName       string               `toml:"GUEST_ROLE_NAME"`
	PublicRoleLikeGamma bool                 `toml:"PUBLIC_ROLE_LIKE_GAMMA"`
	FeatureFlags        map[string]bool      `toml:"FEATURE_FLAGS"`
	CORSOptions         settings.CORSOptions `toml:"CORS_OPTIONS"`
}

func renderTOML(s settings.Settings) ([]byte, error) {
	rec := tomlRecord{
		DatabaseURI:         s.DatabaseURI(),
		SecretKey:           s.SecretKey,
		CSRFEnabled:         settings.CSRFEnabled,
		CORSEnabled:         settings.CORSEnabled,
		GuestRoleName:       settings.GuestRoleName,
		PublicRoleLikeGamma: settings.PublicRoleLikeGamma,
		FeatureFlags:        settings.FeatureFlags(),
		CORSOptions:         settings.CORS(),
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}
