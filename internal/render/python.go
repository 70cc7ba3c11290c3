package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/tushardwivedi/insightiq/internal/settings"
)

// Python renders the record as the superset_config.py module the Superset
// container mounts. Values are interpolated exactly as resolved, including
// any URI-reserved characters in credentials, so the output stays
// compatible with configs written by hand for this stack.
func Python(s settings.Settings) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Superset configuration for the insightiq stack.\n")
	buf.WriteString("# Generated by iqc; regenerate rather than editing.\n\n")

	buf.WriteString("# Database configuration\n")
	fmt.Fprintf(&buf, "SQLALCHEMY_DATABASE_URI = %s\n\n", pyString(s.DatabaseURI()))

	buf.WriteString("# Security\n")
	fmt.Fprintf(&buf, "SECRET_KEY = %s\n", pyString(s.SecretKey))
	fmt.Fprintf(&buf, "WTF_CSRF_ENABLED = %s\n\n", pyBool(settings.CSRFEnabled))

	buf.WriteString("# Enabled features\n")
	buf.WriteString("FEATURE_FLAGS = {\n")
	flags := settings.FeatureFlags()
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "    %q: %s,\n", name, pyBool(flags[name]))
	}
	buf.WriteString("}\n\n")

	buf.WriteString("# CORS settings\n")
	fmt.Fprintf(&buf, "ENABLE_CORS = %s\n", pyBool(settings.CORSEnabled))
	cors := settings.CORS()
	buf.WriteString("CORS_OPTIONS = {\n")
	fmt.Fprintf(&buf, "    'supports_credentials': %s,\n", pyBool(cors.SupportsCredentials))
	fmt.Fprintf(&buf, "    'allow_headers': %s,\n", pyStringList(cors.AllowHeaders))
	buf.WriteString("    'resources': {")
	resources := make([]string, 0, len(cors.Resources))
	for resource := range cors.Resources {
		resources = append(resources, resource)
	}
	sort.Strings(resources)
	for i, resource := range resources {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: {'origins': %s}",
			pyString(resource), pyString(cors.Resources[resource].Origins))
	}
	buf.WriteString("},\n")
	buf.WriteString("}\n\n")

	buf.WriteString("# Embedded dashboard access\n")
	fmt.Fprintf(&buf, "GUEST_ROLE_NAME = %s\n", pyString(settings.GuestRoleName))
	fmt.Fprintf(&buf, "PUBLIC_ROLE_LIKE_GAMMA = %s\n", pyBool(settings.PublicRoleLikeGamma))

	return buf.Bytes()
}

// pyString renders a single-quoted Python string literal. Only quote and
// backslash need escaping; everything else passes through raw.
func pyString(s string) string {
	var buf bytes.Buffer
	buf.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'', '\\':
			buf.WriteByte('\\')
		}
		buf.WriteByte(s[i])
	}
	buf.WriteByte('\'')
	return buf.String()
}

func pyStringList(items []string) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(pyString(item))
	}
	buf.WriteByte(']')
	return buf.String()
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
