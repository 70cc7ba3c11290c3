package settings

import (
	"fmt"
	"strings"
)

// Severity classifies a finding. Error findings mean the rendered record
// will not work downstream; warnings mean it works but should not ship to
// production as-is.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one problem detected in a loaded Settings value.
type Finding struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

// Characters with reserved meaning inside a connection URI. The loader
// interpolates credentials raw, so any of these in a credential yields a
// URI the host framework cannot parse.
const uriReserved = `:/?#[]@`

// Check inspects a loaded Settings value and reports findings. It never
// alters the record: the loader's contract is to reproduce the environment
// faithfully, defects included, so callers decide what to do with the
// report.
func Check(s Settings) []Finding {
	var findings []Finding

	for _, f := range []struct {
		field string
		value string
	}{
		{"POSTGRES_USER", s.DatabaseUser},
		{"POSTGRES_PASSWORD", s.DatabasePassword},
		{"POSTGRES_DB", s.DatabaseName},
	} {
		if strings.ContainsAny(f.value, uriReserved) {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Field:    f.field,
				Message: fmt.Sprintf("value contains URI-reserved characters (%s); "+
					"the derived SQLALCHEMY_DATABASE_URI will not parse", uriReserved),
			})
		}
	}

	if s.SecretKey == DefaultSecretKey {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Field:    "SECRET_KEY",
			Message:  "secret key is the placeholder default; set SECRET_KEY before production use",
		})
	}

	if s.DatabasePassword == DefaultDatabasePassword {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Field:    "POSTGRES_PASSWORD",
			Message:  "database password is the default; set POSTGRES_PASSWORD before production use",
		})
	}

	return findings
}

// HasErrors reports whether any finding is error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
