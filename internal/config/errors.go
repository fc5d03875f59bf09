package config

import (
	"fmt"
	"strings"
)

// MissingCredentialsError lists every required environment variable that is unset
// for the feature being started.
type MissingCredentialsError struct {
	Feature string
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "missing credentials for %s: %s", e.Feature, strings.Join(e.Missing, ", "))
	b.WriteString("\nSet them in the environment or in a .env file, for example:\n")
	for _, key := range e.Missing {
		fmt.Fprintf(&b, "  %s=your_%s\n", key, strings.ToLower(key))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ValidationError reports a configuration value that is present but invalid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}
