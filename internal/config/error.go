package config

import (
	"fmt"
	"strings"
)

// envHints tells the user where the value of a required variable comes from.
var envHints = map[string]string{
	"TMDB_BEARER_TOKEN": "API read access token from https://www.themoviedb.org/settings/api",
	"REDIS_ADDR":        "host:port of the shared movie cache, needed when cache.movie_backend = \"redis\"",
	"REDIS_PASSWORD":    "password for cache.redis, use ${REDIS_PASSWORD:-} when there is none",
}

// Hint returns setup guidance for a missing environment variable, or "".
func Hint(name string) string {
	return envHints[name]
}

// ConfigError reports every problem found while loading a config file.
type ConfigError struct {
	Path    string
	Missing []string // ${VAR} references with no value and no default
	Errors  []string // "field: problem" entries from Validate
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "%s:\n", e.Path)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "missing environment variables: %s\n", strings.Join(e.Missing, ", "))
		for _, name := range e.Missing {
			if hint := Hint(name); hint != "" {
				fmt.Fprintf(&b, "  %s: %s\n", name, hint)
			}
		}
	}
	if len(e.Errors) > 0 {
		b.WriteString("validation failed:\n")
		for _, msg := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
