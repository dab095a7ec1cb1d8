// internal/config/error_test.go
package config

import (
	"strings"
	"testing"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/screenpairs/config.toml"}
	got := e.Error()
	if got != "" {
		t.Errorf("expected empty string for no errors, got %q", got)
	}
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/screenpairs/config.toml",
		Missing: []string{"TMDB_BEARER_TOKEN", "REDIS_PASSWORD"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected 'missing environment variables', got %q", got)
	}
	if !strings.Contains(got, "TMDB_BEARER_TOKEN") || !strings.Contains(got, "REDIS_PASSWORD") {
		t.Errorf("expected var names in error, got %q", got)
	}
}

func TestConfigError_Error_ValidationErrors(t *testing.T) {
	e := &ConfigError{
		Path:   "/etc/screenpairs/config.toml",
		Errors: []string{"server.port: must be 1-65535", "cache.pair_backend: must be one of file, sqlite"},
	}
	got := e.Error()
	if !strings.Contains(got, "validation failed") {
		t.Errorf("expected 'validation failed', got %q", got)
	}
	if !strings.Contains(got, "server.port") {
		t.Errorf("expected field name in error, got %q", got)
	}
}

func TestConfigError_Error_Both(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/screenpairs/config.toml",
		Missing: []string{"TMDB_BEARER_TOKEN"},
		Errors:  []string{"server.port: invalid"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected missing vars section, got %q", got)
	}
	if !strings.Contains(got, "validation failed") {
		t.Errorf("expected validation section, got %q", got)
	}
}

func TestConfigError_Error_HintsAndPath(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/screenpairs/config.toml",
		Missing: []string{"TMDB_BEARER_TOKEN", "SOMETHING_ELSE"},
	}
	got := e.Error()
	if !strings.HasPrefix(got, "/etc/screenpairs/config.toml:") {
		t.Errorf("expected path prefix, got %q", got)
	}
	if !strings.Contains(got, "TMDB_BEARER_TOKEN: API read access token") {
		t.Errorf("expected token hint, got %q", got)
	}
	if strings.Contains(got, "SOMETHING_ELSE:") {
		t.Errorf("unexpected hint for unknown variable, got %q", got)
	}
}

func TestHint_Unknown(t *testing.T) {
	if got := Hint("NOT_A_SCREENPAIRS_VAR"); got != "" {
		t.Errorf("expected no hint, got %q", got)
	}
}
