// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 8080

[tmdb]
token = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.TMDB.Token != "secret" {
		t.Errorf("expected token secret, got %q", cfg.TMDB.Token)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("SCREENPAIRS_MISSING_TOKEN")
	cfgPath := writeConfig(t, `
[tmdb]
token = "${SCREENPAIRS_MISSING_TOKEN}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Path != cfgPath {
		t.Errorf("expected path %s, got %s", cfgPath, cfgErr.Path)
	}
	if !strings.Contains(err.Error(), "SCREENPAIRS_MISSING_TOKEN") {
		t.Errorf("expected SCREENPAIRS_MISSING_TOKEN in error, got %v", err)
	}
}

func TestLoad_TokenFromEnv(t *testing.T) {
	t.Setenv("SCREENPAIRS_TEST_TOKEN", "from-env")
	cfgPath := writeConfig(t, `
[tmdb]
token = "${SCREENPAIRS_TEST_TOKEN}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.Token != "from-env" {
		t.Errorf("expected token from-env, got %q", cfg.TMDB.Token)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999

[tmdb]
token = "secret"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 8080
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "tmdb.token") {
		t.Errorf("expected tmdb.token in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, `
[tmdb]
token = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8585 {
		t.Errorf("expected default port 8585, got %d", cfg.Server.Port)
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org" {
		t.Errorf("expected default base url, got %s", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("expected default language en-US, got %s", cfg.TMDB.Language)
	}
	if cfg.Cache.PairBackend != PairBackendFile {
		t.Errorf("expected pair backend file, got %s", cfg.Cache.PairBackend)
	}
	if cfg.Cache.PairFile != "./data/api_cache.json" {
		t.Errorf("expected default pair file, got %s", cfg.Cache.PairFile)
	}
	if cfg.Cache.MovieBackend != MovieBackendMemory {
		t.Errorf("expected movie backend memory, got %s", cfg.Cache.MovieBackend)
	}
	if cfg.Cache.PruneInterval != time.Hour {
		t.Errorf("expected prune interval 1h, got %s", cfg.Cache.PruneInterval)
	}
	if cfg.Precompute.PopularPages != 10 {
		t.Errorf("expected 10 popular pages, got %d", cfg.Precompute.PopularPages)
	}
	if cfg.Precompute.Concurrency != 4 {
		t.Errorf("expected concurrency 4, got %d", cfg.Precompute.Concurrency)
	}
	if cfg.Server.ActorRate != "60/m" || cfg.Server.MoviesRate != "20/m" {
		t.Errorf("expected default rates 60/m and 20/m, got %s and %s", cfg.Server.ActorRate, cfg.Server.MoviesRate)
	}
}

func TestLoad_RatesOff(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
actor_rate = "off"
movies_rate = "5/s"

[tmdb]
token = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ActorRate != "off" {
		t.Errorf("expected actor rate off to be kept, got %s", cfg.Server.ActorRate)
	}
	if cfg.Server.MoviesRate != "5/s" {
		t.Errorf("expected movies rate 5/s, got %s", cfg.Server.MoviesRate)
	}
}

func TestLoad_CacheSection(t *testing.T) {
	cfgPath := writeConfig(t, `
[tmdb]
token = "secret"

[cache]
pair_backend = "sqlite"
movie_backend = "redis"
prune_interval = "15m"

[cache.redis]
addr = "redis:6379"
db = 2

[precompute]
pairs = [["Simon Pegg", "Nick Frost"]]
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.PairBackend != PairBackendSQLite {
		t.Errorf("expected sqlite, got %s", cfg.Cache.PairBackend)
	}
	if cfg.Cache.PruneInterval != 15*time.Minute {
		t.Errorf("expected 15m, got %s", cfg.Cache.PruneInterval)
	}
	if cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("unexpected redis config %+v", cfg.Cache.Redis)
	}
	pairs := cfg.Precompute.SelectedPairs()
	if len(pairs) != 1 || pairs[0] != [2]string{"Simon Pegg", "Nick Frost"} {
		t.Errorf("unexpected pairs %v", pairs)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("SCREENPAIRS_OPTIONAL_HOST")
	cfgPath := writeConfig(t, `
[server]
host = "${SCREENPAIRS_OPTIONAL_HOST:-localhost}"

[tmdb]
token = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Server.Host)
	}
}

func TestLoad_DefaultConfigParses(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Precompute.SelectedPairs()) != 6 {
		t.Errorf("expected 6 curated pairs, got %d", len(cfg.Precompute.SelectedPairs()))
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8585}
	if s.Addr() != "127.0.0.1:8585" {
		t.Errorf("expected 127.0.0.1:8585, got %s", s.Addr())
	}
}
