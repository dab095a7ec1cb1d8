// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	TMDB       TMDBConfig       `toml:"tmdb"`
	Cache      CacheConfig      `toml:"cache"`
	Precompute PrecomputeConfig `toml:"precompute"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	// Per client IP request budgets, "N/unit" with unit s, m, h or d, or "off".
	ActorRate  string `toml:"actor_rate"`
	MoviesRate string `toml:"movies_rate"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type TMDBConfig struct {
	Token    string `toml:"token"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Default per-IP request budgets
const (
	DefaultActorRate  = "60/m"
	DefaultMoviesRate = "20/m"
)

// Pair cache backends
const (
	PairBackendFile   = "file"
	PairBackendSQLite = "sqlite"
)

// Movie cache backends
const (
	MovieBackendMemory = "memory"
	MovieBackendSQLite = "sqlite"
	MovieBackendRedis  = "redis"
)

type CacheConfig struct {
	PairBackend   string        `toml:"pair_backend"`
	PairFile      string        `toml:"pair_file"`
	MovieBackend  string        `toml:"movie_backend"`
	PruneInterval time.Duration `toml:"prune_interval"`
	Redis         RedisConfig   `toml:"redis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PrecomputeConfig struct {
	Pairs        [][]string `toml:"pairs"`
	PopularPages int        `toml:"popular_pages"`
	Concurrency  int        `toml:"concurrency"`
}

// SelectedPairs returns the configured pairs as name tuples.
// Malformed entries are rejected by Validate.
func (p PrecomputeConfig) SelectedPairs() [][2]string {
	out := make([][2]string, 0, len(p.Pairs))
	for _, pair := range p.Pairs {
		if len(pair) == 2 {
			out = append(out, [2]string{pair[0], pair[1]})
		}
	}
	return out
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved variables and validation failures are returned together as a *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cfgErr := &ConfigError{
		Path:    path,
		Missing: missing,
		Errors:  cfg.Validate(),
	}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}

	return &cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation. Unresolved variables are left as written.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, _ := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.ActorRate == "" {
		c.Server.ActorRate = DefaultActorRate
	}
	if c.Server.MoviesRate == "" {
		c.Server.MoviesRate = DefaultMoviesRate
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/screenpairs.db"
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org"
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "en-US"
	}
	if c.Cache.PairBackend == "" {
		c.Cache.PairBackend = PairBackendFile
	}
	if c.Cache.PairFile == "" {
		c.Cache.PairFile = "./data/api_cache.json"
	}
	if c.Cache.MovieBackend == "" {
		c.Cache.MovieBackend = MovieBackendMemory
	}
	if c.Cache.PruneInterval == 0 {
		c.Cache.PruneInterval = time.Hour
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Precompute.PopularPages == 0 {
		c.Precompute.PopularPages = 10
	}
	if c.Precompute.Concurrency == 0 {
		c.Precompute.Concurrency = 4
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unset variables are left in place and reported in missing. An empty value
// counts as unset for the :- and :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})

	return result, missing
}
