package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

//go:embed default_config.toml
var defaultConfig string

// ErrExists is returned by WriteDefault when the target file is already there.
var ErrExists = errors.New("config file already exists")

// Config files hold the TMDB token once substituted, so they are owner-only.
const fileMode = 0o600

// WriteDefault writes the example config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	return writeDefault(afero.NewOsFs(), path, force)
}

func writeDefault(fs afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	return replaceFile(fs, path, []byte(defaultConfig))
}

// Write encodes c as TOML and atomically replaces path with it.
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return replaceFile(afero.NewOsFs(), path, buf.Bytes())
}

// replaceFile writes data to a temp file next to path and renames it into place.
func replaceFile(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = fs.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := fs.Chmod(tmpName, fileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
