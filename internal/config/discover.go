package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnvPath names the environment variable that overrides discovery. It may
// point at a file or at a directory holding config.toml.
const EnvPath = "SCREENPAIRS_CONFIG"

const fileName = "config.toml"

// ErrNotFound is returned by Discover when no candidate file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns $XDG_CONFIG_HOME/screenpairs/config.toml, falling back
// to ~/.config and then the working directory.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./" + fileName
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "screenpairs", fileName)
}

// SearchPaths lists the files Discover tries when EnvPath is unset, in order.
func SearchPaths() []string {
	return []string{
		"./" + fileName,
		DefaultPath(),
		filepath.Join("/etc/screenpairs", fileName),
	}
}

// Discover returns the config file to load: EnvPath when set, otherwise the
// first existing entry of SearchPaths.
func Discover() (string, error) {
	return discover(afero.NewOsFs(), os.Getenv(EnvPath))
}

func discover(fs afero.Fs, override string) (string, error) {
	if override != "" {
		info, err := fs.Stat(override)
		if err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvPath, override, err)
		}
		if !info.IsDir() {
			return override, nil
		}
		inDir := filepath.Join(override, fileName)
		if !isFile(fs, inDir) {
			return "", fmt.Errorf("%s=%s: no %s in directory: %w", EnvPath, override, fileName, ErrNotFound)
		}
		return inDir, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if isFile(fs, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
