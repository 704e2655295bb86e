// Package config loads docextract settings from file, environment and flags.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "docextract"

// ExpandPath resolves a leading ~ and $VAR references in a configured path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		path = homeOr(path)
	case strings.HasPrefix(path, "~/"):
		if home := homeOr(""); home != "" {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// Dir returns the directory searched for config.yaml: $XDG_CONFIG_HOME/docextract, or
// ~/.config/docextract.
func Dir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the directory holding the result store: $XDG_DATA_HOME/docextract, or
// ~/.local/share/docextract.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// DefaultDatabasePath is the result store used when database.path is not set.
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), "docextract.db")
}

func xdgDir(env, fallback string) string {
	if base := os.Getenv(env); filepath.IsAbs(base) {
		return filepath.Join(base, appDir)
	}
	return filepath.Join(homeOr("."), fallback, appDir)
}

func homeOr(def string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return def
	}
	return home
}
