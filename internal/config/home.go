package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigFile is the config filename looked up relative to the
// working directory when --config is not given.
const DefaultConfigFile = ".doclint.yaml"

// GetDoclintHome returns the doclint home directory
// Priority order:
//  1. DOCLINT_HOME environment variable (if set)
//  2. Repository root (detected by a .doclint-root marker or go.mod)
//  3. Current working directory (fallback)
//
// The directory is created if it doesn't exist
func GetDoclintHome() (string, error) {
	if home := os.Getenv("DOCLINT_HOME"); home != "" {
		return home, nil
	}

	if root, err := findRepoRoot(); err == nil && root != "" {
		return ensureDir(filepath.Join(root, ".doclint"))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return ensureDir(filepath.Join(cwd, ".doclint"))
}

// findRepoRoot walks up from the working directory looking for a
// .doclint-root marker file or a go.mod.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	current := cwd
	for {
		// Marker file takes priority over go.mod detection
		if _, err := os.Stat(filepath.Join(current, ".doclint-root")); err == nil {
			return current, nil
		}

		if data, err := os.ReadFile(filepath.Join(current, "go.mod")); err == nil {
			if strings.Contains(string(data), "module ") {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("repository root not found (looking for .doclint-root or go.mod)")
}

func ensureDir(path string) (string, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("create doclint home directory: %w", err)
	}
	return path, nil
}

// GetHistoryDBPath returns the absolute path to the run-history database
// Always returns: $DOCLINT_HOME/history/runs.db
func GetHistoryDBPath() (string, error) {
	home, err := GetDoclintHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history", "runs.db"), nil
}
