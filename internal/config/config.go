package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HistoryConfig represents run-history configuration
type HistoryConfig struct {
	// Enabled enables recording of validation runs
	Enabled bool `yaml:"enabled"`

	// DBPath overrides the history database path (defaults to the
	// doclint home, see GetHistoryDBPath)
	DBPath string `yaml:"db_path"`

	// KeepRunsDays is the number of days to keep run history
	KeepRunsDays int `yaml:"keep_runs_days"`
}

// Config represents doclint configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// DisabledRules lists validation rule names to skip
	// (e.g. "unlabeled code block")
	DisabledRules []string `yaml:"disabled_rules"`

	// History contains run-history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		DisabledRules: nil,
		History: HistoryConfig{
			Enabled:      true,
			KeepRunsDays: 90,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if len(fileCfg.DisabledRules) > 0 {
		cfg.DisabledRules = fileCfg.DisabledRules
	}
	if fileCfg.History.DBPath != "" {
		cfg.History.DBPath = fileCfg.History.DBPath
	}
	if fileCfg.History.KeepRunsDays != 0 {
		cfg.History.KeepRunsDays = fileCfg.History.KeepRunsDays
	}
	// Enabled defaults to true; an explicit "enabled: false" must win
	cfg.History.Enabled = historyEnabled(data, fileCfg.History.Enabled)

	return cfg, nil
}

// historyEnabled resolves the history.enabled flag. YAML unmarshals a
// missing bool as false, so the raw document is checked for whether the
// key was present at all.
func historyEnabled(raw []byte, parsed bool) bool {
	var probe struct {
		History map[string]interface{} `yaml:"history"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return true
	}
	if _, present := probe.History["enabled"]; !present {
		return true
	}
	return parsed
}
