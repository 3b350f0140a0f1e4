// Package config loads the pb configuration from
// ~/.config/pb/config.toml (or $XDG_CONFIG_HOME/pb/config.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the pb configuration.
type Config struct {
	// PlansDir is the search root for plan directories.
	PlansDir string `toml:"plans_dir"`
	// BranchPrefix is prepended to derived branch names.
	BranchPrefix string `toml:"branch_prefix"`
	// TrunkBranches are the branch names feature branches may be cut
	// from.
	TrunkBranches []string `toml:"trunk_branches"`
	// Color controls colored status output: "auto", "always" or
	// "never".
	Color string `toml:"color"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PlansDir:      "plans",
		BranchPrefix:  "feature/",
		TrunkBranches: []string{"main", "master"},
		Color:         "auto",
	}
}

// Path returns the config file location.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pb", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pb", "config.toml"), nil
}

// Load reads the config file. A missing file yields Default() without
// error; an invalid file is an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Unset fields fall
// back to their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	// Expand ~ in plans_dir (the shell doesn't expand inside config
	// files).
	if expanded, err := expandPath(cfg.PlansDir); err == nil {
		cfg.PlansDir = expanded
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got: %q", c.Color)
	}
	if len(c.TrunkBranches) == 0 {
		return fmt.Errorf("trunk_branches must not be empty")
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
