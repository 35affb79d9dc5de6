// Package config loads the optional YAML configuration file. Values
// from the file sit below command-line flags and environment variables
// in precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds file locations and search defaults.
type Config struct {
	FOONFile    string `yaml:"foon_file"`
	KitchenFile string `yaml:"kitchen_file"`
	MotionFile  string `yaml:"motion_file"`
	DBPath      string `yaml:"db_path"`
	Strategy    string `yaml:"strategy"`
	MaxDepth    int    `yaml:"max_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FOONFile:    "FOON.txt",
		KitchenFile: "kitchen.txt",
		MotionFile:  "motion.txt",
		Strategy:    "ids",
		MaxDepth:    40,
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".foon", "foon.yaml")
}

// Load reads the config at path, layering it over Default. When path
// is empty the default location is tried and a missing file there is
// not an error; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Strategy != "ids" && cfg.Strategy != "astar" {
		return cfg, fmt.Errorf("config %s: unknown strategy %q", path, cfg.Strategy)
	}
	if cfg.MaxDepth <= 0 {
		return cfg, fmt.Errorf("config %s: max_depth must be positive, got %d", path, cfg.MaxDepth)
	}

	return cfg, nil
}
