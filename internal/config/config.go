// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file locations and environment for a larder session.
type Config struct {
	// PantryFile is the YAML snapshot the inventory is loaded from and
	// saved back to.
	PantryFile string `yaml:"pantry_file"`
	// RecipesFile is the YAML collection of recipes.
	RecipesFile string `yaml:"recipes_file"`
	// Environment selects the log level ("dev" enables debug).
	Environment string `yaml:"environment"`
}

// Default returns the configuration used when no config file exists,
// rooted under the user's home directory.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".larder")
	return Config{
		PantryFile:  filepath.Join(base, "pantry.yaml"),
		RecipesFile: filepath.Join(base, "recipes.yaml"),
		Environment: "prod",
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Environment == "" {
		cfg.Environment = "prod"
	}
	return cfg, nil
}
