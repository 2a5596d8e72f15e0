package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Sokoban configuration.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/sokoban.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "config.yaml")
}

// withDefaults fills zero-valued fields so a partial config file still
// produces a playable setup.
func withDefaults(cfg Config) Config {
	def := Default()

	if cfg.Scoring.Base <= 0 {
		cfg.Scoring.Base = def.Scoring.Base
	}
	if cfg.Scoring.Penalty <= 0 {
		cfg.Scoring.Penalty = def.Scoring.Penalty
	}
	if cfg.Scoring.Floor <= 0 {
		cfg.Scoring.Floor = def.Scoring.Floor
	}

	if cfg.Theme.Wall == "" {
		cfg.Theme.Wall = def.Theme.Wall
	}
	if cfg.Theme.Box == "" {
		cfg.Theme.Box = def.Theme.Box
	}
	if cfg.Theme.BoxOnGoal == "" {
		cfg.Theme.BoxOnGoal = def.Theme.BoxOnGoal
	}
	if cfg.Theme.Player == "" {
		cfg.Theme.Player = def.Theme.Player
	}
	if cfg.Theme.PlayerOnGoal == "" {
		cfg.Theme.PlayerOnGoal = def.Theme.PlayerOnGoal
	}
	if cfg.Theme.Goal == "" {
		cfg.Theme.Goal = def.Theme.Goal
	}
	if cfg.Theme.Floor == "" {
		cfg.Theme.Floor = def.Theme.Floor
	}

	return cfg
}
