package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// resort if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Scoring: ScoringConfig{
			Base:    10000,
			Penalty: 10,
			Floor:   100,
		},
		Theme: ThemeConfig{
			Wall:         "█",
			Box:          "▣",
			BoxOnGoal:    "◉",
			Player:       "@",
			PlayerOnGoal: "@",
			Goal:         "·",
			Floor:        " ",
		},
	}
}
