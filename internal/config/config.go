// Package config provides YAML-based configuration loading for the
// Sokoban platform: the scoring formula and the display theme.
package config

// Config is the root configuration document (sokoban.yaml).
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// ScoringConfig defines the per-level score formula
// max(base - moves*penalty, floor).
type ScoringConfig struct {
	Base    int `yaml:"base"`
	Penalty int `yaml:"penalty"`
	Floor   int `yaml:"floor"`
}

// ThemeConfig overrides the glyphs used to draw board cells. Each value
// is a string whose first rune is used; empty values keep the default.
type ThemeConfig struct {
	Wall         string `yaml:"wall"`
	Box          string `yaml:"box"`
	BoxOnGoal    string `yaml:"box_on_goal"`
	Player       string `yaml:"player"`
	PlayerOnGoal string `yaml:"player_on_goal"`
	Goal         string `yaml:"goal"`
	Floor        string `yaml:"floor"`
}

// Rune returns the first rune of s, or fallback when s is empty.
func Rune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
