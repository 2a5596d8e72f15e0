package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt rendering to the terminal size.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Accumulated score across completed levels
	GameOver bool // True once the whole level sequence is finished
}

// LevelResult describes one solved level. It is reported exactly once,
// on the step whose move completed the level.
type LevelResult struct {
	LevelID string
	Moves   int
	Pushes  int
	Score   int
}

// StepResult is returned by Game.Step() after each processed input event.
type StepResult struct {
	State     GameState
	Completed *LevelResult
}
