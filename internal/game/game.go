// Package game wires the Sokoban engine (level parser, board, session)
// into a playable registry.Game and renders it to a screen buffer.
package game

import (
	"fmt"

	"github.com/nathanchatagny/Sokoban/internal/config"
	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/game/board"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
	"github.com/nathanchatagny/Sokoban/internal/game/session"
	"github.com/nathanchatagny/Sokoban/internal/registry"
)

// Package-level knobs set by the CLI before game creation
// (same pattern as the platform's other entry points).
var (
	configPath         string
	selectedStartLevel int // 1-based; 0 means start from the first level
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level (1-based). 0 starts from the beginning.
func SetStartLevel(n int) {
	selectedStartLevel = n
}

func init() {
	packs, err := level.BuiltinPacks()
	if err != nil {
		// Embedded assets failed to parse: programmer error, fail loudly.
		panic(fmt.Sprintf("game: loading builtin packs: %v", err))
	}
	for _, p := range packs {
		RegisterPack(p)
	}
}

// RegisterPack makes a level pack playable via the registry.
// Used for builtin packs and for packs loaded from --levels directories.
func RegisterPack(p *level.Pack) {
	registry.Register(p.ID, func() registry.Game {
		return New(p)
	})
}

// Game runs one pack as a play-through. It owns the session exclusively;
// the platform holds read access through the query methods and mutates
// only through Step.
type Game struct {
	pack *level.Pack
	cfg  config.Config
	sess *session.Session

	glyphs map[level.Symbol]rune
	colors map[level.Symbol]core.Color

	// blocked holds the result of the last rejected move, shown on the
	// status line until the next accepted input.
	blocked    board.MoveResult
	hasBlocked bool
}

// New creates a game for the given pack. Reset must be called before Step.
func New(p *level.Pack) *Game {
	return &Game{pack: p}
}

// ID returns the pack identifier.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban: " + g.pack.Title
}

// LevelCount returns the number of levels in the pack.
func (g *Game) LevelCount() int {
	return len(g.pack.Levels)
}

// LevelIDs returns the pack's level identifiers in sequence order.
func (g *Game) LevelIDs() []string {
	return g.pack.LevelIDs()
}

// Reset starts a fresh play-through of the pack.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg
	g.buildTheme()

	start := 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.pack.Levels) {
		start = selectedStartLevel - 1
		selectedStartLevel = 0 // Consumed
	}

	scoring := session.Scoring{
		Base:    cfg.Scoring.Base,
		Penalty: cfg.Scoring.Penalty,
		Floor:   cfg.Scoring.Floor,
	}
	// NewAt only fails on an empty pack or a bad index, both excluded above.
	g.sess, _ = session.NewAt(g.pack.Levels, scoring, start)
	g.hasBlocked = false
}

// buildTheme resolves the configured glyphs and per-symbol colors.
func (g *Game) buildTheme() {
	t := g.cfg.Theme
	g.glyphs = map[level.Symbol]rune{
		level.SymWall:         config.Rune(t.Wall, '█'),
		level.SymBox:          config.Rune(t.Box, '▣'),
		level.SymBoxOnGoal:    config.Rune(t.BoxOnGoal, '◉'),
		level.SymPlayer:       config.Rune(t.Player, '@'),
		level.SymPlayerOnGoal: config.Rune(t.PlayerOnGoal, '@'),
		level.SymGoal:         config.Rune(t.Goal, '·'),
		level.SymFloor:        config.Rune(t.Floor, ' '),
	}
	g.colors = map[level.Symbol]core.Color{
		level.SymWall:         core.ColorGray,
		level.SymBox:          core.ColorYellow,
		level.SymBoxOnGoal:    core.ColorBrightGreen,
		level.SymPlayer:       core.ColorBrightYellow,
		level.SymPlayerOnGoal: core.ColorBrightGreen,
		level.SymGoal:         core.ColorCyan,
		level.SymFloor:        core.ColorDefault,
	}
}

// Step processes one input event. One call, one engine operation: a
// direction becomes a move, restart rebuilds the level, confirm advances
// past a completed level. Invalid moves leave all state untouched.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sess == nil {
		return core.StepResult{}
	}

	var completed *core.LevelResult

	switch g.sess.Phase() {
	case session.PhasePlaying:
		if d, ok := directionFor(in); ok {
			result, _ := g.sess.Move(d)
			g.hasBlocked = result != board.MoveOK
			g.blocked = result
			if g.sess.Phase() == session.PhaseLevelComplete {
				completed = &core.LevelResult{
					LevelID: g.sess.Level().ID,
					Moves:   g.sess.Board().Moves(),
					Pushes:  g.sess.Board().Pushes(),
					Score:   g.sess.LastLevelScore(),
				}
			}
		} else if in.Has(core.ActionRestart) {
			g.sess.Restart()
			g.hasBlocked = false
		}

	case session.PhaseLevelComplete:
		if in.Has(core.ActionConfirm) {
			g.sess.Advance()
			g.hasBlocked = false
		}

	case session.PhaseGameComplete:
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
		}
	}

	return core.StepResult{State: g.State(), Completed: completed}
}

// directionFor extracts a move direction from the input frame.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	default:
		return 0, false
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sess.TotalScore(),
		GameOver: g.sess.Phase() == session.PhaseGameComplete,
	}
}

// Session exposes the underlying session for the platform's level
// selector and persistence hooks.
func (g *Game) Session() *session.Session {
	return g.sess
}
