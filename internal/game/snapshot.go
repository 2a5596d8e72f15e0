package game

import "github.com/nathanchatagny/Sokoban/internal/core"

// Snapshot is a point-in-time view of the play-through, used by tests
// and debugging tooling.
type Snapshot struct {
	Phase      string
	LevelIndex int
	LevelID    string
	TotalScore int
	Moves      int
	Pushes     int
	Player     core.Position
}

// Snapshot captures the current session and board state.
func (g *Game) Snapshot() Snapshot {
	if g.sess == nil {
		return Snapshot{}
	}
	b := g.sess.Board()
	return Snapshot{
		Phase:      g.sess.Phase().String(),
		LevelIndex: g.sess.LevelIndex(),
		LevelID:    g.sess.Level().ID,
		TotalScore: g.sess.TotalScore(),
		Moves:      b.Moves(),
		Pushes:     b.Pushes(),
		Player:     b.Player(),
	}
}
