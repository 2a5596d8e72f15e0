// Package session sequences levels for one play-through: it owns the
// current board, computes per-level scores, and runs the
// Playing -> LevelComplete -> {Playing, GameComplete} state machine.
package session

import (
	"fmt"

	"github.com/nathanchatagny/Sokoban/internal/game/board"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Scoring defines the per-level score formula:
// max(Base - moves*Penalty, Floor). The floor keeps long solves from
// scoring zero while still rewarding efficiency.
type Scoring struct {
	Base    int
	Penalty int
	Floor   int
}

// DefaultScoring returns the standard formula values.
func DefaultScoring() Scoring {
	return Scoring{Base: 10000, Penalty: 10, Floor: 100}
}

// LevelScore computes the score for a level solved in the given number
// of moves.
func (s Scoring) LevelScore(moves int) int {
	score := s.Base - moves*s.Penalty
	if score < s.Floor {
		return s.Floor
	}
	return score
}

// Session sequences a fixed list of levels. It persists for one
// play-through; boards are discarded and rebuilt wholesale on restart and
// on level advance, never reset in place.
type Session struct {
	levels  []*level.Level
	scoring Scoring

	index      int
	board      *board.Board
	phase      Phase
	totalScore int
	lastScore  int // Score awarded for the most recently completed level
}

// New starts a session at the first level of the sequence.
func New(levels []*level.Level, scoring Scoring) (*Session, error) {
	return NewAt(levels, scoring, 0)
}

// NewAt starts a session at the given level index. Used by the level
// selector to resume a partially completed pack.
func NewAt(levels []*level.Level, scoring Scoring, start int) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("session: empty level sequence")
	}
	if start < 0 || start >= len(levels) {
		return nil, fmt.Errorf("session: start index %d out of range [0, %d)", start, len(levels))
	}

	s := &Session{
		levels:  levels,
		scoring: scoring,
		index:   start,
		phase:   PhasePlaying,
	}
	s.board = board.New(levels[start])
	return s, nil
}

// Board returns the live board for the current level.
func (s *Session) Board() *board.Board {
	return s.board
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// TotalScore returns the accumulated score across completed levels.
func (s *Session) TotalScore() int {
	return s.totalScore
}

// LastLevelScore returns the score awarded for the most recently
// completed level. Zero if no level has been completed yet.
func (s *Session) LastLevelScore() int {
	return s.lastScore
}

// LevelIndex returns the 0-based index of the current level.
func (s *Session) LevelIndex() int {
	return s.index
}

// LevelCount returns the length of the level sequence.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Level returns the parsed definition of the current level.
func (s *Session) Level() *level.Level {
	return s.levels[s.index]
}

// Move forwards a direction to the board while Playing. When the move
// completes the level, the level score is added to the total and the
// session transitions to LevelComplete. Outside Playing nothing is
// dispatched; the second return value reports whether the board was
// consulted at all.
func (s *Session) Move(d board.Direction) (board.MoveResult, bool) {
	if s.phase != PhasePlaying {
		return 0, false
	}

	result := s.board.Move(d)
	if result == board.MoveOK && s.board.Complete() {
		s.lastScore = s.scoring.LevelScore(s.board.Moves())
		s.totalScore += s.lastScore
		s.phase = PhaseLevelComplete
	}
	return result, true
}

// Restart rebuilds the current level from its parsed definition,
// zeroing the counters by reconstruction. Valid only while Playing;
// total score and level index are unchanged.
func (s *Session) Restart() bool {
	if s.phase != PhasePlaying {
		return false
	}
	s.board = board.New(s.levels[s.index])
	return true
}

// Advance moves from LevelComplete to the next level, or to GameComplete
// when the sequence is exhausted. Returns true if a new level was loaded.
func (s *Session) Advance() bool {
	if s.phase != PhaseLevelComplete {
		return false
	}

	if s.index+1 < len(s.levels) {
		s.index++
		s.board = board.New(s.levels[s.index])
		s.phase = PhasePlaying
		return true
	}

	s.phase = PhaseGameComplete
	return false
}
