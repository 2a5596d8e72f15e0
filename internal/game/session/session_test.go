package session

import (
	"testing"

	"github.com/nathanchatagny/Sokoban/internal/game/board"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
)

func mustParse(t *testing.T, rows ...string) *level.Level {
	t.Helper()
	lvl, err := level.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return lvl
}

// oneMoveLevel is solvable with a single push to the right.
func oneMoveLevel(t *testing.T) *level.Level {
	return mustParse(t,
		"#####",
		"#@$.#",
		"#####",
	)
}

func TestLevelScoreFormula(t *testing.T) {
	s := DefaultScoring()

	cases := []struct {
		moves int
		want  int
	}{
		{0, 10000},
		{1, 9990},
		{50, 9500},
		{990, 100},
		{1000, 100}, // floor
		{5000, 100}, // floor
	}

	for _, tc := range cases {
		if got := s.LevelScore(tc.moves); got != tc.want {
			t.Errorf("LevelScore(%d) = %d, want %d", tc.moves, got, tc.want)
		}
	}
}

func TestSessionRejectsEmptySequence(t *testing.T) {
	if _, err := New(nil, DefaultScoring()); err == nil {
		t.Errorf("New() should fail on an empty sequence")
	}
	if _, err := NewAt([]*level.Level{oneMoveLevel(t)}, DefaultScoring(), 3); err == nil {
		t.Errorf("NewAt() should fail on an out-of-range start index")
	}
}

func TestCompletingLevelScoresAndTransitions(t *testing.T) {
	sess, err := New([]*level.Level{oneMoveLevel(t)}, DefaultScoring())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if sess.Phase() != PhasePlaying {
		t.Fatalf("Expected playing phase, got %v", sess.Phase())
	}

	result, handled := sess.Move(board.DirRight)
	if !handled || result != board.MoveOK {
		t.Fatalf("Expected handled MoveOK, got %v handled=%v", result, handled)
	}

	if sess.Phase() != PhaseLevelComplete {
		t.Errorf("Expected level_complete, got %v", sess.Phase())
	}
	if sess.LastLevelScore() != 9990 {
		t.Errorf("Expected level score 9990 for 1 move, got %d", sess.LastLevelScore())
	}
	if sess.TotalScore() != 9990 {
		t.Errorf("Expected total 9990, got %d", sess.TotalScore())
	}
}

func TestMoveIgnoredOutsidePlaying(t *testing.T) {
	sess, _ := New([]*level.Level{oneMoveLevel(t)}, DefaultScoring())
	sess.Move(board.DirRight) // completes the level

	_, handled := sess.Move(board.DirLeft)
	if handled {
		t.Errorf("Move must not be dispatched while level_complete")
	}
	if sess.Board().Moves() != 1 {
		t.Errorf("Board mutated outside playing: moves=%d", sess.Board().Moves())
	}
}

func TestTwoLevelWalkthrough(t *testing.T) {
	levels := []*level.Level{oneMoveLevel(t), oneMoveLevel(t)}
	sess, err := New(levels, DefaultScoring())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Level 1
	sess.Move(board.DirRight)
	if sess.Phase() != PhaseLevelComplete {
		t.Fatalf("Expected level_complete after level 1, got %v", sess.Phase())
	}
	if !sess.Advance() {
		t.Fatalf("Advance() should load level 2")
	}
	if sess.Phase() != PhasePlaying || sess.LevelIndex() != 1 {
		t.Fatalf("Expected playing on level index 1, got %v index %d", sess.Phase(), sess.LevelIndex())
	}
	if sess.Board().Moves() != 0 {
		t.Errorf("Fresh level should start with zero moves, got %d", sess.Board().Moves())
	}

	// Level 2
	sess.Move(board.DirRight)
	if sess.Advance() {
		t.Errorf("Advance() past the last level should return false")
	}
	if sess.Phase() != PhaseGameComplete {
		t.Errorf("Expected game_complete, got %v", sess.Phase())
	}

	if sess.TotalScore() != 2*9990 {
		t.Errorf("Expected total %d, got %d", 2*9990, sess.TotalScore())
	}
}

func TestRestartRebuildsBoard(t *testing.T) {
	lvl := mustParse(t,
		"######",
		"#@ $.#",
		"######",
	)
	sess, _ := New([]*level.Level{lvl}, DefaultScoring())

	sess.Move(board.DirRight) // step, no push
	if sess.Board().Moves() != 1 {
		t.Fatalf("Expected 1 move before restart, got %d", sess.Board().Moves())
	}

	if !sess.Restart() {
		t.Fatalf("Restart() should succeed while playing")
	}

	b := sess.Board()
	if b.Moves() != 0 || b.Pushes() != 0 {
		t.Errorf("Counters not reset: moves=%d pushes=%d", b.Moves(), b.Pushes())
	}
	if b.Player() != lvl.Player {
		t.Errorf("Player not back at start: %v", b.Player())
	}
	if sess.TotalScore() != 0 || sess.LevelIndex() != 0 {
		t.Errorf("Restart must not touch score or level index")
	}
}

func TestRestartOnlyWhilePlaying(t *testing.T) {
	sess, _ := New([]*level.Level{oneMoveLevel(t)}, DefaultScoring())
	sess.Move(board.DirRight)

	if sess.Restart() {
		t.Errorf("Restart() must be rejected while level_complete")
	}
	if sess.Phase() != PhaseLevelComplete {
		t.Errorf("Phase changed by rejected restart: %v", sess.Phase())
	}
}

func TestAdvanceOnlyAfterCompletion(t *testing.T) {
	sess, _ := New([]*level.Level{oneMoveLevel(t), oneMoveLevel(t)}, DefaultScoring())

	if sess.Advance() {
		t.Errorf("Advance() must be rejected while playing")
	}
	if sess.LevelIndex() != 0 {
		t.Errorf("Level index changed by rejected advance")
	}
}

func TestGameCompleteIsTerminal(t *testing.T) {
	sess, _ := New([]*level.Level{oneMoveLevel(t)}, DefaultScoring())
	sess.Move(board.DirRight)
	sess.Advance()

	if sess.Phase() != PhaseGameComplete {
		t.Fatalf("Expected game_complete, got %v", sess.Phase())
	}

	if sess.Advance() {
		t.Errorf("Advance() must do nothing in game_complete")
	}
	if sess.Restart() {
		t.Errorf("Restart() must do nothing in game_complete")
	}
	if _, handled := sess.Move(board.DirLeft); handled {
		t.Errorf("Move() must do nothing in game_complete")
	}
}

func TestNewAtStartsMidPack(t *testing.T) {
	levels := []*level.Level{oneMoveLevel(t), oneMoveLevel(t), oneMoveLevel(t)}
	sess, err := NewAt(levels, DefaultScoring(), 2)
	if err != nil {
		t.Fatalf("NewAt() failed: %v", err)
	}

	if sess.LevelIndex() != 2 {
		t.Errorf("Expected start at index 2, got %d", sess.LevelIndex())
	}

	sess.Move(board.DirRight)
	if sess.Advance() {
		t.Errorf("Advance() from the last level should finish the game")
	}
	if sess.Phase() != PhaseGameComplete {
		t.Errorf("Expected game_complete, got %v", sess.Phase())
	}
}
