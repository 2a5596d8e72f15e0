package board

import (
	"testing"

	"github.com/nathanchatagny/Sokoban/internal/core"
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

func TestPushOntoGoalCompletes(t *testing.T) {
	lvl := mustParse(t,
		"#####",
		"#@$.#",
		"#####",
	)
	b := New(lvl)

	result := b.Move(DirRight)
	if result != MoveOK {
		t.Fatalf("Expected MoveOK, got %v", result)
	}

	if b.Player() != core.P(2, 1) {
		t.Errorf("Expected player at (2,1), got %v", b.Player())
	}
	if !b.boxes[core.P(3, 1)] {
		t.Errorf("Expected box pushed onto (3,1)")
	}
	if b.Moves() != 1 || b.Pushes() != 1 {
		t.Errorf("Expected moves=1 pushes=1, got moves=%d pushes=%d", b.Moves(), b.Pushes())
	}
	if !b.Complete() {
		t.Errorf("Board should be complete with every goal covered")
	}
}

func TestMoveIntoWallBlocked(t *testing.T) {
	lvl := mustParse(t,
		"#####",
		"#@$.#",
		"#####",
	)
	b := New(lvl)

	before := snapshot(b)
	result := b.Move(DirUp)
	if result != BlockedWall {
		t.Fatalf("Expected BlockedWall, got %v", result)
	}
	assertUnchanged(t, b, before)
}

func TestPushBlockedByBox(t *testing.T) {
	lvl := mustParse(t,
		"######",
		"#@$$.#",
		"######",
	)
	b := New(lvl)

	before := snapshot(b)
	result := b.Move(DirRight)
	if result != BlockedBox {
		t.Fatalf("Expected BlockedBox, got %v", result)
	}
	assertUnchanged(t, b, before)
}

func TestPushBlockedByWall(t *testing.T) {
	lvl := mustParse(t,
		"####",
		"#@$#",
		"#..#",
		"####",
	)
	b := New(lvl)

	before := snapshot(b)
	result := b.Move(DirRight)
	if result != BlockedBox {
		t.Fatalf("Expected BlockedBox when the box backs onto a wall, got %v", result)
	}
	assertUnchanged(t, b, before)
}

func TestPlainMoveDoesNotCountPush(t *testing.T) {
	lvl := mustParse(t,
		"######",
		"#@ $.#",
		"######",
	)
	b := New(lvl)

	if result := b.Move(DirRight); result != MoveOK {
		t.Fatalf("Expected MoveOK, got %v", result)
	}
	if b.Moves() != 1 || b.Pushes() != 0 {
		t.Errorf("Expected moves=1 pushes=0, got moves=%d pushes=%d", b.Moves(), b.Pushes())
	}
}

func TestNoBoundsClamping(t *testing.T) {
	// The wall ring has a gap on the right; the player walks out of the
	// stored rectangle. Occupancy is set membership only.
	lvl := mustParse(t,
		"####",
		"#@$.",
		"####",
	)
	b := New(lvl)

	b.Move(DirRight) // push box onto the goal at (3,1)
	b.Move(DirRight) // push box past the rectangle edge to (4,1)
	b.Move(DirRight) // box to (5,1), player to (4,1): outside width 4

	if b.Player() != core.P(4, 1) {
		t.Errorf("Expected player at (4,1) beyond the rectangle, got %v", b.Player())
	}
	if !b.boxes[core.P(5, 1)] {
		t.Errorf("Expected box at (5,1) beyond the rectangle")
	}
	if b.Moves() != 3 || b.Pushes() != 3 {
		t.Errorf("Expected moves=3 pushes=3, got moves=%d pushes=%d", b.Moves(), b.Pushes())
	}
}

func TestPushesNeverExceedMoves(t *testing.T) {
	lvl := mustParse(t,
		"#######",
		"#@  $.#",
		"#######",
	)
	b := New(lvl)

	dirs := []Direction{DirRight, DirRight, DirUp, DirRight, DirLeft, DirRight, DirRight}
	for _, d := range dirs {
		b.Move(d)
		if b.Pushes() > b.Moves() {
			t.Fatalf("Pushes %d exceeded moves %d", b.Pushes(), b.Moves())
		}
	}
}

func TestInvariantsAfterMixedMoves(t *testing.T) {
	lvl := mustParse(t,
		"#######",
		"#@ $ .#",
		"# $ . #",
		"#######",
	)
	b := New(lvl)

	dirs := []Direction{DirRight, DirRight, DirDown, DirUp, DirRight, DirLeft, DirDown, DirRight, DirRight}
	for _, d := range dirs {
		b.Move(d)

		for p := range b.boxes {
			if b.walls[p] {
				t.Fatalf("Box and wall overlap at %v", p)
			}
		}
		if b.walls[b.Player()] || b.boxes[b.Player()] {
			t.Fatalf("Player overlaps occupied cell %v", b.Player())
		}
	}
}

func TestSymbolAtPriority(t *testing.T) {
	lvl := mustParse(t,
		"#####",
		"#+*.#",
		"#####",
	)
	b := New(lvl)

	if got := b.SymbolAt(1, 1); got != level.SymPlayerOnGoal {
		t.Errorf("Expected player-on-goal at (1,1), got %c", got)
	}
	if got := b.SymbolAt(2, 1); got != level.SymBoxOnGoal {
		t.Errorf("Expected box-on-goal at (2,1), got %c", got)
	}
	if got := b.SymbolAt(3, 1); got != level.SymGoal {
		t.Errorf("Expected goal at (3,1), got %c", got)
	}
	if got := b.SymbolAt(0, 0); got != level.SymWall {
		t.Errorf("Expected wall at (0,0), got %c", got)
	}
	if got := b.SymbolAt(2, 5); got != level.SymFloor {
		t.Errorf("Expected floor outside the rectangle, got %c", got)
	}
}

func TestZeroGoalBoardNeverComplete(t *testing.T) {
	// Constructed directly, bypassing the parser's goal validation.
	b := &Board{
		walls:  map[core.Position]bool{},
		boxes:  map[core.Position]bool{},
		goals:  map[core.Position]bool{},
		player: core.P(0, 0),
	}
	if b.Complete() {
		t.Errorf("A board with zero goals must never report complete")
	}
}

func TestBoardsFromSameLevelAreIndependent(t *testing.T) {
	lvl := mustParse(t,
		"#####",
		"#@$.#",
		"#####",
	)

	b1 := New(lvl)
	b2 := New(lvl)

	b1.Move(DirRight)

	if b2.Player() != core.P(1, 1) {
		t.Errorf("Second board's player moved: %v", b2.Player())
	}
	if !b2.boxes[core.P(2, 1)] {
		t.Errorf("Second board's box moved")
	}
	if !lvl.Boxes[core.P(2, 1)] {
		t.Errorf("Parsed level mutated by a board move")
	}
}

// boardState is a full value snapshot used to verify that blocked moves
// mutate nothing.
type boardState struct {
	player core.Position
	moves  int
	pushes int
	boxes  map[core.Position]bool
}

func snapshot(b *Board) boardState {
	boxes := make(map[core.Position]bool, len(b.boxes))
	for p := range b.boxes {
		boxes[p] = true
	}
	return boardState{player: b.player, moves: b.moves, pushes: b.pushes, boxes: boxes}
}

func assertUnchanged(t *testing.T, b *Board, before boardState) {
	t.Helper()
	if b.player != before.player {
		t.Errorf("Player moved: %v -> %v", before.player, b.player)
	}
	if b.moves != before.moves || b.pushes != before.pushes {
		t.Errorf("Counters changed: moves %d->%d pushes %d->%d",
			before.moves, b.moves, before.pushes, b.pushes)
	}
	if len(b.boxes) != len(before.boxes) {
		t.Errorf("Box count changed: %d -> %d", len(before.boxes), len(b.boxes))
	}
	for p := range before.boxes {
		if !b.boxes[p] {
			t.Errorf("Box at %v moved", p)
		}
	}
}
