// Package board implements the Sokoban move-resolution engine: live game
// state (walls, boxes, goals, player, counters) and single-step moves.
package board

import (
	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
)

// Direction is one of the four unit moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for the direction. Exactly one of dx, dy
// is nonzero.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a single move attempt. It is a normal
// control-flow value, never an error: every direction in every state
// yields exactly one of these, and anything but MoveOK mutates nothing.
type MoveResult int

const (
	MoveOK      MoveResult = iota // Move (and possibly push) applied
	BlockedWall                   // Target cell is a wall
	BlockedBox                    // Target box cannot be pushed onward
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case BlockedWall:
		return "can't push walls"
	case BlockedBox:
		return "can't push this box"
	default:
		return "unknown"
	}
}

// Board holds the live state of one level instance. Walls and goals are
// immutable after construction; boxes and the player mutate through Move.
// Occupancy is pure set membership: there is no bounds checking, so the
// player or a pushed box may leave the parsed rectangle through a gap in
// the walls.
type Board struct {
	walls  map[core.Position]bool
	boxes  map[core.Position]bool
	goals  map[core.Position]bool
	player core.Position

	width  int
	height int

	moves  int
	pushes int
}

// New constructs a fresh Board from a parsed level. The level's sets are
// deep-copied, so boards built from the same level are independent and
// restart/advance can always reconstruct from the immutable parse.
func New(l *level.Level) *Board {
	b := &Board{
		walls:  make(map[core.Position]bool, len(l.Walls)),
		boxes:  make(map[core.Position]bool, len(l.Boxes)),
		goals:  make(map[core.Position]bool, len(l.Goals)),
		player: l.Player,
		width:  l.Width,
		height: l.Height,
	}
	for p := range l.Walls {
		b.walls[p] = true
	}
	for p := range l.Boxes {
		b.boxes[p] = true
	}
	for p := range l.Goals {
		b.goals[p] = true
	}
	return b
}

// Width returns the display width inferred from the level text.
func (b *Board) Width() int {
	return b.width
}

// Height returns the display height inferred from the level text.
func (b *Board) Height() int {
	return b.height
}

// Player returns the current player position.
func (b *Board) Player() core.Position {
	return b.player
}

// Occupied reports whether the position holds a wall or a box.
func (b *Board) Occupied(p core.Position) bool {
	return b.walls[p] || b.boxes[p]
}

// Moves returns the number of successful moves so far.
func (b *Board) Moves() int {
	return b.moves
}

// Pushes returns the number of successful box pushes so far.
// Every push is also a move, so Pushes() <= Moves().
func (b *Board) Pushes() int {
	return b.pushes
}

// SymbolAt resolves the display classification of a cell. Goal membership
// is checked first: goal cells can simultaneously host a box or the player,
// and the combined glyph must win over the plain one.
func (b *Board) SymbolAt(x, y int) level.Symbol {
	pos := core.P(x, y)
	if b.goals[pos] {
		if b.boxes[pos] {
			return level.SymBoxOnGoal
		}
		if pos == b.player {
			return level.SymPlayerOnGoal
		}
		return level.SymGoal
	}
	if b.boxes[pos] {
		return level.SymBox
	}
	if pos == b.player {
		return level.SymPlayer
	}
	if b.walls[pos] {
		return level.SymWall
	}
	return level.SymFloor
}

// Complete reports whether every goal holds a box. A level with zero
// goals is never complete; that guards against vacuously-true degenerate
// boards constructed outside the parser.
func (b *Board) Complete() bool {
	if len(b.goals) == 0 {
		return false
	}
	for g := range b.goals {
		if !b.boxes[g] {
			return false
		}
	}
	return true
}

// Move attempts a single step in the given direction.
//
// The player steps into the target cell if it is empty; if the target
// holds a box and the cell one past it is empty, the box is pushed there
// and the player follows. A blocked attempt returns BlockedWall or
// BlockedBox and leaves the player, the boxes, and both counters
// untouched.
func (b *Board) Move(d Direction) MoveResult {
	dx, dy := d.Delta()
	target := b.player.Add(dx, dy)

	switch {
	case !b.Occupied(target):
		b.player = target
		b.moves++
		return MoveOK

	case b.boxes[target]:
		beyond := target.Add(dx, dy)
		if b.Occupied(beyond) {
			return BlockedBox
		}
		delete(b.boxes, target)
		b.boxes[beyond] = true
		b.player = target
		b.moves++
		b.pushes++
		return MoveOK

	default:
		return BlockedWall
	}
}
