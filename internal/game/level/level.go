// Package level parses textual Sokoban level descriptions (the XSB glyph
// format) into sparse entity sets, and loads level packs from disk or from
// the embedded campaign.
package level

import (
	"fmt"
	"strings"

	"github.com/nathanchatagny/Sokoban/internal/core"
)

// Symbol is a single level glyph. The values match the characters used in
// .xsb level files.
type Symbol rune

const (
	SymBox          Symbol = '$'
	SymBoxOnGoal    Symbol = '*'
	SymPlayer       Symbol = '@'
	SymPlayerOnGoal Symbol = '+'
	SymGoal         Symbol = '.'
	SymWall         Symbol = '#'
	SymFloor        Symbol = '-'
)

// MalformedLevelError reports a level that cannot produce a playable board:
// zero rows, a player count other than one, or no goals.
type MalformedLevelError struct {
	Reason string
}

func (e *MalformedLevelError) Error() string {
	return fmt.Sprintf("level: malformed level: %s", e.Reason)
}

// Level is the parsed, immutable placement of one level. Unoccupied cells
// are implicit: only walls, boxes, and goals are stored. Dimensions are
// display bounds only; movement legality is never range-checked.
type Level struct {
	ID   string
	Name string
	Rows []string // Original text rows, kept for display/debugging

	Walls  map[core.Position]bool
	Boxes  map[core.Position]bool
	Goals  map[core.Position]bool
	Player core.Position

	Width  int
	Height int
}

// Parse converts text rows into a Level. Each row is one board row, one
// glyph per cell. Box-on-goal contributes to both boxes and goals;
// player-on-goal sets the player and contributes to goals. Floor and
// unrecognized glyphs are not stored. Rows are assumed equal length;
// jagged rows are not padded or rejected.
func Parse(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, &MalformedLevelError{Reason: "no rows"}
	}

	l := &Level{
		Rows:   rows,
		Walls:  make(map[core.Position]bool),
		Boxes:  make(map[core.Position]bool),
		Goals:  make(map[core.Position]bool),
		Height: len(rows),
	}

	// Width comes from the first row after trimming the line terminator.
	l.Width = len(trimRow(rows[0]))

	players := 0
	for y, row := range rows {
		for x, glyph := range trimRow(row) {
			pos := core.P(x, y)
			switch Symbol(glyph) {
			case SymBox:
				l.Boxes[pos] = true
			case SymBoxOnGoal:
				l.Boxes[pos] = true
				l.Goals[pos] = true
			case SymPlayer:
				l.Player = pos
				players++
			case SymPlayerOnGoal:
				l.Player = pos
				l.Goals[pos] = true
				players++
			case SymGoal:
				l.Goals[pos] = true
			case SymWall:
				l.Walls[pos] = true
				// Floor and anything else is implicit empty space.
			}
		}
	}

	if players != 1 {
		return nil, &MalformedLevelError{Reason: fmt.Sprintf("expected exactly 1 player, found %d", players)}
	}
	if len(l.Goals) == 0 {
		return nil, &MalformedLevelError{Reason: "no goals"}
	}

	return l, nil
}

// trimRow strips the line terminator and trailing whitespace from a row.
// Leading whitespace is significant (it positions the row's glyphs).
func trimRow(row string) string {
	return strings.TrimRight(row, " \t\r\n")
}
