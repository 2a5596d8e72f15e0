package game

import (
	"strings"
	"testing"

	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
	"github.com/nathanchatagny/Sokoban/internal/registry"
)

func testPack(t *testing.T) *level.Pack {
	t.Helper()
	rows := []string{
		"#####",
		"#@$.#",
		"#####",
	}
	l1, err := level.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	l1.ID = "01"
	l2, err := level.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	l2.ID = "02"
	return &level.Pack{ID: "test", Title: "Test", Levels: []*level.Level{l1, l2}}
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{"tutorial", "classic"} {
		if !registry.Exists(id) {
			t.Errorf("Builtin pack %q not registered", id)
		}
	}
}

func TestGamePlaythrough(t *testing.T) {
	g := New(testPack(t))
	g.Reset(core.DefaultConfig())

	snap := g.Snapshot()
	if snap.Phase != "playing" || snap.LevelIndex != 0 {
		t.Fatalf("Unexpected initial snapshot: %+v", snap)
	}

	// Solve level 1 with a single push
	result := press(g, core.ActionRight)
	snap = g.Snapshot()
	if snap.Phase != "level_complete" {
		t.Fatalf("Expected level_complete, got %s", snap.Phase)
	}
	if snap.TotalScore != 9990 {
		t.Errorf("Expected score 9990, got %d", snap.TotalScore)
	}
	if result.Completed == nil {
		t.Fatal("Completing step should carry a level result")
	}
	if result.Completed.LevelID != "01" || result.Completed.Moves != 1 ||
		result.Completed.Pushes != 1 || result.Completed.Score != 9990 {
		t.Errorf("Unexpected level result: %+v", result.Completed)
	}

	// Confirm advances to level 2; no level result on a plain advance
	if adv := press(g, core.ActionConfirm); adv.Completed != nil {
		t.Errorf("Advance step should not carry a level result")
	}
	snap = g.Snapshot()
	if snap.Phase != "playing" || snap.LevelIndex != 1 || snap.Moves != 0 {
		t.Fatalf("Expected fresh level 2, got %+v", snap)
	}

	// Solve level 2 and finish the pack
	press(g, core.ActionRight)
	result = press(g, core.ActionConfirm)
	snap = g.Snapshot()
	if snap.Phase != "game_complete" {
		t.Fatalf("Expected game_complete, got %s", snap.Phase)
	}
	if !result.State.GameOver {
		t.Errorf("StepResult should report game over")
	}
	if snap.TotalScore != 2*9990 {
		t.Errorf("Expected total %d, got %d", 2*9990, snap.TotalScore)
	}
}

func TestGameRestartAction(t *testing.T) {
	g := New(testPack(t))
	g.Reset(core.DefaultConfig())

	press(g, core.ActionUp) // blocked by wall, no mutation
	press(g, core.ActionRestart)

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Pushes != 0 {
		t.Errorf("Restart did not reset counters: %+v", snap)
	}
	if snap.Phase != "playing" {
		t.Errorf("Expected playing after restart, got %s", snap.Phase)
	}
}

func TestGameBlockedMoveMessage(t *testing.T) {
	g := New(testPack(t))
	g.Reset(core.DefaultConfig())

	press(g, core.ActionUp) // wall above the player
	if !g.hasBlocked || g.blocked.String() != "can't push walls" {
		t.Errorf("Expected wall message, got %q (hasBlocked=%v)", g.blocked.String(), g.hasBlocked)
	}

	press(g, core.ActionRight) // valid push clears the message
	if g.hasBlocked {
		t.Errorf("Accepted move should clear the blocked message")
	}
}

func TestGameRestartAfterCompletion(t *testing.T) {
	g := New(testPack(t))
	g.Reset(core.DefaultConfig())

	// Finish the whole pack
	press(g, core.ActionRight)
	press(g, core.ActionConfirm)
	press(g, core.ActionRight)
	press(g, core.ActionConfirm)

	if g.Snapshot().Phase != "game_complete" {
		t.Fatalf("Setup failed: %+v", g.Snapshot())
	}

	// Restart starts a fresh play-through
	press(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.Phase != "playing" || snap.LevelIndex != 0 || snap.TotalScore != 0 {
		t.Errorf("Expected fresh play-through, got %+v", snap)
	}
}

func TestGameRenderDrawsBoardAndHUD(t *testing.T) {
	g := New(testPack(t))
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if out == "" {
		t.Fatal("Render produced an empty screen")
	}

	// HUD carries the title and counters
	title := g.Title()
	if !containsText(screen, title) {
		t.Errorf("HUD missing title %q", title)
	}
	if !containsText(screen, "moves 0") {
		t.Errorf("HUD missing move counter")
	}
}

// containsText scans every screen row for the given substring.
func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
