// Package registry provides a global registry of playable level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nathanchatagny/Sokoban/internal/core"
)

// Game is the interface the platform runs. Implementations contain pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping and terminal rendering.
type Game interface {
	// ID returns a unique identifier (the pack ID, e.g. "classic").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state for a fresh play-through.
	Reset(cfg core.RuntimeConfig)

	// Step processes one input event synchronously. The engine is
	// event-driven: there is no tick loop, one call resolves one event
	// to completion before the next is accepted.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (total score, finished flag).
	State() core.GameState

	// LevelCount returns the number of levels in the pack.
	LevelCount() int

	// LevelIDs returns the pack's level identifiers in sequence order.
	LevelIDs() []string
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory is a function that creates a new game instance for a pack.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	factories[id] = f

	// Capture metadata from a throwaway instance
	g := f()
	infos[id] = PackInfo{ID: id, Title: g.Title(), Levels: g.LevelCount()}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game for the pack with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
