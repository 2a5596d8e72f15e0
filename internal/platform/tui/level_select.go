package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/storage"
)

// LevelSelection holds the user's choice from the level selector.
type LevelSelection struct {
	Level int // 1-based starting level
}

// levelEntry is one row of the selector: a level ID plus its unlock state.
type levelEntry struct {
	id        string
	completed bool
	unlocked  bool
}

// LevelSelectModel lets users pick a starting level within a pack.
// A level is unlocked if it is the first, already completed, or directly
// follows a completed level. Completion records come from storage; with
// no store every level is unlocked.
type LevelSelectModel struct {
	packTitle string
	entries   []levelEntry
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection LevelSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level selector for the given pack.
func NewLevelSelectModel(packTitle string, levelIDs []string, store *storage.Store, packID string, width, height int) LevelSelectModel {
	var done map[string]bool
	if store != nil {
		done, _ = storeCompletions(store, packID)
	}

	entries := make([]levelEntry, len(levelIDs))
	for i, id := range levelIDs {
		completed := done[id]
		unlocked := done == nil || i == 0 || completed
		if !unlocked && i > 0 && done[levelIDs[i-1]] {
			unlocked = true
		}
		entries[i] = levelEntry{id: id, completed: completed, unlocked: unlocked}
	}

	return LevelSelectModel{
		packTitle: packTitle,
		entries:   entries,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// storeCompletions wraps the storage lookup so a nil map cleanly means
// "no records available".
func storeCompletions(store *storage.Store, packID string) (map[string]bool, error) {
	done, err := store.CompletedLevelIDs(packID)
	if err != nil {
		return nil, err
	}
	if done == nil {
		done = map[string]bool{}
	}
	return done, nil
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.entries[m.cursor].unlocked {
			m.choosing = false
			m.selection = LevelSelection{Level: m.cursor + 1}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list with lock and completion markers.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.packTitle, m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := "  "
		switch {
		case e.completed:
			marker = "✓ "
		case !e.unlocked:
			marker = "🔒"
		}

		line := fmt.Sprintf("%s%2d. %s %s", cursor, i+1, e.id, marker)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelSelectModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selector and returns the selection.
// A nil selection means the user backed out or quit.
func RunLevelSelector(packTitle, packID string, levelIDs []string, store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelSelectModel(packTitle, levelIDs, store, packID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
