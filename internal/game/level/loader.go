package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pack is an ordered sequence of levels played as one campaign.
type Pack struct {
	ID     string
	Title  string
	Levels []*Level
}

// LevelIDs returns the level identifiers in sequence order.
func (p *Pack) LevelIDs() []string {
	ids := make([]string, len(p.Levels))
	for i, l := range p.Levels {
		ids[i] = l.ID
	}
	return ids
}

// Loader loads .xsb level files from a directory. Each immediate
// subdirectory of Root becomes one pack; .xsb files directly under Root
// form a pack named after the directory itself.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadPack loads every .xsb file in the given directory as one pack.
// Levels are sorted by filename for deterministic sequence order.
// Files that fail to parse abort the load: a malformed level in a pack
// is a caller problem, not something to paper over.
func (l *Loader) LoadPack(dir string) (*Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: reading pack directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".xsb") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("level: no .xsb files in %s", dir)
	}

	id := filepath.Base(dir)
	pack := &Pack{ID: id, Title: titleFor(id)}

	for _, name := range files {
		path := filepath.Join(dir, name)
		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		pack.Levels = append(pack.Levels, lvl)
	}

	return pack, nil
}

// LoadFile loads and parses a single .xsb level file.
// The level ID is the filename without its extension.
func (l *Loader) LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	lvl, err := Parse(splitRows(string(data)))
	if err != nil {
		return nil, fmt.Errorf("level: parsing %s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lvl.ID = id
	lvl.Name = titleFor(id)
	return lvl, nil
}

// LoadAll scans Root's immediate subdirectories and loads each as a pack,
// sorted by pack ID for deterministic ordering. Subdirectories without
// .xsb files are skipped.
func (l *Loader) LoadAll() ([]*Pack, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("level: reading directory %s: %w", l.Root, err)
	}

	var packs []*Pack
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pack, err := l.LoadPack(filepath.Join(l.Root, e.Name()))
		if err != nil {
			// Skip directories without loadable levels
			continue
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// splitRows breaks file content into rows, dropping a trailing empty row
// left by a final newline.
func splitRows(content string) []string {
	rows := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// titleFor turns an identifier like "classic" or "level-02" into a
// display title.
func titleFor(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
