package level

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed levels
var builtinFS embed.FS

// BuiltinPacks parses the level packs compiled into the binary.
// Each subdirectory of levels/ is one pack; packs and their levels are
// sorted by name for deterministic sequence order.
func BuiltinPacks() ([]*Pack, error) {
	entries, err := builtinFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("level: reading embedded levels: %w", err)
	}

	var packs []*Pack
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pack, err := builtinPack(e.Name())
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// builtinPack loads one embedded pack directory.
func builtinPack(name string) (*Pack, error) {
	dir := path.Join("levels", name)
	files, err := fs.Glob(builtinFS, path.Join(dir, "*.xsb"))
	if err != nil {
		return nil, fmt.Errorf("level: globbing embedded pack %s: %w", name, err)
	}
	sort.Strings(files)

	pack := &Pack{ID: name, Title: titleFor(name)}
	for _, file := range files {
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("level: reading embedded %s: %w", file, err)
		}
		lvl, err := Parse(splitRows(string(data)))
		if err != nil {
			return nil, fmt.Errorf("level: parsing embedded %s: %w", file, err)
		}
		id := strings.TrimSuffix(path.Base(file), path.Ext(file))
		lvl.ID = id
		lvl.Name = titleFor(id)
		pack.Levels = append(pack.Levels, lvl)
	}

	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("level: embedded pack %s has no levels", name)
	}
	return pack, nil
}
