package pack

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed builtin
var builtinFS embed.FS

// LoadBuiltinPacks returns the theme packs bundled with the engine.
func LoadBuiltinPacks() ([]*Pack, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin packs: %w", err)
	}

	packs := make([]*Pack, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin pack %s: %w", entry.Name(), err)
		}
		p, err := parsePack(data, func(ref string) ([]byte, error) {
			return builtinFS.ReadFile(path.Join("builtin", ref))
		})
		if err != nil {
			return nil, fmt.Errorf("parse builtin pack %s: %w", entry.Name(), err)
		}
		p.Source = "builtin"
		packs = append(packs, p)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Name < packs[j].Name
	})

	return packs, nil
}
