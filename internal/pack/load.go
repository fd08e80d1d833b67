package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/resolver"
)

// LoadPack reads a single pack manifest and its descriptor files from
// disk. Descriptor paths are resolved relative to the manifest.
func LoadPack(path string) (*Pack, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("pack path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	p, err := parsePack(data, func(ref string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, ref))
	})
	if err != nil {
		return nil, fmt.Errorf("parse pack %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadPacksFromDir loads every pack manifest in a directory. A missing
// directory yields an empty list, not an error.
func LoadPacksFromDir(dir string) ([]*Pack, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Pack{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Pack{}, nil
		}
		return nil, fmt.Errorf("read packs dir %s: %w", dir, err)
	}

	packs := make([]*Pack, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadPack(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Name < packs[j].Name
	})

	return packs, nil
}

// parsePack decodes a manifest and pulls in every referenced
// descriptor through readFile.
func parsePack(data []byte, readFile func(string) ([]byte, error)) (*Pack, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.Name = strings.TrimSpace(m.Name)
	if err := m.validate(); err != nil {
		return nil, err
	}

	p := &Pack{
		Name:        m.Name,
		Description: m.Description,
		Subsystems:  make(map[string]*Sources, len(m.Subsystems)),
	}
	for subsystem, src := range m.Subsystems {
		baseText, err := readFile(src.Base)
		if err != nil {
			return nil, fmt.Errorf("subsystem %s: read base %s: %w", subsystem, src.Base, err)
		}
		sources := &Sources{
			Base: resolver.Source{
				Text:   string(baseText),
				Format: sourceFormat(src.Format, src.Base),
			},
		}
		for _, ref := range src.Overrides {
			text, err := readFile(ref)
			if err != nil {
				return nil, fmt.Errorf("subsystem %s: read override %s: %w", subsystem, ref, err)
			}
			sources.Overrides = append(sources.Overrides, resolver.Source{
				Text:   string(text),
				Format: sourceFormat("", ref),
			})
		}
		p.Subsystems[subsystem] = sources
	}
	return p, nil
}

// sourceFormat picks the descriptor format: an explicit manifest hint
// wins, then the file extension; an empty result leaves sniffing to
// the resolver.
func sourceFormat(hint, path string) format.Name {
	if hint != "" {
		return format.Name(hint)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return format.JSON
	case ".ini":
		return format.IniSections
	case ".sh", ".conf", ".env":
		return format.ShellAssignment
	default:
		return ""
	}
}
