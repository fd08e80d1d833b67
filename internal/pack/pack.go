// Package pack provides theme pack loading and application. A pack is
// a YAML manifest naming a theme and, per target subsystem, the
// descriptor files that define it.
package pack

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/themer/internal/resolver"
)

var (
	// ErrPackNameRequired is returned when a pack has no name.
	ErrPackNameRequired = errors.New("pack name is required")
	// ErrPackNoSubsystems is returned when a pack targets no subsystems.
	ErrPackNoSubsystems = errors.New("pack must target at least one subsystem")
	// ErrPackNotFound is returned when a pack is not found by name.
	ErrPackNotFound = errors.New("pack not found")
)

// PackValidationError describes a validation error in a pack manifest.
type PackValidationError struct {
	Subsystem string
	Message   string
}

func (e *PackValidationError) Error() string {
	if e.Subsystem != "" {
		return fmt.Sprintf("pack subsystem %s: %s", e.Subsystem, e.Message)
	}
	return fmt.Sprintf("pack: %s", e.Message)
}

// SubsystemSource references the descriptor files for one subsystem,
// relative to the manifest.
type SubsystemSource struct {
	Base      string   `yaml:"base"`
	Format    string   `yaml:"format,omitempty"`
	Overrides []string `yaml:"overrides,omitempty"`
}

// Sources holds the loaded descriptor texts for one subsystem.
type Sources struct {
	Base      resolver.Source
	Overrides []resolver.Source
}

// Pack is a loaded theme pack: manifest metadata plus the descriptor
// text for every subsystem it targets.
type Pack struct {
	Name        string
	Description string
	Subsystems  map[string]*Sources
	Source      string // manifest path or "builtin"
}

// manifest is the on-disk YAML shape.
type manifest struct {
	Name        string                     `yaml:"name"`
	Description string                     `yaml:"description"`
	Subsystems  map[string]SubsystemSource `yaml:"subsystems"`
}

func (m *manifest) validate() error {
	if m.Name == "" {
		return ErrPackNameRequired
	}
	if len(m.Subsystems) == 0 {
		return ErrPackNoSubsystems
	}
	for name, src := range m.Subsystems {
		if src.Base == "" {
			return &PackValidationError{Subsystem: name, Message: "base descriptor is required"}
		}
	}
	return nil
}

// Find returns the pack with the given name.
func Find(packs []*Pack, name string) (*Pack, error) {
	for _, p := range packs {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPackNotFound, name)
}
