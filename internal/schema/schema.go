// Package schema declares per-subsystem descriptor schemas and the
// registry that holds them.
package schema

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/theme"
)

var (
	// ErrSubsystemRequired is returned when a schema has no subsystem name.
	ErrSubsystemRequired = errors.New("schema subsystem name is required")
	// ErrSubsystemNotFound is returned when a subsystem is not registered.
	ErrSubsystemNotFound = errors.New("subsystem not found")
)

// SchemaError describes an invalid schema declaration.
type SchemaError struct {
	Subsystem string
	Key       string
	Message   string
}

func (e *SchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("schema %s: key %s: %s", e.Subsystem, e.Key, e.Message)
	}
	return fmt.Sprintf("schema %s: %s", e.Subsystem, e.Message)
}

// Entry declares one key a subsystem understands.
type Entry struct {
	Key      string
	Kind     theme.Kind
	Required bool

	// Default is used when the key is absent from the merged mapping.
	// Nil means no default.
	Default theme.Value

	// Enum lists the allowed values for KindEnum entries. Matching is
	// exact and case-sensitive.
	Enum []string

	// Scaled marks numeric entries whose value follows the display
	// scale factor during resolution.
	Scaled bool
}

// Schema is the ordered set of entries for one consuming subsystem,
// plus the text format that subsystem reads.
type Schema struct {
	Subsystem string
	Format    format.Name
	Entries   []Entry
}

// Entry returns the entry for key and whether it exists.
func (s *Schema) Entry(key string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Validate checks that the schema declaration is internally consistent.
func (s *Schema) Validate() error {
	if s.Subsystem == "" {
		return ErrSubsystemRequired
	}
	if _, ok := format.Lookup(s.Format); !ok {
		return &SchemaError{Subsystem: s.Subsystem, Message: fmt.Sprintf("unknown format %q", s.Format)}
	}
	seen := make(map[string]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		if e.Key == "" {
			return &SchemaError{Subsystem: s.Subsystem, Message: "entry with empty key"}
		}
		if _, dup := seen[e.Key]; dup {
			return &SchemaError{Subsystem: s.Subsystem, Key: e.Key, Message: "duplicate key"}
		}
		seen[e.Key] = struct{}{}
		if e.Kind == theme.KindEnum && len(e.Enum) == 0 {
			return &SchemaError{Subsystem: s.Subsystem, Key: e.Key, Message: "enum entry without allowed values"}
		}
		if e.Scaled && e.Kind != theme.KindNumber {
			return &SchemaError{Subsystem: s.Subsystem, Key: e.Key, Message: "scaled entry must be numeric"}
		}
		if e.Default != nil && e.Default.Kind() != e.Kind {
			return &SchemaError{Subsystem: s.Subsystem, Key: e.Key, Message: fmt.Sprintf("default is %s, entry is %s", e.Default.Kind(), e.Kind)}
		}
	}
	return nil
}
