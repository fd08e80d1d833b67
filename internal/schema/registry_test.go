package schema

import (
	"sync"
	"testing"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/theme"
)

func testSchema(name string) *Schema {
	return &Schema{
		Subsystem: name,
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "background", Kind: theme.KindColor, Required: true},
		},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testSchema("statusbar")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s, ok := r.Lookup("statusbar")
	if !ok || s.Subsystem != "statusbar" {
		t.Fatalf("Lookup failed: %v %v", s, ok)
	}

	if _, ok := r.Lookup("unknown"); ok {
		t.Fatalf("expected unknown subsystem to be absent")
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testSchema("statusbar")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(testSchema("statusbar")); err == nil {
		t.Fatalf("expected error for duplicate registration")
	}
}

func TestRegistryConcurrentLookups(t *testing.T) {
	r := NewBuiltinRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range r.Subsystems() {
				if _, ok := r.Lookup(name); !ok {
					t.Errorf("lookup %s failed", name)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSchemaValidate(t *testing.T) {
	s := &Schema{
		Subsystem: "x",
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "a", Kind: theme.KindColor},
			{Key: "a", Kind: theme.KindNumber},
		},
	}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for duplicate keys")
	}

	s = &Schema{
		Subsystem: "x",
		Format:    format.ShellAssignment,
		Entries:   []Entry{{Key: "mode", Kind: theme.KindEnum}},
	}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for enum without allowed values")
	}

	s = &Schema{
		Subsystem: "x",
		Format:    format.ShellAssignment,
		Entries:   []Entry{{Key: "name", Kind: theme.KindRaw, Scaled: true}},
	}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for scaled non-numeric entry")
	}

	s = &Schema{Subsystem: "x", Format: format.Name("toml")}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}

	if err := (&Schema{Format: format.ShellAssignment}).Validate(); err != ErrSubsystemRequired {
		t.Fatalf("expected ErrSubsystemRequired, got %v", err)
	}
}

func TestBuiltinSchemas(t *testing.T) {
	r := NewBuiltinRegistry()

	names := r.Subsystems()
	want := []string{
		SubsystemCompositor, SubsystemGTK, SubsystemLockscreen,
		SubsystemNotification, SubsystemPalette, SubsystemWindowManager,
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d builtin subsystems, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %s at position %d, got %v", name, i, names)
		}
	}

	palette, _ := r.Lookup(SubsystemPalette)
	if palette.Format != format.JSON {
		t.Fatalf("palette should emit JSON, got %s", palette.Format)
	}
	if _, ok := palette.Entry("color15"); !ok {
		t.Fatalf("palette missing color15")
	}

	notif, _ := r.Lookup(SubsystemNotification)
	if notif.Format != format.IniSections {
		t.Fatalf("notification should emit INI, got %s", notif.Format)
	}
	if e, ok := notif.Entry("urgency_critical.background"); !ok || e.Kind != theme.KindColor {
		t.Fatalf("notification missing urgency section entries")
	}
}
