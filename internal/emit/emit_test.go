package emit

import (
	"errors"
	"strings"
	"testing"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/schema"
	"github.com/opencode-ai/themer/internal/theme"
	"github.com/opencode-ai/themer/internal/validate"
)

func TestEmitOrdersSchemaKeysFirst(t *testing.T) {
	s := &schema.Schema{
		Subsystem: "test",
		Format:    format.ShellAssignment,
		Entries: []schema.Entry{
			{Key: "background", Kind: theme.KindColor, Required: true},
			{Key: "foreground", Kind: theme.KindColor, Required: true},
		},
	}

	m := theme.NewMapping()
	m.Set("zzz_extra", "later")
	m.Set("foreground", "#eeffff")
	m.Set("aaa_extra", "sooner")
	m.Set("background", "#292d3e")

	record, err := validate.Validate(m, s)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	text, err := Emit(record, s)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	wantKeys := []string{"background", "foreground", "zzz_extra", "aaa_extra"}
	if len(lines) != len(wantKeys) {
		t.Fatalf("expected %d lines, got %v", len(wantKeys), lines)
	}
	for i, want := range wantKeys {
		if !strings.HasPrefix(lines[i], want+"=") {
			t.Fatalf("line %d: expected key %s, got %q", i, want, lines[i])
		}
	}
}

// With a schema declaring no entries, every key passes through as raw
// and parse-then-emit reproduces an equivalent mapping.
func TestEmitIdentitySchema(t *testing.T) {
	s := &schema.Schema{Subsystem: "identity", Format: format.ShellAssignment}

	text := "background=#292d3e\nfont_name='Noto Sans 9'\naccent=#82aaff\n"
	f, _ := format.Lookup(format.ShellAssignment)
	mapping, err := f.Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	record, err := validate.Validate(mapping, s)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	emitted, err := Emit(record, s)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	again, err := f.Decode(emitted)
	if err != nil {
		t.Fatalf("Decode(Emit): %v", err)
	}
	if again.Len() != mapping.Len() {
		t.Fatalf("key set changed: %v vs %v", again.Keys(), mapping.Keys())
	}
	for i, key := range mapping.Keys() {
		if again.Keys()[i] != key {
			t.Fatalf("key order changed: %v vs %v", again.Keys(), mapping.Keys())
		}
		want, _ := mapping.Get(key)
		if got, _ := again.Get(key); got != want {
			t.Fatalf("key %s changed: %q vs %q", key, got, want)
		}
	}
}

func TestEmitUnknownFormat(t *testing.T) {
	s := &schema.Schema{Subsystem: "test", Format: format.Name("toml")}
	if _, err := Emit(theme.NewRecord(), s); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestEmitNilValue(t *testing.T) {
	s := &schema.Schema{
		Subsystem: "test",
		Format:    format.ShellAssignment,
		Entries:   []schema.Entry{{Key: "background", Kind: theme.KindColor}},
	}
	record := theme.NewRecord()
	record.Set("background", nil)

	_, err := Emit(record, s)
	if err == nil {
		t.Fatalf("expected EmitError for nil value")
	}
}

// A value imported from a format that allows newlines must surface as
// an EmitError in a line-oriented target format, never as text the
// target cannot read back.
func TestEmitMultilineValue(t *testing.T) {
	s := &schema.Schema{Subsystem: "test", Format: format.ShellAssignment}

	mapping, err := format.Decode("{\"name\": \"line one\\nline two\"}", format.JSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	record, err := validate.Validate(mapping, s)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	_, err = Emit(record, s)
	var emitErr *EmitError
	if !errors.As(err, &emitErr) {
		t.Fatalf("expected EmitError for multiline value, got %v", err)
	}
	if emitErr.Subsystem != "test" {
		t.Fatalf("unexpected subsystem %q", emitErr.Subsystem)
	}
}

// Re-emitting a validated record and re-parsing it must yield an equal
// record for every cleanly validating input.
func TestEmitRoundTripFixedPoint(t *testing.T) {
	registry := schema.NewBuiltinRegistry()

	sources := map[string]string{
		schema.SubsystemPalette: `{
  "background": "#292d3e",
  "foreground": "#EEFFFF",
  "color0": "0x292d3e",
  "color1": "#f07178",
  "color2": "#c3e88d",
  "color3": "#ffcb6b",
  "color4": "#82aaff",
  "color5": "#c792ea",
  "color6": "#89ddff",
  "color7": "#eeffff",
  "color8": "#676e95",
  "color9": "#ff8b92",
  "color10": "#ddffa7",
  "color11": "#ffe585",
  "color12": "#9cc4ff",
  "color13": "#e1acff",
  "color14": "#a3f7ff",
  "color15": "#ffffff",
  "vendor_extra": "kept"
}`,
		schema.SubsystemNotification: `frame_color = #82aaff
font = Monospace 8

[urgency_low]
background = #292d3e
foreground = #676e95

[urgency_normal]
background = #292d3e
foreground = #eeffff

[urgency_critical]
background = #292d3e
foreground = #f07178
`,
		// Decimal-written whole numbers must converge on the first pass.
		schema.SubsystemCompositor: `$accent = #82aaff
$background = #292d3e
$foreground = #eeffff
$rounding = 8.0
$border_size = 2.
$active_opacity = 1.0
$inactive_opacity = 0.95
`,
	}

	for subsystem, text := range sources {
		s, ok := registry.Lookup(subsystem)
		if !ok {
			t.Fatalf("missing builtin schema %s", subsystem)
		}
		f, _ := format.Lookup(s.Format)

		mapping, err := f.Decode(text)
		if err != nil {
			t.Fatalf("%s: decode: %v", subsystem, err)
		}
		first, err := validate.Validate(mapping, s)
		if err != nil {
			t.Fatalf("%s: validate: %v", subsystem, err)
		}

		emitted, err := Emit(first, s)
		if err != nil {
			t.Fatalf("%s: emit: %v", subsystem, err)
		}
		remapped, err := f.Decode(emitted)
		if err != nil {
			t.Fatalf("%s: re-decode: %v", subsystem, err)
		}
		second, err := validate.Validate(remapped, s)
		if err != nil {
			t.Fatalf("%s: re-validate: %v", subsystem, err)
		}

		if !first.Equal(second) {
			t.Fatalf("%s: round trip is not a fixed point:\nfirst:  %v\nsecond: %v",
				subsystem, first.Keys(), second.Keys())
		}

		// And the emitted text itself is stable on the second pass.
		again, err := Emit(second, s)
		if err != nil {
			t.Fatalf("%s: re-emit: %v", subsystem, err)
		}
		if again != emitted {
			t.Fatalf("%s: emitted text not stable:\n%s\nvs:\n%s", subsystem, emitted, again)
		}
	}
}
