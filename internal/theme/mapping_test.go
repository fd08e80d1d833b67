package theme

import "testing"

func TestMappingLastWriteWins(t *testing.T) {
	m := NewMapping()
	m.Set("background", "#000000")
	m.Set("color1", "#f07178")
	m.Set("background", "#292d3e")

	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", m.Len())
	}
	v, ok := m.Get("background")
	if !ok || v != "#292d3e" {
		t.Fatalf("expected last write to win, got %q", v)
	}
	keys := m.Keys()
	if keys[0] != "background" || keys[1] != "color1" {
		t.Fatalf("expected original key positions, got %v", keys)
	}
}

func TestMappingClone(t *testing.T) {
	m := NewMapping()
	m.Set("foreground", "#eeffff")

	c := m.Clone()
	c.Set("foreground", "#ffffff")
	c.Set("cursor", "#ffcb6b")

	if v, _ := m.Get("foreground"); v != "#eeffff" {
		t.Fatalf("clone mutated original: %q", v)
	}
	if m.Has("cursor") {
		t.Fatalf("clone mutated original key set")
	}
}

func TestMergeOverrideWins(t *testing.T) {
	base := NewMapping()
	base.Set("background", "#000000")
	base.Set("color1", "#f07178")

	override := NewMapping()
	override.Set("color1", "#ff0000")

	merged := Merge(base, override)

	if v, _ := merged.Get("background"); v != "#000000" {
		t.Fatalf("base-only key changed: %q", v)
	}
	if v, _ := merged.Get("color1"); v != "#ff0000" {
		t.Fatalf("expected override to win, got %q", v)
	}
	if merged.Len() != 2 {
		t.Fatalf("expected key set union of size 2, got %d", merged.Len())
	}
}

func TestMergeLastOverrideWins(t *testing.T) {
	base := NewMapping()
	base.Set("accent", "#82aaff")

	first := NewMapping()
	first.Set("accent", "#c792ea")
	first.Set("extra", "one")

	second := NewMapping()
	second.Set("accent", "#89ddff")

	merged := Merge(base, first, second)

	if v, _ := merged.Get("accent"); v != "#89ddff" {
		t.Fatalf("expected last override to win, got %q", v)
	}
	if v, _ := merged.Get("extra"); v != "one" {
		t.Fatalf("override-only key lost: %q", v)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := NewMapping()
	base.Set("background", "#000000")

	override := NewMapping()
	override.Set("background", "#292d3e")

	_ = Merge(base, override)

	if v, _ := base.Get("background"); v != "#000000" {
		t.Fatalf("merge mutated base: %q", v)
	}
	if override.Len() != 1 {
		t.Fatalf("merge mutated override")
	}
}

func TestMergeNilInputs(t *testing.T) {
	merged := Merge(nil, nil)
	if merged.Len() != 0 {
		t.Fatalf("expected empty merge result, got %d keys", merged.Len())
	}
}
