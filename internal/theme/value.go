// Package theme defines the core data model for desktop theme
// descriptors: raw key/value mappings, typed values, and validated
// records.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of a theme value.
type Kind int

const (
	// KindRaw is an unvalidated passthrough string.
	KindRaw Kind = iota
	// KindColor is a 24-bit or 32-bit RGB(A) hex color.
	KindColor
	// KindPath is a filesystem path, possibly home-relative.
	KindPath
	// KindFont is a font family with an optional point size.
	KindFont
	// KindNumber is an integer or decimal number.
	KindNumber
	// KindEnum is a string matched against an allowed set.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindPath:
		return "path"
	case KindFont:
		return "font"
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	default:
		return "raw"
	}
}

// Value is a typed theme value. String returns the canonical text form
// used when a value is emitted back to a descriptor file.
type Value interface {
	Kind() Kind
	String() string
}

// Color is an RGB color with an optional alpha channel. Eight-digit hex
// input is always read alpha-first (AARRGGBB); consumers expecting
// RRGGBBAA must convert out-of-band.
type Color struct {
	R, G, B, A uint8
	HasAlpha   bool
}

// Kind implements Value.
func (Color) Kind() Kind { return KindColor }

// String renders the color as lowercase hex with a # prefix, alpha
// first when present.
func (c Color) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Path is a filesystem path. HomeRelative marks paths given relative to
// the user home directory; actual expansion is left to the consuming
// subsystem.
type Path struct {
	HomeRelative bool
	Rest         string
}

// Kind implements Value.
func (Path) Kind() Kind { return KindPath }

func (p Path) String() string {
	if p.HomeRelative {
		if p.Rest == "" {
			return "~"
		}
		return "~/" + p.Rest
	}
	return p.Rest
}

// FontSpec is a font family with an optional point size.
type FontSpec struct {
	Family  string
	Size    float64
	HasSize bool
}

// Kind implements Value.
func (FontSpec) Kind() Kind { return KindFont }

func (f FontSpec) String() string {
	if !f.HasSize {
		return f.Family
	}
	return f.Family + " " + formatNumber(f.Size)
}

// Number is an integer or decimal value. ParseNumber derives Integral
// from the numeric value, so rendering and re-coercing a Number is
// stable regardless of how the source spelled it.
type Number struct {
	Value    float64
	Integral bool
}

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	if n.Integral {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	// A hand-built Number can claim a whole value is not integral;
	// keep an explicit decimal so the text still reads as one.
	if n.Value == math.Trunc(n.Value) {
		return strconv.FormatFloat(n.Value, 'f', 1, 64)
	}
	return formatNumber(n.Value)
}

// Enum is a string value validated against a schema's allowed set.
type Enum string

// Kind implements Value.
func (Enum) Kind() Kind { return KindEnum }

func (e Enum) String() string { return string(e) }

// Raw is an unvalidated passthrough value. Unknown keys survive
// validation as Raw so consumer-specific extensions are never dropped.
type Raw string

// Kind implements Value.
func (Raw) Kind() Kind { return KindRaw }

func (r Raw) String() string { return string(r) }

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Keep "0.5" instead of ".5" for readability; FormatFloat already
	// does this, but trim a trailing ".0" produced by callers.
	return strings.TrimSuffix(s, ".0")
}
