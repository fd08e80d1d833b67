package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyValue is returned when a value that must not be empty is.
	ErrEmptyValue = errors.New("value is empty")
)

// ParseColor coerces a raw string into a Color. Accepted forms are six
// hex digits (RRGGBB) or eight hex digits read alpha-first (AARRGGBB),
// with an optional leading "#" or "0x". Hex digits are
// case-insensitive. Parsing the String form of a Color yields the same
// Color back.
func ParseColor(s string) (Color, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Color{}, ErrEmptyValue
	}
	if rest, ok := strings.CutPrefix(t, "#"); ok {
		t = rest
	} else if rest, ok := strings.CutPrefix(t, "0x"); ok {
		t = rest
	} else if rest, ok := strings.CutPrefix(t, "0X"); ok {
		t = rest
	}

	switch len(t) {
	case 6:
		v, err := strconv.ParseUint(t, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex digits in %q", s)
		}
		return Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}, nil
	case 8:
		v, err := strconv.ParseUint(t, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex digits in %q", s)
		}
		return Color{
			A:        uint8(v >> 24),
			R:        uint8(v >> 16),
			G:        uint8(v >> 8),
			B:        uint8(v),
			HasAlpha: true,
		}, nil
	default:
		return Color{}, fmt.Errorf("color %q must have 6 or 8 hex digits", s)
	}
}

// ParsePath coerces a raw string into a Path. A leading "~/", bare "~",
// or "$HOME/" marks the path home-relative; the engine never expands
// the home directory itself.
func ParsePath(s string) (Path, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Path{}, ErrEmptyValue
	}
	if t == "~" || t == "$HOME" {
		return Path{HomeRelative: true}, nil
	}
	if rest, ok := strings.CutPrefix(t, "~/"); ok {
		return Path{HomeRelative: true, Rest: rest}, nil
	}
	if rest, ok := strings.CutPrefix(t, "$HOME/"); ok {
		return Path{HomeRelative: true, Rest: rest}, nil
	}
	return Path{Rest: t}, nil
}

// ParseFontSpec coerces a raw string into a FontSpec. The final
// whitespace-separated token is taken as the point size when it parses
// as a number; everything before it is the family name.
func ParseFontSpec(s string) (FontSpec, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return FontSpec{}, ErrEmptyValue
	}
	last := fields[len(fields)-1]
	if size, err := strconv.ParseFloat(last, 64); err == nil {
		if len(fields) == 1 {
			return FontSpec{}, fmt.Errorf("font %q has a size but no family", s)
		}
		if size <= 0 {
			return FontSpec{}, fmt.Errorf("font size must be positive, got %s", last)
		}
		return FontSpec{
			Family:  strings.Join(fields[:len(fields)-1], " "),
			Size:    size,
			HasSize: true,
		}, nil
	}
	return FontSpec{Family: strings.Join(fields, " ")}, nil
}

// ParseNumber coerces a raw string into a Number. Integral depends on
// the numeric value alone, not on how the source wrote it, so "1.0",
// "5.", and "1e3" coerce to the same Number as "1", "5", and "1000"
// and re-coercing an emitted value is stable.
func ParseNumber(s string) (Number, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Number{}, ErrEmptyValue
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Number{Value: float64(i), Integral: true}, nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	integral := f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64
	return Number{Value: f, Integral: integral}, nil
}
