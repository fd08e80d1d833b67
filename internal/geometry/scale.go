// Package geometry derives display-dependent scale factors so sized
// theme values stay balanced between low and high DPI screens.
package geometry

import (
	"math"
	"strconv"

	"github.com/opencode-ai/themer/internal/schema"
	"github.com/opencode-ai/themer/internal/theme"
)

const (
	// BaseWidth is the reference display width at which scale is 1.0.
	BaseWidth = 1920
	// MinScale and MaxScale clamp the computed factor.
	MinScale = 1.0
	MaxScale = 3.0
)

// ComputeScale derives a scale factor from a display width. Widths at
// or below the base give 1.0; wider displays grow with a square-root
// dampening above 1.25 so ultrawide screens do not blow sizes up.
func ComputeScale(width int) float64 {
	ratio := float64(width) / float64(BaseWidth)
	scale := math.Max(MinScale, ratio)
	if scale > 1.25 {
		scale = 1.0 + (math.Sqrt(scale)-1.0)*1.25
	}
	return Clamp(scale)
}

// Clamp bounds an explicitly supplied scale factor.
func Clamp(scale float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, scale))
}

// Scaled multiplies a value by the scale factor and rounds to the
// nearest integer.
func Scaled(value, scale float64) int {
	return int(math.Round(value * scale))
}

// Apply returns a copy of the mapping with every numeric value whose
// schema entry is marked scaled multiplied by the factor. Values that
// do not parse as numbers are left for the validator to flag. A scale
// of 1.0 returns an unchanged copy.
func Apply(mapping *theme.Mapping, s *schema.Schema, scale float64) *theme.Mapping {
	scaled := mapping.Clone()
	if scale == 1.0 {
		return scaled
	}
	for _, entry := range s.Entries {
		if !entry.Scaled {
			continue
		}
		raw, ok := scaled.Get(entry.Key)
		if !ok {
			// Schema defaults carry base-resolution sizes; pin the
			// scaled size into the mapping so the default does not
			// win unscaled.
			if d, isNumber := entry.Default.(theme.Number); isNumber {
				scaled.Set(entry.Key, strconv.Itoa(Scaled(d.Value, scale)))
			}
			continue
		}
		n, err := theme.ParseNumber(raw)
		if err != nil {
			continue
		}
		scaled.Set(entry.Key, strconv.Itoa(Scaled(n.Value, scale)))
	}
	return scaled
}
