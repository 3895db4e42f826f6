package theme

import "strings"

// Density scales spacing values.
type Density string

const (
	DensityCompact     Density = "compact"
	DensityComfortable Density = "comfortable"
	DensitySpacious    Density = "spacious"
)

// Sensitivity is how strongly a renderer reacts to density changes.
type Sensitivity int

const (
	SensitivityLow Sensitivity = iota
	SensitivityHigh
)

var densityMultipliers = map[Sensitivity]map[Density]float64{
	SensitivityLow: {
		DensityCompact:     0.85,
		DensityComfortable: 1.0,
		DensitySpacious:    1.2,
	},
	SensitivityHigh: {
		DensityCompact:     0.7,
		DensityComfortable: 1.0,
		DensitySpacious:    1.3,
	},
}

// ParseDensity returns the density for raw and whether it was recognised.
func ParseDensity(raw string) (Density, bool) {
	switch d := Density(strings.ToLower(strings.TrimSpace(raw))); d {
	case DensityCompact, DensityComfortable, DensitySpacious:
		return d, true
	default:
		return DensityComfortable, false
	}
}

// Multiplier returns the spacing multiplier for the density at the given
// sensitivity. Unknown densities behave as comfortable.
func (d Density) Multiplier(s Sensitivity) float64 {
	table, ok := densityMultipliers[s]
	if !ok {
		table = densityMultipliers[SensitivityLow]
	}
	if m, ok := table[d]; ok {
		return m
	}
	return 1.0
}
