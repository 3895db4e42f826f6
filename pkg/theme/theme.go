// Package theme merges document theme overrides with template and engine
// defaults into the single set of visual parameters a renderer reads.
//
// Precedence is document metadata, then template defaults, then engine
// defaults. Values a layer carries but the resolver does not recognise
// (an unknown density, say) count as absent for that layer. Fonts are the
// exception: an unknown font key still wins and maps to the default stack.
package theme

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-resumegen/pkg/document"
)

const (
	DefaultAccentColor  = "#2563eb"
	DefaultLineHeight   = 1.5
	DefaultPreviewScale = 0.5
	DefaultTruncateAt   = 120
	ellipsis            = "…"
)

// Defaults is one layer of theme values below the document metadata. Empty
// fields defer to the next layer.
type Defaults struct {
	// Name and Variant identify the theme selection the layer came from.
	Name        string
	Variant     string
	AccentColor string
	FontFamily  string
	Density     string
	PhotoMode   string
	LineHeight  float64
}

// EngineDefaults is the bottom layer every resolution ends with.
func EngineDefaults() Defaults {
	return Defaults{
		AccentColor: DefaultAccentColor,
		FontFamily:  DefaultFontKey,
		Density:     string(DensityComfortable),
		PhotoMode:   string(PhotoConditional),
		LineHeight:  DefaultLineHeight,
	}
}

// Merge fills the fields of d that are empty or unrecognised from fallback.
func (d Defaults) Merge(fallback Defaults) Defaults {
	out := d
	out.Name = firstNonEmpty(d.Name, fallback.Name)
	out.Variant = firstNonEmpty(d.Variant, fallback.Variant)
	out.AccentColor = firstNonEmpty(d.AccentColor, fallback.AccentColor)
	out.FontFamily = firstNonEmpty(d.FontFamily, fallback.FontFamily)
	if _, ok := ParseDensity(d.Density); !ok {
		out.Density = fallback.Density
	}
	if _, ok := ParsePhotoMode(d.PhotoMode); !ok {
		out.PhotoMode = fallback.PhotoMode
	}
	if d.LineHeight <= 0 {
		out.LineHeight = fallback.LineHeight
	}
	return out
}

// Mode carries the preview constraints of thumbnail and gallery surfaces.
type Mode struct {
	Preview bool
	// Scale shrinks typography in preview mode. Values <= 0 use
	// DefaultPreviewScale.
	Scale float64
	// TruncateAt is the rune count after which preview text is cut. Values
	// <= 0 use DefaultTruncateAt.
	TruncateAt int
}

// FontScale is 1 outside preview mode.
func (m Mode) FontScale() float64 {
	if !m.Preview {
		return 1
	}
	if m.Scale <= 0 {
		return DefaultPreviewScale
	}
	return m.Scale
}

// Limit returns the effective truncation threshold, or 0 outside preview.
func (m Mode) Limit() int {
	if !m.Preview {
		return 0
	}
	if m.TruncateAt <= 0 {
		return DefaultTruncateAt
	}
	return m.TruncateAt
}

// Truncate cuts value to the preview threshold and appends an ellipsis.
// Outside preview mode the value is returned unchanged.
func (m Mode) Truncate(value string) string {
	limit := m.Limit()
	if limit == 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimRight(string(runes[:limit]), " \t\n") + ellipsis
}

// Resolved is the fully merged theme.
type Resolved struct {
	Name        string
	Variant     string
	AccentColor string
	// FontKey is the logical key (or verbatim stack) the layers selected;
	// FontStack is the concrete CSS stack for it.
	FontKey    string
	FontStack  string
	Density    Density
	PhotoMode  PhotoMode
	Shape      PhotoShape
	LineHeight float64
	JobTitle   string
	Mode       Mode
}

// Resolve merges meta over defaults over EngineDefaults.
func Resolve(meta document.Metadata, defaults Defaults, mode Mode) Resolved {
	engine := EngineDefaults()

	out := Resolved{
		Name:        defaults.Name,
		Variant:     defaults.Variant,
		AccentColor: firstNonEmpty(meta.AccentColor, defaults.AccentColor, engine.AccentColor),
		JobTitle:    strings.TrimSpace(meta.JobTitle),
		Mode:        mode,
	}

	out.FontKey = fontKey(firstNonEmpty(meta.FontFamily, defaults.FontFamily, engine.FontFamily))
	out.FontStack = FontStack(out.FontKey)

	out.Density = DensityComfortable
	for _, raw := range []string{meta.Density, defaults.Density} {
		if density, ok := ParseDensity(raw); ok {
			out.Density = density
			break
		}
	}

	out.PhotoMode = PhotoConditional
	for _, raw := range []string{meta.PhotoMode, defaults.PhotoMode} {
		if photoMode, ok := ParsePhotoMode(raw); ok {
			out.PhotoMode = photoMode
			break
		}
	}

	out.Shape = ShapeRound
	if out.PhotoMode == PhotoSquare || strings.EqualFold(strings.TrimSpace(meta.PhotoShape), string(ShapeSquare)) {
		out.Shape = ShapeSquare
	}

	switch {
	case meta.LineHeight > 0:
		out.LineHeight = meta.LineHeight
	case defaults.LineHeight > 0:
		out.LineHeight = defaults.LineHeight
	default:
		out.LineHeight = engine.LineHeight
	}

	return out
}

// Spacing scales base by the density multiplier for the renderer's
// sensitivity.
func (r Resolved) Spacing(base float64, sensitivity Sensitivity) float64 {
	return base * r.Density.Multiplier(sensitivity)
}

// ShowPhoto reports whether a photo with the given URL is drawn. Hidden mode
// always suppresses it; every other mode requires a non-empty URL.
func (r Resolved) ShowPhoto(url string) bool {
	if r.PhotoMode == PhotoHidden {
		return false
	}
	return strings.TrimSpace(url) != ""
}

// PhotoShape returns the crop for a drawn photo.
func (r Resolved) PhotoShape() PhotoShape {
	if r.Shape == "" {
		return ShapeRound
	}
	return r.Shape
}

// FontScale forwards to the preview mode.
func (r Resolved) FontScale() float64 {
	return r.Mode.FontScale()
}

// Truncate forwards to the preview mode.
func (r Resolved) Truncate(value string) string {
	return r.Mode.Truncate(value)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
