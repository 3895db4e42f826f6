package theme

import (
	"strconv"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Token keys exposed through Tokens and, prefixed with "--", CSSVars.
const (
	TokenAccentColor = "accent-color"
	TokenFontFamily  = "font-family"
	TokenDensity     = "density"
	TokenPhotoMode   = "photo-mode"
	TokenPhotoShape  = "photo-shape"
	TokenLineHeight  = "line-height"
	TokenFontScale   = "font-scale"
)

// Tokens flattens the resolved theme into string tokens.
func (r Resolved) Tokens() map[string]string {
	return map[string]string{
		TokenAccentColor: r.AccentColor,
		TokenFontFamily:  r.FontStack,
		TokenDensity:     string(r.Density),
		TokenPhotoMode:   string(r.PhotoMode),
		TokenPhotoShape:  string(r.PhotoShape()),
		TokenLineHeight:  formatFloat(r.LineHeight),
		TokenFontScale:   formatFloat(r.FontScale()),
	}
}

// CSSVars derives CSS custom properties from Tokens.
func (r Resolved) CSSVars() map[string]string {
	tokens := r.Tokens()
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return vars
}

// RendererConfig bridges the resolved theme into a go-theme renderer config
// for serializers that already consume one.
func RendererConfig(r Resolved) *gotheme.RendererConfig {
	return &gotheme.RendererConfig{
		Theme:    r.Name,
		Variant:  r.Variant,
		Tokens:   r.Tokens(),
		CSSVars:  r.CSSVars(),
		Partials: map[string]string{},
		AssetURL: func(key string) string {
			return strings.TrimSpace(key)
		},
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
