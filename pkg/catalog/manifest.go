package catalog

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// Manifest token keys carried for every descriptor.
const (
	TokenAccentColor = "accent-color"
	TokenFontFamily  = "font-family"
	TokenDensity     = "density"
	TokenPhotoMode   = "photo-mode"
	TokenLayout      = "layout"
)

// ManifestVersion is stamped on generated manifests.
const ManifestVersion = "1.0.0"

var densityVariants = []string{"compact", "comfortable", "spacious"}

// Manifest converts a descriptor into a go-theme manifest. The base tokens
// carry the template defaults; one variant per density overrides the density
// token so a selector can pick spacing without touching the document.
func (d Descriptor) Manifest() *theme.Manifest {
	tokens := map[string]string{
		TokenLayout: string(d.Layout),
	}
	setToken(tokens, TokenAccentColor, d.DefaultColor)
	setToken(tokens, TokenFontFamily, d.DefaultFont)
	setToken(tokens, TokenDensity, d.DefaultDensity)
	setToken(tokens, TokenPhotoMode, d.DefaultPhotoMode)

	variants := make(map[string]theme.Variant, len(densityVariants))
	for _, density := range densityVariants {
		variants[density] = theme.Variant{
			Tokens: map[string]string{TokenDensity: density},
		}
	}

	return &theme.Manifest{
		Name:     d.ID,
		Version:  ManifestVersion,
		Tokens:   tokens,
		Variants: variants,
	}
}

// Manifests returns one manifest per descriptor in insertion order.
func (c *Catalog) Manifests() []*theme.Manifest {
	descriptors := c.All()
	out := make([]*theme.Manifest, 0, len(descriptors))
	for _, descriptor := range descriptors {
		out = append(out, descriptor.Manifest())
	}
	return out
}

// ThemeRegistry registers every descriptor manifest with a go-theme registry
// so the catalog can back a go-theme provider.
func (c *Catalog) ThemeRegistry() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	for _, manifest := range c.Manifests() {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("catalog: register theme %q: %w", manifest.Name, err)
		}
	}
	return registry, nil
}

func setToken(tokens map[string]string, key, value string) {
	if value != "" {
		tokens[key] = value
	}
}
