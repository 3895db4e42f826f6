package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-resumegen/pkg/catalog"
)

// ErrThemeNotFound is returned by Selector for unknown theme names.
var ErrThemeNotFound = errors.New("theme: theme not found")

// Selector picks template manifests by name. It satisfies
// gotheme.ThemeSelector so the engine can accept either this selector or
// any other go-theme implementation as the source of template defaults.
type Selector struct {
	mu        sync.RWMutex
	order     []string
	manifests map[string]*gotheme.Manifest
}

var _ gotheme.ThemeSelector = (*Selector)(nil)

// NewSelector indexes manifests by name. Later manifests with a repeated
// name replace earlier ones.
func NewSelector(manifests ...*gotheme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*gotheme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		if _, exists := s.manifests[manifest.Name]; !exists {
			s.order = append(s.order, manifest.Name)
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// NewCatalogSelector builds a selector over every catalog descriptor.
func NewCatalogSelector(cat *catalog.Catalog) *Selector {
	return NewSelector(cat.Manifests()...)
}

// Select returns the manifest called name. An empty name selects the first
// manifest. Unknown variants are dropped rather than failing the selection.
func (s *Selector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" && len(s.order) > 0 {
		name = s.order[0]
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	variant = strings.TrimSpace(variant)
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// DefaultsFromSelection reads template defaults from a selection's manifest
// tokens, with the selected variant's tokens layered on top.
func DefaultsFromSelection(selection *gotheme.Selection) Defaults {
	if selection == nil || selection.Manifest == nil {
		return Defaults{}
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	defaults := Defaults{
		Name:        selection.Theme,
		Variant:     selection.Variant,
		AccentColor: tokens[catalog.TokenAccentColor],
		FontFamily:  tokens[catalog.TokenFontFamily],
		Density:     tokens[catalog.TokenDensity],
		PhotoMode:   tokens[catalog.TokenPhotoMode],
	}
	if raw, ok := tokens[TokenLineHeight]; ok {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			defaults.LineHeight = value
		}
	}
	return defaults
}

// DefaultsFromDescriptor reads template defaults straight from a catalog
// descriptor.
func DefaultsFromDescriptor(descriptor catalog.Descriptor) Defaults {
	return Defaults{
		Name:        descriptor.ID,
		AccentColor: descriptor.DefaultColor,
		FontFamily:  descriptor.DefaultFont,
		Density:     descriptor.DefaultDensity,
		PhotoMode:   descriptor.DefaultPhotoMode,
	}
}
