// Package builtin wires the bundled renderer families to catalog templates.
package builtin

import (
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/renderers/sidebar"
	"github.com/goliatone/go-resumegen/pkg/renderers/single"
	"github.com/goliatone/go-resumegen/pkg/renderers/timeline"
)

// Factory builds the renderer for one catalog template.
type Factory func(descriptor catalog.Descriptor) (render.Renderer, error)

// Factories maps each catalog layout to its renderer family.
func Factories() map[catalog.Layout]Factory {
	return map[catalog.Layout]Factory{
		catalog.LayoutSingleColumn: func(d catalog.Descriptor) (render.Renderer, error) {
			return single.New(d)
		},
		catalog.LayoutTwoColumn: func(d catalog.Descriptor) (render.Renderer, error) {
			return sidebar.New(d)
		},
		catalog.LayoutTimeline: func(d catalog.Descriptor) (render.Renderer, error) {
			return timeline.New(d)
		},
	}
}

// Registry registers one renderer per template in cat. A template whose
// layout has no factory fails the whole build; the registry is strict and a
// template that cannot render should be caught at startup.
func Registry(cat *catalog.Catalog, overrides map[catalog.Layout]Factory) (*render.Registry, error) {
	if cat == nil {
		return nil, fmt.Errorf("builtin: catalog is required")
	}
	factories := Factories()
	for layout, factory := range overrides {
		if factory != nil {
			factories[layout] = factory
		}
	}

	registry := render.NewRegistry()
	for _, descriptor := range cat.All() {
		factory, ok := factories[descriptor.Layout]
		if !ok {
			return nil, fmt.Errorf("builtin: template %q: no renderer for layout %q", descriptor.ID, descriptor.Layout)
		}
		renderer, err := factory(descriptor)
		if err != nil {
			return nil, fmt.Errorf("builtin: template %q: %w", descriptor.ID, err)
		}
		if err := registry.Register(descriptor.ID, renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// MustRegistry is Registry for the bundled catalog; it panics on error.
func MustRegistry(cat *catalog.Catalog) *render.Registry {
	registry, err := Registry(cat, nil)
	if err != nil {
		panic(err)
	}
	return registry
}
