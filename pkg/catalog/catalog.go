// Package catalog holds the statically known table of template descriptors.
//
// Descriptor lookup through Get is deliberately forgiving: an unknown id
// resolves to the first catalog entry because a descriptor only supplies
// cosmetic defaults (category label, suggested color and font). Renderer
// dispatch in pkg/render is strict and must stay that way; do not unify the
// two behaviors, or a retired template id would silently render with a
// different layout.
package catalog

import (
	"fmt"
	"strings"
	"sync"
)

// Catalog is an append-only, insertion-ordered set of descriptors keyed by id.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Descriptor
}

// New validates descriptors and builds a catalog in the supplied order.
func New(descriptors ...Descriptor) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Descriptor, len(descriptors))}
	for _, descriptor := range descriptors {
		if err := c.Add(descriptor); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(descriptors ...Descriptor) *Catalog {
	c, err := New(descriptors...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add appends a descriptor. Published ids are immutable, so re-adding an id
// fails with ErrDuplicateTemplate.
func (c *Catalog) Add(descriptor Descriptor) error {
	descriptor.ID = strings.TrimSpace(descriptor.ID)
	if err := descriptor.Validate(); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidDescriptor, descriptor.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[string]Descriptor)
	}
	if _, exists := c.entries[descriptor.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, descriptor.ID)
	}
	c.entries[descriptor.ID] = descriptor.clone()
	c.order = append(c.order, descriptor.ID)
	return nil
}

// Get returns the descriptor for id, or the first catalog entry when id is
// unknown. An empty catalog yields the zero Descriptor. Use Lookup when the
// caller needs to know whether the id matched.
func (c *Catalog) Get(id string) Descriptor {
	descriptor, _ := c.Resolve(id)
	return descriptor
}

// Resolve behaves like Get and also reports whether id matched exactly.
func (c *Catalog) Resolve(id string) (Descriptor, bool) {
	if descriptor, ok := c.Lookup(id); ok {
		return descriptor, true
	}
	if c == nil {
		return Descriptor{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.order) == 0 {
		return Descriptor{}, false
	}
	return c.entries[c.order[0]].clone(), false
}

// Lookup returns the descriptor for id without falling back.
func (c *Catalog) Lookup(id string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	descriptor, ok := c.entries[strings.TrimSpace(id)]
	if !ok {
		return Descriptor{}, false
	}
	return descriptor.clone(), true
}

// Has reports whether id is present.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// All returns every descriptor in insertion order.
func (c *Catalog) All() []Descriptor {
	return c.filter(func(Descriptor) bool { return true })
}

// ListByCategory returns the descriptors of category in insertion order.
// CategoryAll (or an empty category) returns every descriptor. Category
// matching ignores case.
func (c *Catalog) ListByCategory(category string) []Descriptor {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return c.All()
	}
	return c.filter(func(d Descriptor) bool {
		return strings.EqualFold(d.Category, category)
	})
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, id := range c.order {
		category := c.entries[id].Category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

// IDs returns the descriptor ids in insertion order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

// Free returns a new catalog holding only the non-premium descriptors.
func (c *Catalog) Free() *Catalog {
	return c.subset(func(d Descriptor) bool { return !d.IsPremium })
}

// Premium returns a new catalog holding only the premium descriptors.
func (c *Catalog) Premium() *Catalog {
	return c.subset(func(d Descriptor) bool { return d.IsPremium })
}

func (c *Catalog) subset(keep func(Descriptor) bool) *Catalog {
	out := &Catalog{entries: make(map[string]Descriptor)}
	for _, descriptor := range c.filter(keep) {
		out.entries[descriptor.ID] = descriptor
		out.order = append(out.order, descriptor.ID)
	}
	return out
}

func (c *Catalog) filter(keep func(Descriptor) bool) []Descriptor {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		descriptor := c.entries[id]
		if keep(descriptor) {
			out = append(out, descriptor.clone())
		}
	}
	return out
}
