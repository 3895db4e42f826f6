package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps template ids to renderers one to one. It is constructed
// explicitly and passed to whoever dispatches; there is no package-level
// instance, so tests and free/premium setups can hold separate registries.
//
// Resolve is strict on purpose. The template catalog falls back to its first
// descriptor for unknown ids because descriptors only carry cosmetic
// defaults, but substituting a renderer would silently change the layout a
// user is about to export. Keep the two behaviors different.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register binds templateID to renderer. Empty ids, nil renderers and
// duplicate ids are rejected.
func (r *Registry) Register(templateID string, renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	id := strings.TrimSpace(templateID)
	if id == "" {
		return fmt.Errorf("render: template id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, id)
	}
	r.renderers[id] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(templateID string, renderer Renderer) {
	if err := r.Register(templateID, renderer); err != nil {
		panic(err)
	}
}

// Resolve returns the renderer registered for templateID. Unknown ids yield
// a *TemplateNotFoundError. Repeated calls for the same id return the same
// renderer value.
func (r *Registry) Resolve(templateID string) (Renderer, error) {
	if r == nil {
		return nil, &TemplateNotFoundError{TemplateID: templateID}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[strings.TrimSpace(templateID)]
	if !ok {
		return nil, &TemplateNotFoundError{TemplateID: templateID}
	}
	return renderer, nil
}

// MustResolve panics if the template id is unknown.
func (r *Registry) MustResolve(templateID string) Renderer {
	renderer, err := r.Resolve(templateID)
	if err != nil {
		panic(err)
	}
	return renderer
}

// IDs returns the registered template ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.renderers))
	for id := range r.renderers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a renderer is registered for templateID.
func (r *Registry) Has(templateID string) bool {
	_, err := r.Resolve(templateID)
	return err == nil
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}
