package render

import (
	"context"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Family names a layout family. Many templates share one family and differ
// only in their descriptor defaults.
type Family string

const (
	FamilySingle   Family = "single"
	FamilySidebar  Family = "sidebar"
	FamilyTimeline Family = "timeline"
)

// Renderer turns a normalized document and a resolved theme into a layout
// tree. Implementations must be pure: no shared mutable state, no mutation
// of doc. Feeding a document that did not go through normalize.Normalize is
// out of contract.
type Renderer interface {
	Name() string
	Family() Family
	Render(ctx context.Context, doc document.Document, th theme.Resolved, opts Options) (*Output, error)
}
