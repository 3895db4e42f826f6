// Package resumegen is the top-level entry point: it re-exports the render
// engine and the handful of types callers need to render a résumé without
// importing the sub-packages directly.
package resumegen

import (
	"context"
	"io/fs"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/engine"
	"github.com/goliatone/go-resumegen/pkg/output/html"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Document is the résumé aggregate.
type Document = document.Document

// Request describes one render.
type Request = engine.Request

// Output is the rendered layout tree.
type Output = render.Output

// Descriptor is a catalog entry.
type Descriptor = catalog.Descriptor

// ErrTemplateNotFound is returned when no renderer serves a template id.
var ErrTemplateNotFound = render.ErrTemplateNotFound

// NewEngine exposes the engine constructor from the module root.
func NewEngine(options ...engine.Option) *engine.Engine {
	return engine.New(options...)
}

// DefaultCatalog returns the bundled template catalog.
func DefaultCatalog() *catalog.Catalog {
	return catalog.Default()
}

// Parse decodes a stored JSON or YAML document.
func Parse(data []byte) (Document, error) {
	return document.Parse(data)
}

// Render renders doc with the named template. An empty templateID uses the
// document's own template.
func Render(ctx context.Context, doc Document, templateID string, options ...engine.Option) (*Output, error) {
	return engine.New(options...).Render(ctx, Request{Document: doc, TemplateID: templateID})
}

// RenderHTML renders doc into a standalone HTML page.
func RenderHTML(ctx context.Context, doc Document, templateID string, options ...engine.Option) ([]byte, error) {
	return engine.New(options...).RenderHTML(ctx, Request{Document: doc, TemplateID: templateID})
}

// EmbeddedTemplates exposes the built-in HTML page templates so callers can
// reuse or extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// WithThemeSelector passes a go-theme selector through to the engine so
// theme variants are resolved ahead of rendering.
func WithThemeSelector(selector gotheme.ThemeSelector) engine.Option {
	return engine.WithThemeSelector(selector)
}

// WithCatalogThemes registers the catalog's templates as go-theme manifests
// and selects variants from them.
func WithCatalogThemes(cat *catalog.Catalog) engine.Option {
	return engine.WithThemeSelector(theme.NewCatalogSelector(cat))
}
