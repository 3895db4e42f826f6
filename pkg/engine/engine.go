package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	gotheme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
	"github.com/goliatone/go-resumegen/pkg/output/html"
	"github.com/goliatone/go-resumegen/pkg/output/terminal"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/renderers/builtin"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithCatalog replaces the bundled template catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(e *Engine) {
		e.catalog = cat
	}
}

// WithRegistry injects a renderer registry. Without it the engine builds one
// from the catalog with the builtin families.
func WithRegistry(registry *render.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics registers render counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// WithThemeSelector resolves template defaults through a go-theme selector
// instead of reading them from the descriptor.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(e *Engine) {
		e.selector = selector
	}
}

// WithEngineDefaults sets the layer used when neither the document nor the
// template supplies a theme value.
func WithEngineDefaults(defaults theme.Defaults) Option {
	return func(e *Engine) {
		e.defaults = defaults
	}
}

// WithHTMLRenderer replaces the HTML page renderer used by RenderHTML.
func WithHTMLRenderer(renderer *html.Renderer) Option {
	return func(e *Engine) {
		e.html = renderer
	}
}

// WithTranslator localizes default section headings for requests that carry
// a Locale.
func WithTranslator(translator render.Translator) Option {
	return func(e *Engine) {
		e.translator = translator
	}
}

// WithMissingTranslationHandler controls the heading used when a key has no
// translation. The default keeps the English label.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(e *Engine) {
		e.onMissing = handler
	}
}

// Engine runs normalize, descriptor lookup, dispatch, theme resolution and
// render for each request. It holds no per-request state, so one engine can
// serve concurrent renders.
type Engine struct {
	catalog    *catalog.Catalog
	registry   *render.Registry
	logger     *slog.Logger
	registerer prometheus.Registerer
	metrics    *metrics
	selector   gotheme.ThemeSelector
	defaults   theme.Defaults
	html       *html.Renderer
	translator render.Translator
	onMissing  render.MissingTranslationHandler

	initialiseErr error
}

// New constructs an Engine. Missing dependencies are filled with the bundled
// catalog and the builtin renderer families; construction errors surface on
// the first Render call and from Err.
func New(options ...Option) *Engine {
	e := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaults: theme.EngineDefaults(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.registry == nil {
		registry, err := builtin.Registry(e.catalog, nil)
		if err != nil {
			e.initialiseErr = fmt.Errorf("engine: default registry: %w", err)
			return
		}
		e.registry = registry
	}
	if e.registerer != nil {
		m, err := newMetrics(e.registerer)
		if err != nil {
			e.initialiseErr = fmt.Errorf("engine: register metrics: %w", err)
			return
		}
		e.metrics = m
	}
	e.defaults = e.defaults.Merge(theme.EngineDefaults())
}

// Err reports a construction error, if any.
func (e *Engine) Err() error {
	return e.initialiseErr
}

// Catalog returns the template catalog the engine reads descriptors from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Registry returns the renderer registry the engine dispatches to.
func (e *Engine) Registry() *render.Registry {
	return e.registry
}

// Request describes one render.
type Request struct {
	// Document is rendered after normalization; the caller's value is never
	// modified.
	Document document.Document

	// TemplateID overrides Document.TemplateID when set.
	TemplateID string

	// ThemeVariant picks a manifest variant when a theme selector is
	// configured.
	ThemeVariant string

	// Mode carries preview constraints.
	Mode theme.Mode

	// SectionOrder lists the section types to render, in order. Empty means
	// the template structure followed by any other types in the document.
	SectionOrder []document.SectionType

	// VisibleSections overrides section visibility by type.
	VisibleSections map[document.SectionType]bool

	// Locale selects translated default headings, e.g. "de".
	Locale string
}

// Render produces the layout tree for req. An unknown template id fails with
// render.ErrTemplateNotFound; only an empty id falls back to the catalog
// default.
func (e *Engine) Render(ctx context.Context, req Request) (*render.Output, error) {
	if ctx == nil {
		return nil, errors.New("engine: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.initialiseErr; err != nil {
		return nil, err
	}

	started := time.Now()
	doc := normalize.Normalize(req.Document)

	requested := strings.TrimSpace(req.TemplateID)
	if requested == "" {
		requested = strings.TrimSpace(doc.TemplateID)
	}

	descriptor := e.descriptorFor(requested)
	templateID := requested
	if templateID == "" {
		templateID = descriptor.ID
	}

	renderer, err := e.registry.Resolve(templateID)
	if err != nil {
		e.metrics.observe(templateID, "", started, err)
		e.logger.Warn("template not registered", "template", templateID, "error", err)
		return nil, err
	}

	th := theme.Resolve(doc.Metadata, e.themeDefaults(descriptor, req.ThemeVariant), req.Mode)

	opts := render.Options{
		SectionOrder:    req.SectionOrder,
		VisibleSections: req.VisibleSections,
		Locale:          strings.TrimSpace(req.Locale),
		Translator:      e.translator,
		OnMissing:       e.onMissing,
	}
	if len(opts.SectionOrder) == 0 {
		opts.SectionOrder = DefaultOrder(descriptor, doc)
	}

	out, err := renderer.Render(ctx, doc, th, opts)
	family := string(renderer.Family())
	e.metrics.observe(templateID, family, started, err)
	if err != nil {
		return nil, fmt.Errorf("engine: render %q: %w", templateID, err)
	}

	e.logger.Debug("rendered document",
		"template", templateID,
		"family", family,
		"sections", len(out.Sections()),
		"preview", req.Mode.Preview,
		"duration", time.Since(started),
	)
	return out, nil
}

// RenderHTML renders req and serializes it as an HTML page.
func (e *Engine) RenderHTML(ctx context.Context, req Request) ([]byte, error) {
	out, err := e.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	page := e.html
	if page == nil {
		page, err = html.New()
		if err != nil {
			return nil, fmt.Errorf("engine: html renderer: %w", err)
		}
	}
	return page.Render(out)
}

// RenderTerminal renders req and prints it to w.
func (e *Engine) RenderTerminal(ctx context.Context, req Request, w io.Writer, options ...terminal.Option) error {
	out, err := e.Render(ctx, req)
	if err != nil {
		return err
	}
	return terminal.New(w, options...).Write(w, out)
}

// NewDocument creates an empty document shaped by the template's structure.
// Unknown ids resolve to the catalog default, as descriptor lookups do.
func (e *Engine) NewDocument(templateID string, options ...document.Option) document.Document {
	descriptor := e.descriptorFor(templateID)
	id := descriptor.ID
	if id == "" {
		id = strings.TrimSpace(templateID)
	}
	base := []document.Option{
		document.WithStructure(descriptor.StructureOrDefault()),
		document.WithPremium(descriptor.IsPremium),
	}
	return document.New(id, append(base, options...)...)
}

// DefaultOrder is the template structure followed by the remaining section
// types of doc in document order.
func DefaultOrder(descriptor catalog.Descriptor, doc document.Document) []document.SectionType {
	seen := make(map[document.SectionType]bool)
	var order []document.SectionType
	add := func(sectionType document.SectionType) {
		if !sectionType.Valid() || seen[sectionType] {
			return
		}
		seen[sectionType] = true
		order = append(order, sectionType)
	}
	for _, sectionType := range descriptor.Structure {
		add(sectionType)
	}
	for _, section := range doc.Sections {
		add(section.Type)
	}
	return order
}

// descriptorFor is the forgiving catalog lookup. A miss is logged and
// counted but never fails the request; dispatch decides whether the id can
// actually be rendered.
func (e *Engine) descriptorFor(id string) catalog.Descriptor {
	descriptor, exact := e.catalog.Resolve(id)
	if !exact && id != "" {
		e.metrics.fallback(id)
		e.logger.Warn("template not in catalog, using default descriptor",
			"requested", id,
			"fallback", descriptor.ID,
		)
	}
	return descriptor
}

func (e *Engine) themeDefaults(descriptor catalog.Descriptor, variant string) theme.Defaults {
	defaults := theme.DefaultsFromDescriptor(descriptor)
	if e.selector != nil {
		selection, err := e.selector.Select(descriptor.ID, variant)
		if err == nil {
			defaults = theme.DefaultsFromSelection(selection)
		} else {
			e.logger.Debug("theme selection failed, using descriptor defaults",
				"template", descriptor.ID,
				"variant", variant,
				"error", err,
			)
		}
	}
	return defaults.Merge(e.defaults)
}
