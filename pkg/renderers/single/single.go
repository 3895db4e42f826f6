// Package single renders templates of the single-column family: a header
// followed by every section top to bottom.
package single

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// DefaultBaseSpacing is the section gap, in points, before density scaling.
const DefaultBaseSpacing = 12.0

type Option func(*config)

type config struct {
	baseSpacing float64
	sensitivity theme.Sensitivity
	entry       render.EntryFunc
}

// WithBaseSpacing overrides the unscaled section gap.
func WithBaseSpacing(points float64) Option {
	return func(cfg *config) {
		if points > 0 {
			cfg.baseSpacing = points
		}
	}
}

// WithSensitivity changes how strongly density affects spacing.
func WithSensitivity(sensitivity theme.Sensitivity) Option {
	return func(cfg *config) {
		cfg.sensitivity = sensitivity
	}
}

// WithEntryFunc replaces the item builder, e.g. for a template that renders
// skills as plain lines.
func WithEntryFunc(fn render.EntryFunc) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.entry = fn
		}
	}
}

// Renderer draws one template of the single-column family.
type Renderer struct {
	templateID string
	cfg        config
}

var _ render.Renderer = (*Renderer)(nil)

// New configures a renderer for the template described by descriptor.
func New(descriptor catalog.Descriptor, options ...Option) (*Renderer, error) {
	id := strings.TrimSpace(descriptor.ID)
	if id == "" {
		return nil, fmt.Errorf("single renderer: template id is required")
	}
	cfg := config{
		baseSpacing: DefaultBaseSpacing,
		sensitivity: theme.SensitivityLow,
		entry:       render.DefaultEntry,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{
		templateID: id,
		cfg:        cfg,
	}, nil
}

func (r *Renderer) Name() string {
	return r.templateID
}

func (r *Renderer) Family() render.Family {
	return render.FamilySingle
}

// Render lays the plan out in one column.
func (r *Renderer) Render(ctx context.Context, doc document.Document, th theme.Resolved, opts render.Options) (*render.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := render.BuildPlan(doc, th, opts)

	page := render.PageNode(render.FamilySingle, th, r.cfg.baseSpacing, r.cfg.sensitivity)

	if header := render.HeaderNode(plan.Header); header != nil {
		page.Append(header.Prepend(render.PhotoNode(plan.Header)))
	}

	main := render.NewNode(render.KindRegion, "main")
	for _, section := range plan.Sections {
		main.Append(render.SectionNode(section, r.cfg.entry))
	}
	page.Append(main)

	return &render.Output{
		TemplateID: r.templateID,
		Family:     render.FamilySingle,
		Theme:      th,
		Root:       page,
	}, nil
}
