// Package timeline renders the timeline family: dated sections are drawn on
// a vertical rail with a marker per entry.
package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

const DefaultBaseSpacing = 14.0

// Marker values set on rail entries.
const (
	MarkerDot     = "dot"
	MarkerCurrent = "current"
)

// DefaultRailSections are the section types drawn on the rail.
func DefaultRailSections() []document.SectionType {
	return []document.SectionType{
		document.SectionExperience,
		document.SectionEducation,
		document.SectionProjects,
	}
}

type Option func(*config)

type config struct {
	rail        map[document.SectionType]bool
	baseSpacing float64
}

// WithRailSections replaces the section types drawn on the rail.
func WithRailSections(types ...document.SectionType) Option {
	return func(cfg *config) {
		cfg.rail = make(map[document.SectionType]bool, len(types))
		for _, sectionType := range types {
			cfg.rail[sectionType] = true
		}
	}
}

// WithBaseSpacing overrides the unscaled gap between rail entries.
func WithBaseSpacing(points float64) Option {
	return func(cfg *config) {
		if points > 0 {
			cfg.baseSpacing = points
		}
	}
}

type Renderer struct {
	templateID string
	cfg        config
}

var _ render.Renderer = (*Renderer)(nil)

// New configures a timeline renderer for descriptor.
func New(descriptor catalog.Descriptor, options ...Option) (*Renderer, error) {
	id := strings.TrimSpace(descriptor.ID)
	if id == "" {
		return nil, fmt.Errorf("timeline renderer: template id is required")
	}
	cfg := config{baseSpacing: DefaultBaseSpacing}
	WithRailSections(DefaultRailSections()...)(&cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{templateID: id, cfg: cfg}, nil
}

func (r *Renderer) Name() string {
	return r.templateID
}

func (r *Renderer) Family() render.Family {
	return render.FamilyTimeline
}

func (r *Renderer) Render(ctx context.Context, doc document.Document, th theme.Resolved, opts render.Options) (*render.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := render.BuildPlan(doc, th, opts)

	page := render.PageNode(render.FamilyTimeline, th, r.cfg.baseSpacing, theme.SensitivityHigh)
	if header := render.HeaderNode(plan.Header); header != nil {
		page.Append(header.Prepend(render.PhotoNode(plan.Header)))
	}

	main := render.NewNode(render.KindRegion, "main")
	for _, section := range plan.Sections {
		entry := render.DefaultEntry
		if r.cfg.rail[section.Type] {
			entry = railEntry
		}
		node := render.SectionNode(section, entry)
		if r.cfg.rail[section.Type] {
			node.SetAttr(render.AttrMarker, MarkerDot)
		}
		main.Append(node)
	}
	page.Append(main)

	return &render.Output{
		TemplateID: r.templateID,
		Family:     render.FamilyTimeline,
		Theme:      th,
		Root:       page,
	}, nil
}

// railEntry moves the date onto the rail ahead of the entry body. Open
// ranges get the current marker.
func railEntry(_ render.PlannedSection, item document.Item) *render.Node {
	entry := render.DetailEntry(item, false)
	entry.Prepend(render.TextNode(render.KindText, "rail-date", item.Date))

	marker := MarkerDot
	if strings.EqualFold(item.EndDate, normalize.PresentLabel) || strings.HasSuffix(item.Date, normalize.PresentLabel) {
		marker = MarkerCurrent
	}
	entry.SetAttr(render.AttrMarker, marker)
	return entry
}
