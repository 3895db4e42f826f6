// Package sidebar renders the two-column family: a narrow sidebar holding the
// photo, contact details and short sections next to a main column.
package sidebar

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Side places the sidebar column.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

const DefaultBaseSpacing = 10.0

// DefaultSidebarSections are the section types placed in the sidebar when
// no option overrides them.
func DefaultSidebarSections() []document.SectionType {
	return []document.SectionType{
		document.SectionSkills,
		document.SectionCertifications,
		document.SectionAwards,
		document.SectionAchievements,
	}
}

type Option func(*config)

type config struct {
	side        Side
	sidebar     map[document.SectionType]bool
	baseSpacing float64
}

// WithSide moves the sidebar to the left or right column.
func WithSide(side Side) Option {
	return func(cfg *config) {
		if side == SideLeft || side == SideRight {
			cfg.side = side
		}
	}
}

// WithSidebarSections replaces the section types placed in the sidebar.
func WithSidebarSections(types ...document.SectionType) Option {
	return func(cfg *config) {
		cfg.sidebar = make(map[document.SectionType]bool, len(types))
		for _, sectionType := range types {
			cfg.sidebar[sectionType] = true
		}
	}
}

// WithBaseSpacing overrides the unscaled section gap.
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

// New configures a sidebar renderer for descriptor.
func New(descriptor catalog.Descriptor, options ...Option) (*Renderer, error) {
	id := strings.TrimSpace(descriptor.ID)
	if id == "" {
		return nil, fmt.Errorf("sidebar renderer: template id is required")
	}
	cfg := config{side: SideLeft, baseSpacing: DefaultBaseSpacing}
	WithSidebarSections(DefaultSidebarSections()...)(&cfg)
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
	return render.FamilySidebar
}

// Render splits the plan across two regions. Section nodes keep their plan
// order attribute, so Output.Sections still reports the requested order.
func (r *Renderer) Render(ctx context.Context, doc document.Document, th theme.Resolved, opts render.Options) (*render.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := render.BuildPlan(doc, th, opts)

	side := render.NewNode(render.KindRegion, "sidebar",
		render.PhotoNode(plan.Header),
		render.ContactNode(plan.Header),
	)
	side.SetAttr(render.AttrSide, string(r.cfg.side))

	main := render.NewNode(render.KindRegion, "main")
	if plan.Header != nil {
		header := render.NewNode(render.KindHeader, "",
			render.TextNode(render.KindText, "name", plan.Header.FullName),
			render.TextNode(render.KindText, "job-title", plan.Header.JobTitle),
		)
		if len(header.Children) > 0 {
			header.SetAttr(render.AttrSectionID, plan.Header.SectionID)
			main.Append(header)
		}
	}

	for _, section := range plan.Sections {
		node := render.SectionNode(section, render.DefaultEntry)
		if r.cfg.sidebar[section.Type] {
			side.Append(node)
			continue
		}
		main.Append(node)
	}

	page := render.PageNode(render.FamilySidebar, th, r.cfg.baseSpacing, theme.SensitivityHigh)
	if r.cfg.side == SideRight {
		page.Append(main, side)
	} else {
		page.Append(side, main)
	}

	return &render.Output{
		TemplateID: r.templateID,
		Family:     render.FamilySidebar,
		Theme:      th,
		Root:       page,
	}, nil
}
