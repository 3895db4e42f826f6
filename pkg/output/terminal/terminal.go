// Package terminal prints a rendered résumé with lipgloss styling. It is
// used by the CLI preview and works with any renderer family.
package terminal

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/goliatone/go-resumegen/pkg/render"
)

const DefaultWidth = 96

// Rail markers printed for timeline entries.
const (
	markerDot     = "○"
	markerCurrent = "●"
	bullet        = "•"
	separator     = " · "
)

type Option func(*config)

type config struct {
	width   int
	profile *termenv.Profile
}

// WithWidth caps the printed width. Sidebar pages split it one third to two.
func WithWidth(width int) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.width = width
		}
	}
}

// WithColorProfile forces a color profile instead of detecting one from the
// writer. termenv.Ascii prints plain text.
func WithColorProfile(profile termenv.Profile) Option {
	return func(cfg *config) {
		cfg.profile = &profile
	}
}

// Renderer prints render.Output trees.
type Renderer struct {
	lr  *lipgloss.Renderer
	cfg config
}

// New returns a Renderer whose color support is detected from w.
func New(w io.Writer, options ...Option) *Renderer {
	cfg := config{width: DefaultWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	lr := lipgloss.NewRenderer(w)
	if cfg.profile != nil {
		lr.SetColorProfile(*cfg.profile)
	}
	return &Renderer{lr: lr, cfg: cfg}
}

// Write prints out to w.
func (r *Renderer) Write(w io.Writer, out *render.Output) error {
	_, err := io.WriteString(w, r.Render(out)+"\n")
	return err
}

// Render returns the printed page.
func (r *Renderer) Render(out *render.Output) string {
	if out == nil || out.Root == nil {
		return ""
	}
	st := newStyles(r.lr, out.Theme.AccentColor)

	var blocks []string
	var regions []*render.Node
	for _, child := range out.Root.Children {
		switch child.Kind {
		case render.KindHeader:
			blocks = append(blocks, r.header(st, child))
		case render.KindRegion:
			regions = append(regions, child)
		}
	}

	if out.Family == render.FamilySidebar && len(regions) == 2 {
		blocks = append(blocks, r.columns(st, regions[0], regions[1]))
	} else {
		for _, region := range regions {
			blocks = append(blocks, r.region(st, region))
		}
	}
	return strings.TrimRight(strings.Join(nonEmpty(blocks), "\n\n"), "\n")
}

func (r *Renderer) columns(st styles, left, right *render.Node) string {
	narrow := r.cfg.width / 3
	wide := r.cfg.width - narrow - 2
	leftWidth, rightWidth := wide, narrow
	if left.Role == "sidebar" {
		leftWidth, rightWidth = narrow, wide
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.lr.NewStyle().Width(leftWidth).Render(r.region(st, left)),
		"  ",
		r.lr.NewStyle().Width(rightWidth).Render(r.region(st, right)),
	)
}

func (r *Renderer) region(st styles, region *render.Node) string {
	var blocks []string
	for _, child := range region.Children {
		switch child.Kind {
		case render.KindHeader:
			blocks = append(blocks, r.header(st, child))
		case render.KindContact:
			blocks = append(blocks, contactLines(st, child))
		case render.KindPhoto:
			blocks = append(blocks, st.muted.Render("[photo]"))
		case render.KindSection:
			blocks = append(blocks, r.section(st, child))
		}
	}
	return strings.Join(nonEmpty(blocks), "\n\n")
}

func (r *Renderer) header(st styles, header *render.Node) string {
	var lines []string
	for _, child := range header.Children {
		switch {
		case child.Kind == render.KindPhoto:
			lines = append(lines, st.muted.Render("[photo]"))
		case child.Kind == render.KindContact:
			lines = append(lines, contactLines(st, child))
		case child.Role == "name":
			lines = append(lines, st.name.Render(child.Text))
		case child.Role == "job-title":
			lines = append(lines, st.jobTitle.Render(child.Text))
		}
	}
	return strings.Join(lines, "\n")
}

func contactLines(st styles, contact *render.Node) string {
	parts := make([]string, 0, len(contact.Children))
	for _, child := range contact.Children {
		parts = append(parts, child.Text)
	}
	return st.muted.Render(strings.Join(parts, separator))
}

func (r *Renderer) section(st styles, section *render.Node) string {
	var lines []string
	var tags []string
	rail := section.Attr(render.AttrMarker) != ""
	for _, child := range section.Children {
		switch child.Kind {
		case render.KindHeading:
			lines = append(lines, st.heading.Render(strings.ToUpper(child.Text)))
		case render.KindEntry:
			if child.Role == "skill" {
				tags = append(tags, skillLabel(child))
				continue
			}
			lines = append(lines, r.entry(st, child, rail))
		}
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, ", "))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) entry(st styles, entry *render.Node, rail bool) string {
	var head, body []string
	var date string
	for _, child := range entry.Children {
		switch child.Kind {
		case render.KindText:
			switch child.Role {
			case "title":
				head = append(head, st.title.Render(child.Text))
			case "subtitle":
				head = append(head, child.Text)
			case "date", "rail-date":
				date = child.Text
			case "location":
				body = append(body, st.muted.Render(child.Text))
			default:
				body = append(body, child.Text)
			}
		case render.KindList:
			for _, item := range child.Children {
				body = append(body, bullet+" "+item.Text)
			}
		case render.KindTag:
			body = append(body, child.Text)
		}
	}

	first := strings.Join(head, separator)
	if date != "" {
		if first == "" {
			first = st.muted.Render(date)
		} else {
			first += "  " + st.muted.Render(date)
		}
	}

	indent := ""
	if rail {
		marker := markerDot
		if entry.Attr(render.AttrMarker) == "current" {
			marker = markerCurrent
		}
		first = st.accent.Render(marker) + " " + first
		indent = "  "
	}

	lines := nonEmpty([]string{first})
	for _, line := range body {
		lines = append(lines, indent+line)
	}
	return strings.Join(lines, "\n")
}

func skillLabel(entry *render.Node) string {
	for _, child := range entry.Children {
		if child.Kind != render.KindTag {
			continue
		}
		if level := child.Attr("level"); level != "" {
			return child.Text + " (" + level + ")"
		}
		return child.Text
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
