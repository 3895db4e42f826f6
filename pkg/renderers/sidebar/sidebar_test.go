package sidebar_test

import (
	"testing"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/renderers/sidebar"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

func newRenderer(t *testing.T, options ...sidebar.Option) *sidebar.Renderer {
	t.Helper()
	renderer, err := sidebar.New(catalog.Descriptor{ID: "modern", Layout: catalog.LayoutTwoColumn}, options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func regionTypes(region *render.Node) []string {
	var out []string
	for _, child := range region.Children {
		if child.Kind == render.KindSection {
			out = append(out, child.Attr(render.AttrSectionType))
		}
	}
	return out
}

func TestRenderer_Contract(t *testing.T) {
	testsupport.RunRendererContractFor(t, newRenderer(t))
	testsupport.RunRendererContractFor(t, newRenderer(t, sidebar.WithSide(sidebar.SideRight), sidebar.WithSidebarSections()))
}

func TestRenderer_SplitsRegions(t *testing.T) {
	renderer := newRenderer(t)
	th := theme.Resolve(document.Metadata{Density: "spacious"}, theme.Defaults{}, theme.Mode{})

	out, err := renderer.Render(testsupport.Context(), testsupport.FullDocument(), th, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := out.Root.Attr(render.AttrSpacing); got != "13" {
		t.Fatalf("expected high-sensitivity spacious spacing 13, got %q", got)
	}

	side, main := out.Root.Children[0], out.Root.Children[1]
	if side.Role != "sidebar" || side.Attr(render.AttrSide) != "left" || main.Role != "main" {
		t.Fatalf("unexpected regions %q/%q", side.Role, main.Role)
	}
	if side.Children[0].Kind != render.KindPhoto || side.Children[1].Kind != render.KindContact {
		t.Fatalf("expected photo then contact at the top of the sidebar")
	}
	if got := regionTypes(side); len(got) != 2 || got[0] != "skills" || got[1] != "certifications" {
		t.Fatalf("unexpected sidebar sections %v", got)
	}
	if got := regionTypes(main); len(got) != 3 || got[0] != "summary" || got[2] != "education" {
		t.Fatalf("unexpected main sections %v", got)
	}
	if main.Children[0].Kind != render.KindHeader {
		t.Fatalf("expected name header at the top of the main column")
	}
}

func TestRenderer_RightSideAndCustomSections(t *testing.T) {
	renderer := newRenderer(t,
		sidebar.WithSide(sidebar.SideRight),
		sidebar.WithSidebarSections(document.SectionEducation),
	)
	th := theme.Resolve(document.Metadata{}, theme.Defaults{}, theme.Mode{})

	out, err := renderer.Render(testsupport.Context(), testsupport.FullDocument(), th, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	main, side := out.Root.Children[0], out.Root.Children[1]
	if side.Attr(render.AttrSide) != "right" || main.Role != "main" {
		t.Fatalf("expected sidebar on the right")
	}
	if got := regionTypes(side); len(got) != 1 || got[0] != "education" {
		t.Fatalf("unexpected sidebar sections %v", got)
	}
}
