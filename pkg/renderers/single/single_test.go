package single_test

import (
	"testing"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/renderers/single"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

func newRenderer(t *testing.T, options ...single.Option) *single.Renderer {
	t.Helper()
	renderer, err := single.New(catalog.Descriptor{ID: "classic", Layout: catalog.LayoutSingleColumn}, options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_Contract(t *testing.T) {
	testsupport.RunRendererContractFor(t, newRenderer(t))
}

func TestRenderer_Layout(t *testing.T) {
	renderer := newRenderer(t)
	th := theme.Resolve(document.Metadata{Density: "compact"}, theme.Defaults{}, theme.Mode{})

	out, err := renderer.Render(testsupport.Context(), testsupport.FullDocument(), th, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if out.Family != render.FamilySingle || out.TemplateID != "classic" {
		t.Fatalf("unexpected identity: %s/%s", out.TemplateID, out.Family)
	}
	if got := out.Root.Attr(render.AttrSpacing); got != "10.2" {
		t.Fatalf("expected low-sensitivity compact spacing 10.2, got %q", got)
	}

	if len(out.Root.Children) != 2 {
		t.Fatalf("expected header and main region, got %d children", len(out.Root.Children))
	}
	header := out.Root.Children[0]
	if header.Kind != render.KindHeader || header.Children[0].Kind != render.KindPhoto {
		t.Fatalf("expected the header to open with the photo: %+v", header)
	}
	if header.Children[1].Text != "Ada Lovelace" {
		t.Fatalf("unexpected name node %q", header.Children[1].Text)
	}

	main := out.Root.Children[1]
	var types []string
	for _, section := range main.Children {
		types = append(types, section.Attr(render.AttrSectionType))
	}
	want := []string{"summary", "experience", "education", "skills", "certifications"}
	if len(types) != len(want) {
		t.Fatalf("unexpected sections %v", types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("unexpected sections %v", types)
		}
	}
	if main.Children[3].Attr(render.AttrColumns) != "2" {
		t.Fatalf("skills columns hint missing")
	}
}

func TestRenderer_RequiresTemplateID(t *testing.T) {
	if _, err := single.New(catalog.Descriptor{}); err == nil {
		t.Fatalf("expected error for empty template id")
	}
}

func TestRenderer_WithEntryFunc(t *testing.T) {
	renderer := newRenderer(t, single.WithEntryFunc(func(_ render.PlannedSection, item document.Item) *render.Node {
		return render.TextNode(render.KindText, "plain", item.Title)
	}))
	out, err := renderer.Render(testsupport.Context(), testsupport.EngineerDocument(), theme.Resolve(document.Metadata{}, theme.Defaults{}, theme.Mode{}), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if entries := out.Find(render.KindEntry); len(entries) != 0 {
		t.Fatalf("custom entry func ignored")
	}
	if texts := out.Find(render.KindText); len(texts) != 1 || texts[0].Text != "Engineer" {
		t.Fatalf("unexpected text nodes: %+v", texts)
	}
}
