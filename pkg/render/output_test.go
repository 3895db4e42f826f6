package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
)

func TestOutput_SectionsUseLogicalOrder(t *testing.T) {
	skills := render.SectionNode(render.PlannedSection{ID: "k", Type: document.SectionSkills, Title: "Skills", Order: 0,
		Items: []document.Item{{Name: "Go", Title: "Go", Level: "expert"}}}, nil)
	experience := render.SectionNode(render.PlannedSection{ID: "e", Type: document.SectionExperience, Title: "Experience", Order: 1,
		Items: []document.Item{{Title: "Engineer", Company: "Acme", Description: document.Description{"Built X", "Shipped Y"}}}}, nil)

	// experience placed first in tree order, as a sidebar family would.
	root := render.NewNode(render.KindPage, "",
		render.NewNode(render.KindRegion, "main", experience),
		render.NewNode(render.KindRegion, "sidebar", skills),
	)
	out := &render.Output{Root: root}

	want := []document.SectionType{document.SectionSkills, document.SectionExperience}
	if diff := cmp.Diff(want, out.SectionTypes()); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}

	wantText := "Experience\nEngineer\nAcme\nBuilt X\nShipped Y\nSkills\nGo\n"
	if diff := cmp.Diff(wantText, out.Text()); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
	if tags := out.Find(render.KindTag); len(tags) != 1 || tags[0].Attr("level") != "expert" {
		t.Fatalf("unexpected tags: %+v", tags)
	}
	if bullets := out.Find(render.KindBullet); len(bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %d", len(bullets))
	}
}

func TestDescriptionNode_StringAndListEquivalent(t *testing.T) {
	single := render.DescriptionNode(document.Description{"Led the platform team"})
	if single == nil || single.Kind != render.KindText || single.Text != "Led the platform team" {
		t.Fatalf("unexpected single-line description: %+v", single)
	}
	if render.DescriptionNode(nil) != nil {
		t.Fatalf("empty description should produce no node")
	}
}

func TestTextNode_SkipsEmpty(t *testing.T) {
	node := render.NewNode(render.KindEntry, "", render.TextNode(render.KindText, "title", "  "), nil)
	if len(node.Children) != 0 {
		t.Fatalf("expected empty text to be skipped, got %d children", len(node.Children))
	}
}
