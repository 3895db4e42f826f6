package testsupport

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// RunRendererContract checks the rendering contract against every renderer
// registered in registry. Each template id gets its own subtest.
func RunRendererContract(t *testing.T, registry *render.Registry) {
	t.Helper()

	ids := registry.IDs()
	if len(ids) == 0 {
		t.Fatalf("contract: registry has no renderers")
	}
	for _, id := range ids {
		renderer := registry.MustResolve(id)
		t.Run(id, func(t *testing.T) {
			RunRendererContractFor(t, renderer)
		})
	}
}

// RunRendererContractFor checks the rendering contract for one renderer.
func RunRendererContractFor(t *testing.T, renderer render.Renderer) {
	t.Helper()

	defaultTheme := theme.Resolve(document.Metadata{}, theme.Defaults{}, theme.Mode{})

	t.Run("engineer scenario", func(t *testing.T) {
		out := mustRender(t, renderer, EngineerDocument(), defaultTheme, render.Options{})
		text := out.Text()
		for _, want := range []string{"Engineer", "Acme", "Built X", "Shipped Y"} {
			if !strings.Contains(text, want) {
				t.Fatalf("output missing %q:\n%s", want, text)
			}
		}
		sections := out.Sections()
		if len(sections) != 1 {
			t.Fatalf("expected one section, got %d", len(sections))
		}
		if entries := countKind(sections[0], render.KindEntry); entries != 1 {
			t.Fatalf("expected one experience entry, got %d", entries)
		}
	})

	t.Run("empty section has no heading", func(t *testing.T) {
		doc := normalize.Normalize(document.Document{Sections: []document.Section{
			{ID: "skills", Type: document.SectionSkills, Title: "Skills", IsVisible: true, Items: []document.Item{}},
			{ID: "blank", Type: document.SectionExperience, IsVisible: true, Items: []document.Item{{}}},
		}})
		out := mustRender(t, renderer, doc, defaultTheme, render.Options{})
		if headings := out.Find(render.KindHeading); len(headings) != 0 {
			t.Fatalf("expected no headings, got %d (first %q)", len(headings), headings[0].Text)
		}
		if strings.Contains(out.Text(), "Skills") {
			t.Fatalf("empty skills section leaked into output")
		}
	})

	t.Run("fields an entry never draws do not keep a heading", func(t *testing.T) {
		doc := normalize.Normalize(document.Document{Sections: []document.Section{
			{ID: "skills", Type: document.SectionSkills, IsVisible: true, Items: []document.Item{{Level: "Expert"}}},
			{ID: "summary", Type: document.SectionSummary, IsVisible: true, Items: []document.Item{{Location: "Berlin", Email: "a@b.c"}}},
			{ID: "experience", Type: document.SectionExperience, IsVisible: true, Items: []document.Item{{Email: "a@b.c", Phone: "555", Website: "https://a.dev"}}},
		}})
		out := mustRender(t, renderer, doc, defaultTheme, render.Options{})
		if headings := out.Find(render.KindHeading); len(headings) != 0 {
			t.Fatalf("expected no headings, got %d:\n%s", len(headings), out.Text())
		}
		if sections := out.Sections(); len(sections) != 0 {
			t.Fatalf("expected no sections, got %d", len(sections))
		}
	})

	t.Run("hidden sections are omitted", func(t *testing.T) {
		out := mustRender(t, renderer, FullDocument(), defaultTheme, render.Options{})
		text := out.Text()
		for _, leaked := range []string{"Side Projects", "Secret Robot", "Classified work"} {
			if strings.Contains(text, leaked) {
				t.Fatalf("hidden section content %q rendered", leaked)
			}
		}

		hidden := render.Options{VisibleSections: map[document.SectionType]bool{document.SectionExperience: false}}
		out = mustRender(t, renderer, FullDocument(), defaultTheme, hidden)
		if strings.Contains(out.Text(), "Acme") {
			t.Fatalf("section hidden through options rendered")
		}
	})

	t.Run("section order is authoritative", func(t *testing.T) {
		doc := normalize.Normalize(document.Document{Sections: []document.Section{
			{ID: "summary", Type: document.SectionSummary, IsVisible: true, Items: []document.Item{{Description: document.Description{"Summary text"}}}},
			{ID: "experience", Type: document.SectionExperience, IsVisible: true, Items: []document.Item{{Position: "Engineer", Company: "Acme"}}},
			{ID: "skills", Type: document.SectionSkills, IsVisible: true, Items: []document.Item{{Name: "Go"}}},
		}})
		opts := render.Options{SectionOrder: []document.SectionType{document.SectionSkills, document.SectionExperience}}
		out := mustRender(t, renderer, doc, defaultTheme, opts)

		want := []document.SectionType{document.SectionSkills, document.SectionExperience}
		if diff := cmp.Diff(want, out.SectionTypes()); diff != "" {
			t.Fatalf("section order mismatch (-want +got):\n%s", diff)
		}
		if strings.Contains(out.Text(), "Summary text") {
			t.Fatalf("summary absent from the order list was rendered")
		}
	})

	t.Run("missing section types degrade", func(t *testing.T) {
		opts := render.Options{SectionOrder: []document.SectionType{
			document.SectionAwards, document.SectionExperience, document.SectionAchievements,
		}}
		out := mustRender(t, renderer, EngineerDocument(), defaultTheme, opts)
		if diff := cmp.Diff([]document.SectionType{document.SectionExperience}, out.SectionTypes()); diff != "" {
			t.Fatalf("section types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hidden photo is suppressed", func(t *testing.T) {
		hidden := theme.Resolve(document.Metadata{PhotoMode: "hidden"}, theme.Defaults{}, theme.Mode{})
		out := mustRender(t, renderer, FullDocument(), hidden, render.Options{})
		if photos := out.Find(render.KindPhoto); len(photos) != 0 {
			t.Fatalf("expected no photo nodes, got %d", len(photos))
		}
		if containsAnywhere(out.Root, PhotoURL) {
			t.Fatalf("photo url present in output")
		}

		visible := mustRender(t, renderer, FullDocument(), defaultTheme, render.Options{})
		if photos := visible.Find(render.KindPhoto); len(photos) != 1 || photos[0].Attr(render.AttrSrc) != PhotoURL {
			t.Fatalf("expected the photo to render in conditional mode, got %d nodes", len(photos))
		}
	})

	t.Run("string and list descriptions are equivalent", func(t *testing.T) {
		asString := decodeNormalized(t, `{"sections":[{"id":"e","type":"experience","items":[{"id":"i","position":"Engineer","description":"Built X"}]}]}`)
		asList := decodeNormalized(t, `{"sections":[{"id":"e","type":"experience","items":[{"id":"i","position":"Engineer","description":["Built X"]}]}]}`)
		left := mustRender(t, renderer, asString, defaultTheme, render.Options{})
		right := mustRender(t, renderer, asList, defaultTheme, render.Options{})
		if diff := cmp.Diff(left.Text(), right.Text()); diff != "" {
			t.Fatalf("description forms render differently (-string +list):\n%s", diff)
		}
	})

	t.Run("document is not mutated", func(t *testing.T) {
		doc := FullDocument()
		before := doc.Clone()
		preview := theme.Resolve(document.Metadata{}, theme.Defaults{}, theme.Mode{Preview: true, TruncateAt: 5})
		mustRender(t, renderer, doc, preview, render.Options{})
		if diff := cmp.Diff(before, doc); diff != "" {
			t.Fatalf("render mutated the document (-before +after):\n%s", diff)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(Context())
		cancel()
		if _, err := renderer.Render(ctx, EngineerDocument(), defaultTheme, render.Options{}); err == nil {
			t.Fatalf("expected an error for a cancelled context")
		}
	})

	t.Run("output identifies the template", func(t *testing.T) {
		out := mustRender(t, renderer, EngineerDocument(), defaultTheme, render.Options{})
		if out.TemplateID != renderer.Name() || out.Family != renderer.Family() {
			t.Fatalf("unexpected output identity %s/%s", out.TemplateID, out.Family)
		}
		if out.Root == nil || out.Root.Kind != render.KindPage {
			t.Fatalf("expected a page root")
		}
	})
}

func mustRender(t *testing.T, renderer render.Renderer, doc document.Document, th theme.Resolved, opts render.Options) *render.Output {
	t.Helper()
	out, err := renderer.Render(Context(), doc, th, opts)
	if err != nil {
		t.Fatalf("render %s: %v", renderer.Name(), err)
	}
	if out == nil || out.Root == nil {
		t.Fatalf("render %s: empty output", renderer.Name())
	}
	return out
}

func decodeNormalized(t *testing.T, payload string) document.Document {
	t.Helper()
	var doc document.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	return normalize.Normalize(doc)
}

func countKind(root *render.Node, kind render.NodeKind) int {
	count := 0
	root.Walk(func(n *render.Node) bool {
		if n.Kind == kind {
			count++
		}
		return true
	})
	return count
}

func containsAnywhere(root *render.Node, needle string) bool {
	found := false
	root.Walk(func(n *render.Node) bool {
		if strings.Contains(n.Text, needle) {
			found = true
		}
		for _, value := range n.Attrs {
			if strings.Contains(value, needle) {
				found = true
			}
		}
		return !found
	})
	return found
}
