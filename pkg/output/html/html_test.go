package html_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
	"github.com/goliatone/go-resumegen/pkg/output/html"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/renderers/single"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

func renderOutput(t *testing.T, doc document.Document) *render.Output {
	t.Helper()
	renderer, err := single.New(catalog.Descriptor{ID: "classic", Layout: catalog.LayoutSingleColumn})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	th := theme.Resolve(doc.Metadata, theme.Defaults{}, theme.Mode{})
	out, err := renderer.Render(testsupport.Context(), doc, th, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRenderer_Page(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new html renderer: %v", err)
	}

	page, err := renderer.Render(renderOutput(t, testsupport.FullDocument()))
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	got := string(page)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Ada Lovelace</title>",
		`data-template="classic"`,
		"--accent-color: #0f766e;",
		"--spacing: 12;",
		`<h2 class="section-title">Experience</h2>`,
		`src="` + testsupport.PhotoURL + `"`,
		"Built X",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("page missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Secret Robot") {
		t.Fatalf("hidden section leaked into page")
	}
}

func TestFragment_EscapesDocumentText(t *testing.T) {
	doc := normalize.Normalize(document.Document{
		Sections: []document.Section{
			{ID: "personal", Type: document.SectionPersonal, IsVisible: true, Items: []document.Item{
				{FullName: "Mallory", Photo: "javascript:alert(1)"},
			}},
			{ID: "exp", Type: document.SectionExperience, IsVisible: true, Items: []document.Item{
				{Position: "Engineer <b>lead</b>", Description: document.Description{"<script>alert(1)</script>"}},
			}},
		},
	})

	got := html.Fragment(renderOutput(t, doc))
	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>") {
		t.Fatalf("document markup must be escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped script text:\n%s", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Fatalf("script URL must be stripped:\n%s", got)
	}
	if strings.Contains(got, "<html") {
		t.Fatalf("fragment must not include the page shell")
	}
}

func TestRenderer_CustomPageAndWriters(t *testing.T) {
	files := fstest.MapFS{
		"custom.tpl": &fstest.MapFile{Data: []byte(`{{ title }}|{{ family }}|{{ body|safe }}`)},
	}
	renderer, err := html.New(html.WithFS(files), html.WithPage("custom.tpl"))
	if err != nil {
		t.Fatalf("new html renderer: %v", err)
	}

	var mirror bytes.Buffer
	page, err := renderer.Render(renderOutput(t, testsupport.EngineerDocument()), &mirror)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.HasPrefix(string(page), "Résumé|single|") {
		t.Fatalf("unexpected custom page: %s", page)
	}
	if mirror.String() != string(page) {
		t.Fatalf("writer did not receive the page")
	}
}

func TestRenderer_Errors(t *testing.T) {
	renderer, err := html.New(html.WithPage("missing.tpl"))
	if err != nil {
		t.Fatalf("new html renderer: %v", err)
	}
	if _, err := renderer.Render(nil); err == nil {
		t.Fatalf("expected error for nil output")
	}
	if _, err := renderer.Render(renderOutput(t, testsupport.EngineerDocument())); err == nil {
		t.Fatalf("expected error for missing page template")
	}
}
