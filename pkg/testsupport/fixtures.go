package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/normalize"
)

// PhotoURL is the portrait used by fixtures that carry a photo.
const PhotoURL = "https://example.com/photos/ada.png"

// LoadDocument reads a JSON or YAML fixture and normalizes it. Testing
// helpers fail the test on error to keep contract tests concise.
func LoadDocument(t *testing.T, path string) document.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return normalize.Normalize(doc)
}

// LoadDocumentFromPath returns the stored document without normalizing it,
// for callers wiring fixtures outside of *testing.T.
func LoadDocumentFromPath(path string) (document.Document, error) {
	if path == "" {
		return document.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return document.Document{}, fmt.Errorf("testsupport: %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// EngineerDocument holds a single visible experience section with one job.
func EngineerDocument() document.Document {
	return normalize.Normalize(document.Document{
		ID:         "engineer",
		TemplateID: "classic",
		Sections: []document.Section{
			{ID: "exp", Type: document.SectionExperience, Title: "Experience", IsVisible: true, Items: []document.Item{
				{ID: "job", Position: "Engineer", Company: "Acme", Description: document.Description{"Built X", "Shipped Y"}},
			}},
		},
	})
}

// FullDocument exercises every section type, a photo and a hidden section.
func FullDocument() document.Document {
	return normalize.Normalize(document.Document{
		ID:         "full",
		TemplateID: "classic",
		Metadata:   document.Metadata{AccentColor: "#0f766e", FontFamily: "lato", JobTitle: "Engineer"},
		Sections: []document.Section{
			{ID: "personal", Type: document.SectionPersonal, IsVisible: true, Items: []document.Item{{
				FirstName: "Ada", LastName: "Lovelace", Title: "Principal Engineer",
				Email: "ada@example.com", Phone: "+44 20 0000 0000", Location: "London",
				Website: "https://ada.dev", Photo: PhotoURL,
			}}},
			{ID: "summary", Type: document.SectionSummary, IsVisible: true, Items: []document.Item{
				{Description: document.Description{"Engineer focused on analytical engines."}},
			}},
			{ID: "experience", Type: document.SectionExperience, IsVisible: true, Items: []document.Item{
				{Position: "Engineer", Company: "Acme", StartDate: "2020", Description: document.Description{"Built X", "Shipped Y"}},
				{Title: "Analyst", Subtitle: "Initech", StartDate: "2017", EndDate: "2020", Location: "Remote"},
			}},
			{ID: "education", Type: document.SectionEducation, IsVisible: true, Items: []document.Item{
				{Title: "BSc Mathematics", Company: "University of London", Date: "2016"},
			}},
			{ID: "skills", Type: document.SectionSkills, IsVisible: true, Columns: 2, Items: []document.Item{
				{Name: "Go", Level: "expert"}, {Name: "SQL"},
			}},
			{ID: "projects", Type: document.SectionProjects, Title: "Side Projects", IsVisible: false, Items: []document.Item{
				{Name: "Secret Robot", Description: document.Description{"Classified work"}},
			}},
			{ID: "certifications", Type: document.SectionCertifications, IsVisible: true, Items: []document.Item{
				{Name: "CKA", Date: "2022"},
			}},
			{ID: "awards", Type: document.SectionAwards, IsVisible: true, Items: []document.Item{}},
		},
	})
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs a render function that writes to an io.Writer and
// returns both the returned string and what was written.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
