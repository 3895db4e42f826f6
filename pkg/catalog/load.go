package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resumegen/pkg/document"
)

//go:embed data/catalog.yaml
var embeddedCatalog embed.FS

const embeddedCatalogPath = "data/catalog.yaml"

// Default returns a fresh catalog built from the bundled template table.
func Default() *Catalog {
	c, err := LoadFS(embeddedCatalog, embeddedCatalogPath)
	if err != nil {
		// The bundled table is covered by tests, so a failure here is a
		// build defect rather than a runtime condition.
		panic(err)
	}
	return c
}

// EmbeddedFS exposes the bundled catalog file for callers that want to
// extend it.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadFS reads and parses a JSON or YAML catalog file from fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: nil filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Load(data, path)
}

// Load parses a catalog file. The payload is tried as JSON first, then YAML.
// source is only used in error messages.
func Load(data []byte, source string) (*Catalog, error) {
	file, err := parseFile(data, source)
	if err != nil {
		return nil, err
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("%w (file %s)", ErrEmptyCatalog, source)
	}

	descriptors := make([]Descriptor, 0, len(file.Templates))
	for _, raw := range file.Templates {
		descriptors = append(descriptors, raw.descriptor())
	}
	c, err := New(descriptors...)
	if err != nil {
		return nil, fmt.Errorf("catalog: file %s: %w", source, err)
	}
	return c, nil
}

type catalogFile struct {
	Templates []descriptorFile `json:"templates" yaml:"templates"`
}

// descriptorFile keeps structure entries as raw strings so unknown section
// types fail validation instead of being coerced to custom.
type descriptorFile struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Category         string   `json:"category" yaml:"category"`
	Layout           string   `json:"layout" yaml:"layout"`
	DefaultFont      string   `json:"defaultFont" yaml:"defaultFont"`
	DefaultColor     string   `json:"defaultColor" yaml:"defaultColor"`
	Structure        []string `json:"structure" yaml:"structure"`
	IsPremium        bool     `json:"isPremium" yaml:"isPremium"`
	DefaultDensity   string   `json:"defaultDensity" yaml:"defaultDensity"`
	DefaultPhotoMode string   `json:"defaultPhotoMode" yaml:"defaultPhotoMode"`
	Description      string   `json:"description" yaml:"description"`
	Tags             []string `json:"tags" yaml:"tags"`
}

func (f descriptorFile) descriptor() Descriptor {
	structure := make([]document.SectionType, 0, len(f.Structure))
	for _, entry := range f.Structure {
		structure = append(structure, document.SectionType(strings.ToLower(strings.TrimSpace(entry))))
	}
	return Descriptor{
		ID:               strings.TrimSpace(f.ID),
		Name:             strings.TrimSpace(f.Name),
		Category:         strings.TrimSpace(f.Category),
		Layout:           Layout(strings.ToLower(strings.TrimSpace(f.Layout))),
		DefaultFont:      strings.TrimSpace(f.DefaultFont),
		DefaultColor:     strings.TrimSpace(f.DefaultColor),
		Structure:        structure,
		IsPremium:        f.IsPremium,
		DefaultDensity:   strings.ToLower(strings.TrimSpace(f.DefaultDensity)),
		DefaultPhotoMode: strings.ToLower(strings.TrimSpace(f.DefaultPhotoMode)),
		Description:      strings.TrimSpace(f.Description),
		Tags:             f.Tags,
	}
}

func parseFile(data []byte, source string) (catalogFile, error) {
	var file catalogFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &file); err == nil {
		return file, nil
	}
	file = catalogFile{}
	if err := yaml.Unmarshal(data, &file); err == nil {
		return file, nil
	}
	return catalogFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}
