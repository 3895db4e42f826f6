package catalog

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-resumegen/pkg/document"
)

// Layout tags the renderer family a template is drawn with.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutTimeline     Layout = "timeline"
)

// Layouts lists the known layout families.
func Layouts() []Layout {
	return []Layout{LayoutSingleColumn, LayoutTwoColumn, LayoutTimeline}
}

// CategoryAll selects every descriptor in ListByCategory.
const CategoryAll = "all"

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Descriptor is the catalog entry for a template: its metadata and the
// cosmetic defaults a document inherits when it does not override them.
type Descriptor struct {
	ID               string                 `json:"id" yaml:"id"`
	Name             string                 `json:"name" yaml:"name"`
	Category         string                 `json:"category" yaml:"category"`
	Layout           Layout                 `json:"layout" yaml:"layout"`
	DefaultFont      string                 `json:"defaultFont" yaml:"defaultFont"`
	DefaultColor     string                 `json:"defaultColor" yaml:"defaultColor"`
	Structure        []document.SectionType `json:"structure" yaml:"structure"`
	IsPremium        bool                   `json:"isPremium" yaml:"isPremium"`
	DefaultDensity   string                 `json:"defaultDensity,omitempty" yaml:"defaultDensity,omitempty"`
	DefaultPhotoMode string                 `json:"defaultPhotoMode,omitempty" yaml:"defaultPhotoMode,omitempty"`
	Description      string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Tags             []string               `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Validate checks the descriptor's shape. It does not check id uniqueness;
// the catalog does that on insertion.
func (d Descriptor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID,
			validation.Required,
			validation.Length(1, 64),
			validation.Match(slugPattern).Error("must be a lowercase slug"),
		),
		validation.Field(&d.Name, validation.Required, validation.Length(1, 80)),
		validation.Field(&d.Category, validation.Required),
		validation.Field(&d.Layout,
			validation.Required,
			validation.In(LayoutSingleColumn, LayoutTwoColumn, LayoutTimeline),
		),
		validation.Field(&d.DefaultColor, validation.Match(hexColorPattern).Error("must be a hex color")),
		validation.Field(&d.Structure, validation.Each(validation.By(validSectionType))),
		validation.Field(&d.DefaultDensity, validation.In("compact", "comfortable", "spacious")),
		validation.Field(&d.DefaultPhotoMode, validation.In("visible", "hidden", "conditional", "square")),
	)
}

// StructureOrDefault returns the descriptor's section order, falling back to
// the document default set.
func (d Descriptor) StructureOrDefault() []document.SectionType {
	if len(d.Structure) == 0 {
		return document.DefaultStructure()
	}
	return append([]document.SectionType(nil), d.Structure...)
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.Structure = append([]document.SectionType(nil), d.Structure...)
	out.Tags = append([]string(nil), d.Tags...)
	return out
}

// validSectionType rejects section types outside the closed set. Catalog
// files keep structure entries as raw strings (see descriptorFile), so a
// typo reaches this rule instead of being decoded to custom.
func validSectionType(value any) error {
	sectionType, ok := value.(document.SectionType)
	if !ok {
		return fmt.Errorf("unexpected value %T", value)
	}
	if !sectionType.Valid() {
		return fmt.Errorf("unknown section type %q", sectionType)
	}
	return nil
}
