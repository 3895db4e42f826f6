package render

import "github.com/goliatone/go-resumegen/pkg/document"

// Options carry per-request section configuration.
type Options struct {
	// SectionOrder is authoritative: sections whose type is not listed are
	// not rendered, listed types with no visible section are skipped and
	// repeated entries count once. An empty order renders every section type
	// in the order it first appears in the document.
	SectionOrder []document.SectionType
	// VisibleSections hides section types mapped to false. Types that are
	// absent from the map keep their own IsVisible flag.
	VisibleSections map[document.SectionType]bool
	// Locale selects translations for default section headings. Empty keeps
	// the built-in English labels.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Hidden reports whether the options hide every section of sectionType.
func (o Options) Hidden(sectionType document.SectionType) bool {
	if o.VisibleSections == nil {
		return false
	}
	visible, ok := o.VisibleSections[sectionType]
	return ok && !visible
}

// Order returns the effective, de-duplicated section order for doc.
func (o Options) Order(doc document.Document) []document.SectionType {
	source := o.SectionOrder
	if len(source) == 0 {
		source = make([]document.SectionType, 0, len(doc.Sections))
		for _, section := range doc.Sections {
			source = append(source, section.Type)
		}
	}

	seen := make(map[document.SectionType]struct{}, len(source))
	out := make([]document.SectionType, 0, len(source))
	for _, sectionType := range source {
		if !sectionType.Valid() {
			continue
		}
		if _, dup := seen[sectionType]; dup {
			continue
		}
		seen[sectionType] = struct{}{}
		out = append(out, sectionType)
	}
	return out
}
