// Package normalize reconciles document items into the canonical field
// superset renderers rely on. Normalize is pure, total and idempotent:
// it never fails, never mutates its input, and Normalize(Normalize(d)) equals
// Normalize(d).
package normalize

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/document"
)

// PresentLabel closes an open-ended date range.
const PresentLabel = "Present"

// Normalize returns a copy of doc in which every section and item exposes the
// canonical fields with synonyms cross-populated.
func Normalize(doc document.Document) document.Document {
	out := doc.Clone()
	out.ID = strings.TrimSpace(out.ID)
	out.TemplateID = strings.TrimSpace(out.TemplateID)
	out.Metadata = normalizeMetadata(out.Metadata)

	if out.Sections == nil {
		out.Sections = []document.Section{}
	}
	for i := range out.Sections {
		out.Sections[i] = normalizeSection(out.Sections[i], i)
	}
	return out
}

func normalizeSection(section document.Section, index int) document.Section {
	if !section.Type.Valid() {
		section.Type = document.ParseSectionType(string(section.Type))
	}
	section.ID = strings.TrimSpace(section.ID)
	if section.ID == "" {
		section.ID = fmt.Sprintf("%s-%d", section.Type, index)
	}
	section.Title = strings.TrimSpace(section.Title)
	if section.Title == "" {
		section.Title = section.Type.Label()
	}
	if section.Columns < 0 {
		section.Columns = 0
	}

	if section.Items == nil {
		section.Items = []document.Item{}
	}
	for i := range section.Items {
		item := NormalizeItem(section.Items[i])
		if item.ID == "" {
			item.ID = fmt.Sprintf("%s-item-%d", section.ID, i)
		}
		section.Items[i] = item
	}
	return section
}

// NormalizeItem applies the synonym precedence rules to a single item. Item
// ids are trimmed but never generated here; Normalize assigns positional ids.
func NormalizeItem(item document.Item) document.Item {
	out := document.Item{
		ID:        trim(item.ID),
		FullName:  collapse(item.FullName),
		FirstName: trim(item.FirstName),
		LastName:  trim(item.LastName),
		Location:  trim(item.Location),
		Date:      trim(item.Date),
		StartDate: trim(item.StartDate),
		EndDate:   trim(item.EndDate),
		Name:      trim(item.Name),
		Level:     trim(item.Level),
		Email:     trim(item.Email),
		Phone:     trim(item.Phone),
		Website:   trim(item.Website),
		Photo:     trim(item.Photo),
	}

	switch {
	case out.FullName == "":
		out.FullName = collapse(out.FirstName + " " + out.LastName)
	case out.FirstName == "" && out.LastName == "":
		out.FirstName, out.LastName = splitName(out.FullName)
	}

	position := firstNonEmpty(item.Position, item.Title)
	out.Position, out.Title = position, position

	company := firstNonEmpty(item.Company, item.Subtitle)
	out.Company, out.Subtitle = company, company

	out.Name = firstNonEmpty(out.Name, out.Title)

	if out.Date == "" {
		out.Date = dateRange(out.StartDate, out.EndDate)
	}

	out.Description = normalizeDescription(item.Description)
	return out
}

func normalizeMetadata(meta document.Metadata) document.Metadata {
	meta.FontFamily = trim(meta.FontFamily)
	meta.AccentColor = trim(meta.AccentColor)
	meta.JobTitle = trim(meta.JobTitle)
	meta.Density = strings.ToLower(trim(meta.Density))
	meta.PhotoMode = strings.ToLower(trim(meta.PhotoMode))
	meta.PhotoShape = strings.ToLower(trim(meta.PhotoShape))
	if meta.LineHeight < 0 {
		meta.LineHeight = 0
	}
	return meta
}

func normalizeDescription(desc document.Description) document.Description {
	out := make(document.Description, 0, len(desc))
	for _, line := range desc {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - " + PresentLabel
	default:
		return end
	}
}

func splitName(full string) (string, string) {
	first, last, _ := strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func trim(value string) string {
	return strings.TrimSpace(value)
}

func collapse(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
