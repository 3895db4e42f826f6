package render

import (
	"strings"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Plan is the family-independent part of rendering: which sections appear,
// in which order, with which items. Every family builds its tree from a Plan,
// so the contract rules live here once.
type Plan struct {
	Header   *Header
	Sections []PlannedSection
}

// Header is the content drawn from the first visible personal section.
type Header struct {
	SectionID  string
	FullName   string
	JobTitle   string
	Email      string
	Phone      string
	Location   string
	Website    string
	Photo      string
	PhotoShape theme.PhotoShape
}

// Empty reports whether the header has nothing to show.
func (h *Header) Empty() bool {
	return h == nil || (h.FullName == "" && h.JobTitle == "" && h.Email == "" &&
		h.Phone == "" && h.Location == "" && h.Website == "" && h.Photo == "")
}

// Contacts returns the non-empty contact lines in display order.
func (h *Header) Contacts() []string {
	if h == nil {
		return nil
	}
	var out []string
	for _, value := range []string{h.Email, h.Phone, h.Location, h.Website} {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

// PlannedSection is a body section that survived the contract filters.
// Order is its position in the plan, used to keep a logical reading order
// when a family splits sections across regions.
type PlannedSection struct {
	ID      string
	Type    document.SectionType
	Title   string
	Columns int
	Items   []document.Item
	Order   int
}

// BuildPlan applies the rendering contract to a normalized document:
//   - invisible sections, and types hidden by opts, are omitted;
//   - sections without displayable content are omitted, so no empty headings;
//   - the section order is authoritative and unknown types are skipped;
//   - only the first visible personal and summary sections are used;
//   - the photo follows the theme's photo mode;
//   - preview truncation is applied to a copy, never to doc.
func BuildPlan(doc document.Document, th theme.Resolved, opts Options) Plan {
	var plan Plan
	order := 0

	for _, sectionType := range opts.Order(doc) {
		if opts.Hidden(sectionType) {
			continue
		}
		for _, section := range doc.Sections {
			if section.Type != sectionType || !section.IsVisible {
				continue
			}

			switch sectionType {
			case document.SectionPersonal:
				if plan.Header != nil {
					continue
				}
				if header := buildHeader(section, th); !header.Empty() {
					plan.Header = header
				}
				continue
			case document.SectionSummary:
				if hasPlanned(plan.Sections, document.SectionSummary) {
					continue
				}
			}

			items := contentItems(section.Type, section.Items, th)
			if len(items) == 0 {
				continue
			}
			plan.Sections = append(plan.Sections, PlannedSection{
				ID:      section.ID,
				Type:    section.Type,
				Title:   opts.SectionTitle(section),
				Columns: section.Columns,
				Items:   items,
				Order:   order,
			})
			order++
		}
	}
	return plan
}

func buildHeader(section document.Section, th theme.Resolved) *Header {
	header := &Header{SectionID: section.ID, JobTitle: th.JobTitle}
	for _, item := range section.Items {
		if !headerHasContent(item) && item.Photo == "" {
			continue
		}
		header.FullName = item.FullName
		if item.Title != "" {
			header.JobTitle = item.Title
		}
		header.Email = item.Email
		header.Phone = item.Phone
		header.Location = item.Location
		header.Website = item.Website
		if th.ShowPhoto(item.Photo) {
			header.Photo = item.Photo
			header.PhotoShape = th.PhotoShape()
		}
		break
	}
	return header
}

func contentItems(sectionType document.SectionType, items []document.Item, th theme.Resolved) []document.Item {
	out := make([]document.Item, 0, len(items))
	for _, item := range items {
		if !itemHasContent(sectionType, item) {
			continue
		}
		item = item.Clone()
		for i, line := range item.Description {
			item.Description[i] = th.Truncate(line)
		}
		out = append(out, item)
	}
	return out
}

// itemHasContent reports whether the entry DefaultEntry (or a family's
// variant of DetailEntry) builds for item would show any text. Fields an
// entry never draws, such as a lone skill level or an email outside the
// header, do not count.
func itemHasContent(sectionType document.SectionType, item document.Item) bool {
	switch sectionType {
	case document.SectionSummary:
		return !item.Description.Empty() || entryTitle(item) != ""
	case document.SectionSkills:
		if entryTitle(item) != "" {
			return true
		}
	}
	return anyText(entryTitle(item), item.Company, item.Date, item.Location) || !item.Description.Empty()
}

// headerHasContent mirrors the fields HeaderNode and ContactNode draw.
func headerHasContent(item document.Item) bool {
	return anyText(item.FullName, item.Title, item.Email, item.Phone, item.Location, item.Website)
}

func anyText(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func hasPlanned(sections []PlannedSection, sectionType document.SectionType) bool {
	for _, section := range sections {
		if section.Type == sectionType {
			return true
		}
	}
	return false
}
