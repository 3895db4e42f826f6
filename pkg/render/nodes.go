package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// EntryFunc builds the node for one item of a planned section.
type EntryFunc func(section PlannedSection, item document.Item) *Node

// PageNode builds the root node with the density-scaled spacing and the
// preview font scale recorded as attributes.
func PageNode(family Family, th theme.Resolved, baseSpacing float64, sensitivity theme.Sensitivity) *Node {
	page := NewNode(KindPage, string(family))
	page.SetAttr(AttrSpacing, strconv.FormatFloat(th.Spacing(baseSpacing, sensitivity), 'f', -1, 64))
	page.SetAttr(AttrFontScale, strconv.FormatFloat(th.FontScale(), 'f', -1, 64))
	return page
}

// HeaderNode builds the name, title and contact block. The photo is built
// separately with PhotoNode so families can place it.
func HeaderNode(h *Header) *Node {
	if h.Empty() {
		return nil
	}
	header := NewNode(KindHeader, "",
		TextNode(KindText, "name", h.FullName),
		TextNode(KindText, "job-title", h.JobTitle),
	)
	header.Append(ContactNode(h))
	header.SetAttr(AttrSectionID, h.SectionID)
	return header
}

// ContactNode lists the header's contact lines, or nil when there are none.
func ContactNode(h *Header) *Node {
	contacts := h.Contacts()
	if len(contacts) == 0 {
		return nil
	}
	node := NewNode(KindContact, "")
	for _, line := range contacts {
		node.Append(TextNode(KindText, "contact", line))
	}
	return node
}

// PhotoNode returns nil unless the plan kept a photo.
func PhotoNode(h *Header) *Node {
	if h == nil || h.Photo == "" {
		return nil
	}
	node := NewNode(KindPhoto, "")
	node.SetAttr(AttrSrc, h.Photo)
	node.SetAttr(AttrShape, string(h.PhotoShape))
	return node
}

// SectionNode builds a section with its heading and one node per item.
func SectionNode(section PlannedSection, entry EntryFunc) *Node {
	if entry == nil {
		entry = DefaultEntry
	}
	node := NewNode(KindSection, string(section.Type),
		TextNode(KindHeading, "", section.Title),
	)
	node.SetAttr(AttrSectionID, section.ID)
	node.SetAttr(AttrSectionType, string(section.Type))
	node.SetAttr(AttrOrder, strconv.Itoa(section.Order))
	if section.Columns > 0 {
		node.SetAttr(AttrColumns, strconv.Itoa(section.Columns))
	}
	for _, item := range section.Items {
		node.Append(entry(section, item))
	}
	return node
}

// DefaultEntry renders an item according to its section type.
func DefaultEntry(section PlannedSection, item document.Item) *Node {
	switch section.Type {
	case document.SectionSkills:
		return SkillEntry(item)
	case document.SectionSummary:
		return SummaryEntry(item)
	default:
		return DetailEntry(item, true)
	}
}

// DetailEntry renders a titled item (experience, education, projects and
// the like). withDate false leaves the date out so a family can place it.
func DetailEntry(item document.Item, withDate bool) *Node {
	entry := NewNode(KindEntry, "",
		TextNode(KindText, "title", entryTitle(item)),
		TextNode(KindText, "subtitle", item.Company),
	)
	if withDate {
		entry.Append(TextNode(KindText, "date", item.Date))
	}
	entry.Append(
		TextNode(KindText, "location", item.Location),
		DescriptionNode(item.Description),
	)
	entry.SetAttr(AttrItemID, item.ID)
	return entry
}

// SkillEntry renders a skill as a tag, with the level when present.
func SkillEntry(item document.Item) *Node {
	label := entryTitle(item)
	if label == "" {
		return DetailEntry(item, true)
	}
	tag := TextNode(KindTag, "skill", label)
	if item.Level != "" {
		tag.SetAttr("level", item.Level)
	}
	entry := NewNode(KindEntry, "skill", tag, DescriptionNode(item.Description))
	entry.SetAttr(AttrItemID, item.ID)
	return entry
}

// SummaryEntry renders free text as paragraphs.
func SummaryEntry(item document.Item) *Node {
	entry := NewNode(KindEntry, "summary")
	for _, line := range item.Description {
		entry.Append(TextNode(KindText, "paragraph", line))
	}
	if len(entry.Children) == 0 {
		entry.Append(TextNode(KindText, "paragraph", entryTitle(item)))
	}
	return entry
}

// DescriptionNode renders bullets. A single line stays a paragraph; string
// and list descriptions therefore render the same way for the same text.
func DescriptionNode(desc document.Description) *Node {
	switch len(desc) {
	case 0:
		return nil
	case 1:
		return TextNode(KindText, "description", desc[0])
	}
	list := NewNode(KindList, "description")
	for _, line := range desc {
		list.Append(TextNode(KindBullet, "", line))
	}
	return list
}

func entryTitle(item document.Item) string {
	for _, value := range []string{item.Title, item.Name, item.FullName} {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
