package document

import (
	"fmt"

	"github.com/google/uuid"
)

// IDFunc generates identifiers for new sections and items.
type IDFunc func() string

// Option customises document construction.
type Option func(*config)

type config struct {
	idFunc    IDFunc
	structure []SectionType
	premium   bool
}

// WithIDFunc overrides the id generator (uuid.NewString by default).
func WithIDFunc(fn IDFunc) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.idFunc = fn
		}
	}
}

// WithStructure replaces the default section set, typically with a template
// descriptor's structure.
func WithStructure(structure []SectionType) Option {
	return func(cfg *config) {
		if len(structure) > 0 {
			cfg.structure = append([]SectionType(nil), structure...)
		}
	}
}

// WithPremium marks the document as using a premium template.
func WithPremium(premium bool) Option {
	return func(cfg *config) {
		cfg.premium = premium
	}
}

// New creates a document for templateID with one empty, visible section per
// entry of the structure (personal, summary, experience, education, skills
// unless overridden).
func New(templateID string, options ...Option) Document {
	cfg := config{
		idFunc:    uuid.NewString,
		structure: DefaultStructure(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	doc := Document{
		ID:         cfg.idFunc(),
		TemplateID: templateID,
		IsPremium:  cfg.premium,
		Sections:   make([]Section, 0, len(cfg.structure)),
	}
	for _, sectionType := range cfg.structure {
		doc.Sections = append(doc.Sections, newSection(sectionType, cfg.idFunc()))
	}
	return doc
}

// NewSection builds an empty visible section. An empty id is replaced with a
// generated one.
func NewSection(sectionType SectionType, id string) Section {
	if id == "" {
		id = uuid.NewString()
	}
	return newSection(sectionType, id)
}

func newSection(sectionType SectionType, id string) Section {
	if !sectionType.Valid() {
		sectionType = SectionCustom
	}
	return Section{
		ID:        id,
		Type:      sectionType,
		Title:     sectionType.Label(),
		IsVisible: true,
		Items:     []Item{},
	}
}

// NewItem builds an empty item with a generated id.
func NewItem() Item {
	return Item{ID: uuid.NewString(), Description: Description{}}
}

// AddSection appends a section. Sections without an id receive a generated
// one.
func (d Document) AddSection(section Section) (Document, error) {
	section = section.Clone()
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	if d.indexOfSection(section.ID) >= 0 {
		return d, fmt.Errorf("%w: section %q", ErrDuplicateID, section.ID)
	}
	if !section.Type.Valid() {
		section.Type = SectionCustom
	}
	if section.Items == nil {
		section.Items = []Item{}
	}
	out := d.Clone()
	out.Sections = append(out.Sections, section)
	return out, nil
}

// RemoveSection drops the section with the supplied id.
func (d Document) RemoveSection(id string) (Document, error) {
	idx := d.indexOfSection(id)
	if idx < 0 {
		return d, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	out := d.Clone()
	out.Sections = append(out.Sections[:idx], out.Sections[idx+1:]...)
	return out, nil
}

// MoveSection moves a section to the target index.
func (d Document) MoveSection(id string, index int) (Document, error) {
	idx := d.indexOfSection(id)
	if idx < 0 {
		return d, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	if index < 0 || index >= len(d.Sections) {
		return d, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	out := d.Clone()
	out.Sections = move(out.Sections, idx, index)
	return out, nil
}

// ReorderSections rearranges sections to match ids, which must name every
// section exactly once.
func (d Document) ReorderSections(ids []string) (Document, error) {
	if len(ids) != len(d.Sections) {
		return d, fmt.Errorf("%w: want %d ids, got %d", ErrInvalidOrder, len(d.Sections), len(ids))
	}
	out := d.Clone()
	reordered := make([]Section, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return d, fmt.Errorf("%w: %q listed twice", ErrInvalidOrder, id)
		}
		seen[id] = struct{}{}
		idx := out.indexOfSection(id)
		if idx < 0 {
			return d, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
		}
		reordered = append(reordered, out.Sections[idx])
	}
	out.Sections = reordered
	return out, nil
}

// RenameSection changes the display title without touching the type.
func (d Document) RenameSection(id, title string) (Document, error) {
	return d.updateSection(id, func(s *Section) error {
		s.Title = title
		return nil
	})
}

// SetSectionVisible sets the visibility flag of a section.
func (d Document) SetSectionVisible(id string, visible bool) (Document, error) {
	return d.updateSection(id, func(s *Section) error {
		s.IsVisible = visible
		return nil
	})
}

// ToggleSectionVisibility flips the visibility flag of a section.
func (d Document) ToggleSectionVisibility(id string) (Document, error) {
	return d.updateSection(id, func(s *Section) error {
		s.IsVisible = !s.IsVisible
		return nil
	})
}

// SetSectionColumns updates the column layout hint.
func (d Document) SetSectionColumns(id string, columns int) (Document, error) {
	return d.updateSection(id, func(s *Section) error {
		if columns < 0 {
			columns = 0
		}
		s.Columns = columns
		return nil
	})
}

// AddItem appends an item to a section.
func (d Document) AddItem(sectionID string, item Item) (Document, error) {
	return d.updateSection(sectionID, func(s *Section) error {
		item = item.Clone()
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if indexOfItem(s.Items, item.ID) >= 0 {
			return fmt.Errorf("%w: item %q", ErrDuplicateID, item.ID)
		}
		s.Items = append(s.Items, item)
		return nil
	})
}

// RemoveItem drops an item from a section.
func (d Document) RemoveItem(sectionID, itemID string) (Document, error) {
	return d.updateSection(sectionID, func(s *Section) error {
		idx := indexOfItem(s.Items, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
		}
		s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
		return nil
	})
}

// UpdateItem replaces the item sharing item.ID.
func (d Document) UpdateItem(sectionID string, item Item) (Document, error) {
	return d.updateSection(sectionID, func(s *Section) error {
		idx := indexOfItem(s.Items, item.ID)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrItemNotFound, item.ID)
		}
		s.Items[idx] = item.Clone()
		return nil
	})
}

// MoveItem moves an item within its section.
func (d Document) MoveItem(sectionID, itemID string, index int) (Document, error) {
	return d.updateSection(sectionID, func(s *Section) error {
		idx := indexOfItem(s.Items, itemID)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
		}
		if index < 0 || index >= len(s.Items) {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
		}
		s.Items = move(s.Items, idx, index)
		return nil
	})
}

// ChangeTemplate switches the template reference.
func (d Document) ChangeTemplate(templateID string, premium bool) Document {
	out := d.Clone()
	out.TemplateID = templateID
	out.IsPremium = premium
	return out
}

// UpdateMetadata applies fn to a copy of the metadata.
func (d Document) UpdateMetadata(fn func(*Metadata)) Document {
	out := d.Clone()
	if fn != nil {
		fn(&out.Metadata)
	}
	return out
}

// Reset keeps the document identity and template but replaces the content
// with a fresh default section set and empty metadata.
func (d Document) Reset(options ...Option) Document {
	fresh := New(d.TemplateID, append([]Option{WithPremium(d.IsPremium)}, options...)...)
	fresh.ID = d.ID
	return fresh
}

func (d Document) updateSection(id string, fn func(*Section) error) (Document, error) {
	idx := d.indexOfSection(id)
	if idx < 0 {
		return d, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	out := d.Clone()
	if err := fn(&out.Sections[idx]); err != nil {
		return d, err
	}
	return out, nil
}

func (d Document) indexOfSection(id string) int {
	for i, section := range d.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func indexOfItem(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func move[T any](list []T, from, to int) []T {
	if from == to {
		return list
	}
	value := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list[:to], append([]T{value}, list[to:]...)...)
	return list
}
