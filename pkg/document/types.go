package document

import (
	"encoding/json"
	"strings"
)

// SectionType is the closed set of section kinds a résumé can hold.
type SectionType string

const (
	SectionPersonal       SectionType = "personal"
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionAwards         SectionType = "awards"
	SectionAchievements   SectionType = "achievements"
	SectionCustom         SectionType = "custom"
)

// SectionTypes lists every section type in its canonical order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionPersonal,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionAwards,
		SectionAchievements,
		SectionCustom,
	}
}

// DefaultStructure is the section set created for a new document when no
// template structure is supplied.
func DefaultStructure() []SectionType {
	return []SectionType{
		SectionPersonal,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
	}
}

var sectionLabels = map[SectionType]string{
	SectionPersonal:       "Personal Information",
	SectionSummary:        "Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionSkills:         "Skills",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionAwards:         "Awards",
	SectionAchievements:   "Achievements",
	SectionCustom:         "Additional Information",
}

// sectionAliases maps labels used by older editors onto the closed set.
var sectionAliases = map[string]SectionType{
	"personalinfo":    SectionPersonal,
	"personal_info":   SectionPersonal,
	"contact":         SectionPersonal,
	"header":          SectionPersonal,
	"profile":         SectionSummary,
	"about":           SectionSummary,
	"objective":       SectionSummary,
	"work":            SectionExperience,
	"employment":      SectionExperience,
	"workexperience":  SectionExperience,
	"work_experience": SectionExperience,
	"schooling":       SectionEducation,
	"skill":           SectionSkills,
	"project":         SectionProjects,
	"certification":   SectionCertifications,
	"certificates":    SectionCertifications,
	"award":           SectionAwards,
	"honors":          SectionAwards,
	"achievement":     SectionAchievements,
}

// ParseSectionType maps a raw type string onto the closed enumeration. Unknown
// values become SectionCustom so decoding never fails on a stored document.
func ParseSectionType(raw string) SectionType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return SectionCustom
	}
	candidate := SectionType(key)
	if candidate.Valid() {
		return candidate
	}
	if alias, ok := sectionAliases[key]; ok {
		return alias
	}
	return SectionCustom
}

// Valid reports whether t belongs to the closed enumeration.
func (t SectionType) Valid() bool {
	_, ok := sectionLabels[t]
	return ok
}

// Label returns the default display title for the section type.
func (t SectionType) Label() string {
	if label, ok := sectionLabels[t]; ok {
		return label
	}
	return sectionLabels[SectionCustom]
}

func (t SectionType) String() string {
	return string(t)
}

// UnmarshalText lets stored documents carry legacy type labels.
func (t *SectionType) UnmarshalText(data []byte) error {
	*t = ParseSectionType(string(data))
	return nil
}

// IsHeader reports whether sections of this type are rendered as header
// content rather than as body sections.
func (t SectionType) IsHeader() bool {
	return t == SectionPersonal || t == SectionSummary
}

// Description holds multi-line item content as ordered bullets. Stored
// documents may carry either a single string or a list of strings; a string
// is wrapped as a single bullet.
type Description []string

// Text joins the bullets with newlines.
func (d Description) Text() string {
	return strings.Join(d, "\n")
}

// Empty reports whether the description carries no visible text.
func (d Description) Empty() bool {
	for _, line := range d {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// UnmarshalJSON accepts a string, a list of strings, or null.
func (d *Description) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = descriptionFromAny(raw)
	return nil
}

// Item is one entry within a section. After normalization every field is
// populated (possibly with an empty string) and synonyms agree: Position
// equals Title and Company equals Subtitle.
type Item struct {
	ID          string      `json:"id" yaml:"id"`
	FullName    string      `json:"fullName" yaml:"fullName"`
	FirstName   string      `json:"firstName" yaml:"firstName"`
	LastName    string      `json:"lastName" yaml:"lastName"`
	Title       string      `json:"title" yaml:"title"`
	Subtitle    string      `json:"subtitle" yaml:"subtitle"`
	Position    string      `json:"position" yaml:"position"`
	Company     string      `json:"company" yaml:"company"`
	Description Description `json:"description" yaml:"description"`
	Location    string      `json:"location" yaml:"location"`
	Date        string      `json:"date" yaml:"date"`
	StartDate   string      `json:"startDate" yaml:"startDate"`
	EndDate     string      `json:"endDate" yaml:"endDate"`
	Name        string      `json:"name" yaml:"name"`
	Level       string      `json:"level" yaml:"level"`
	Email       string      `json:"email" yaml:"email"`
	Phone       string      `json:"phone" yaml:"phone"`
	Website     string      `json:"website" yaml:"website"`
	Photo       string      `json:"photo" yaml:"photo"`
}

// Section is a typed block of items.
type Section struct {
	ID        string      `json:"id" yaml:"id"`
	Type      SectionType `json:"type" yaml:"type"`
	Title     string      `json:"title" yaml:"title"`
	IsVisible bool        `json:"isVisible" yaml:"isVisible"`
	Items     []Item      `json:"items" yaml:"items"`
	// Columns is a layout hint (e.g. skills grids). Zero leaves the choice to
	// the renderer.
	Columns int `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Metadata carries document-wide theme overrides. Empty values defer to the
// template defaults.
type Metadata struct {
	FontFamily  string  `json:"fontFamily" yaml:"fontFamily"`
	AccentColor string  `json:"accentColor" yaml:"accentColor"`
	LineHeight  float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	JobTitle    string  `json:"jobTitle" yaml:"jobTitle"`
	Density     string  `json:"density,omitempty" yaml:"density,omitempty"`
	PhotoMode   string  `json:"photoMode,omitempty" yaml:"photoMode,omitempty"`
	PhotoShape  string  `json:"photoShape,omitempty" yaml:"photoShape,omitempty"`
}

// Document is the top-level résumé aggregate.
type Document struct {
	ID         string    `json:"id" yaml:"id"`
	TemplateID string    `json:"templateId" yaml:"templateId"`
	IsPremium  bool      `json:"isPremium" yaml:"isPremium"`
	Sections   []Section `json:"sections" yaml:"sections"`
	Metadata   Metadata  `json:"metadata" yaml:"metadata"`
}

// Section returns the first section with the supplied id.
func (d Document) Section(id string) (Section, bool) {
	for _, section := range d.Sections {
		if section.ID == id {
			return section.Clone(), true
		}
	}
	return Section{}, false
}

// SectionsOfType returns the sections of the given type in document order.
func (d Document) SectionsOfType(sectionType SectionType) []Section {
	var out []Section
	for _, section := range d.Sections {
		if section.Type == sectionType {
			out = append(out, section.Clone())
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	if d.Sections != nil {
		out.Sections = make([]Section, len(d.Sections))
		for i, section := range d.Sections {
			out.Sections[i] = section.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	if it.Description != nil {
		out.Description = append(Description{}, it.Description...)
	}
	return out
}
