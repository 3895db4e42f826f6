package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a stored document. JSON is tried first, then YAML (a JSON
// document is valid YAML, but the JSON decoder reports better errors).
func Parse(data []byte) (Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Document{}, fmt.Errorf("document: empty payload")
	}
	var doc Document
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return doc, nil
	}
	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("document: decode: %w", err)
	}
	return doc, nil
}

// RawItem is an item record as stored by editors: arbitrary keys, arbitrary
// scalar or list values.
type RawItem map[string]any

// itemSynonyms lists, per canonical field, the raw keys that may carry it in
// precedence order. Keys are compared after lowercasing and dropping "_" and
// "-" so startDate, start_date and start-date all match.
var itemSynonyms = []struct {
	keys []string
	set  func(*Item, string)
}{
	{[]string{"id", "key", "uuid"}, func(it *Item, v string) { it.ID = v }},
	{[]string{"fullname", "displayname"}, func(it *Item, v string) { it.FullName = v }},
	{[]string{"firstname", "givenname"}, func(it *Item, v string) { it.FirstName = v }},
	{[]string{"lastname", "surname", "familyname"}, func(it *Item, v string) { it.LastName = v }},
	{[]string{"title", "degree"}, func(it *Item, v string) { it.Title = v }},
	{[]string{"subtitle"}, func(it *Item, v string) { it.Subtitle = v }},
	{[]string{"position", "role", "jobtitle"}, func(it *Item, v string) { it.Position = v }},
	{[]string{"company", "employer", "organization", "organisation", "institution", "school", "university", "issuer"}, func(it *Item, v string) { it.Company = v }},
	{[]string{"location", "city", "address"}, func(it *Item, v string) { it.Location = v }},
	{[]string{"date", "period", "duration", "year"}, func(it *Item, v string) { it.Date = v }},
	{[]string{"startdate", "start", "from"}, func(it *Item, v string) { it.StartDate = v }},
	{[]string{"enddate", "end", "to"}, func(it *Item, v string) { it.EndDate = v }},
	{[]string{"name", "skill", "label", "language"}, func(it *Item, v string) { it.Name = v }},
	{[]string{"level", "proficiency", "rating"}, func(it *Item, v string) { it.Level = v }},
	{[]string{"email", "mail"}, func(it *Item, v string) { it.Email = v }},
	{[]string{"phone", "telephone", "mobile"}, func(it *Item, v string) { it.Phone = v }},
	{[]string{"website", "url", "link", "portfolio", "linkedin"}, func(it *Item, v string) { it.Website = v }},
	{[]string{"photo", "photourl", "avatar", "image", "picture"}, func(it *Item, v string) { it.Photo = v }},
}

var descriptionKeys = []string{
	"description", "summary", "content", "text", "details",
	"bullets", "highlights", "responsibilities",
}

// ItemFromRaw maps a loosely-typed record onto the canonical Item fields.
// Unknown keys are dropped and non-string values are stringified, so the
// conversion never fails.
func ItemFromRaw(raw RawItem) Item {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		norm := normalizeKey(key)
		if norm == "" {
			continue
		}
		if _, exists := fields[norm]; exists && stringify(value) == "" {
			continue
		}
		fields[norm] = value
	}

	var item Item
	for _, synonym := range itemSynonyms {
		for _, key := range synonym.keys {
			if value := stringify(fields[key]); value != "" {
				synonym.set(&item, value)
				break
			}
		}
	}

	for _, key := range descriptionKeys {
		if desc := descriptionFromAny(fields[key]); len(desc) > 0 {
			item.Description = desc
			break
		}
	}
	if item.Description == nil {
		item.Description = Description{}
	}

	if item.EndDate == "" && truthy(fields["current"]) && item.StartDate != "" {
		item.EndDate = "Present"
	}
	return item
}

// UnmarshalJSON decodes stored item shapes, resolving legacy field names.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = ItemFromRaw(raw)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML fixtures and catalogs.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*it = ItemFromRaw(raw)
	return nil
}

type sectionWire struct {
	ID        string      `json:"id" yaml:"id"`
	Type      SectionType `json:"type" yaml:"type"`
	Title     string      `json:"title" yaml:"title"`
	IsVisible *bool       `json:"isVisible" yaml:"isVisible"`
	Visible   *bool       `json:"visible" yaml:"visible"`
	Items     []Item      `json:"items" yaml:"items"`
	Columns   int         `json:"columns" yaml:"columns"`
}

func (w sectionWire) section() Section {
	visible := true
	switch {
	case w.IsVisible != nil:
		visible = *w.IsVisible
	case w.Visible != nil:
		visible = *w.Visible
	}
	if w.Type == "" {
		w.Type = SectionCustom
	}
	return Section{
		ID:        w.ID,
		Type:      w.Type,
		Title:     w.Title,
		IsVisible: visible,
		Items:     w.Items,
		Columns:   w.Columns,
	}
}

// UnmarshalJSON treats a missing visibility flag as visible.
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = wire.section()
	return nil
}

// UnmarshalYAML treats a missing visibility flag as visible.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	var wire sectionWire
	if err := value.Decode(&wire); err != nil {
		return err
	}
	*s = wire.section()
	return nil
}

var metadataSynonyms = []struct {
	keys []string
	set  func(*Metadata, any)
}{
	{[]string{"fontfamily", "font"}, func(m *Metadata, v any) { m.FontFamily = stringify(v) }},
	{[]string{"accentcolor", "color", "themecolor", "primarycolor"}, func(m *Metadata, v any) { m.AccentColor = stringify(v) }},
	{[]string{"lineheight"}, func(m *Metadata, v any) { m.LineHeight = floatFromAny(v) }},
	{[]string{"jobtitle", "headline"}, func(m *Metadata, v any) { m.JobTitle = stringify(v) }},
	{[]string{"density", "spacing"}, func(m *Metadata, v any) { m.Density = stringify(v) }},
	{[]string{"photomode", "photovisibility"}, func(m *Metadata, v any) { m.PhotoMode = stringify(v) }},
	{[]string{"photoshape"}, func(m *Metadata, v any) { m.PhotoShape = stringify(v) }},
}

// MetadataFromRaw maps a loosely-typed metadata record onto Metadata.
func MetadataFromRaw(raw map[string]any) Metadata {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		if norm := normalizeKey(key); norm != "" {
			fields[norm] = value
		}
	}
	var meta Metadata
	for _, synonym := range metadataSynonyms {
		for _, key := range synonym.keys {
			if value, ok := fields[key]; ok && stringify(value) != "" {
				synonym.set(&meta, value)
				break
			}
		}
	}
	return meta
}

// UnmarshalJSON accepts string or numeric line heights and legacy key names.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = MetadataFromRaw(raw)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (m *Metadata) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*m = MetadataFromRaw(raw)
	return nil
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, 0, len(v))
		for _, entry := range v {
			if s := stringify(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		parts := make([]string, 0, len(v))
		for _, entry := range v {
			if s := strings.TrimSpace(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

func descriptionFromAny(value any) Description {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make(Description, 0, len(v))
		for _, entry := range v {
			if s := stringify(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make(Description, 0, len(v))
		for _, entry := range v {
			if s := strings.TrimSpace(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := stringify(v); s != "" {
			return Description{s}
		}
		return Description{}
	}
}

func floatFromAny(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}
