package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/document"
)

// ErrMissingTranslator is passed to the missing handler when a locale is
// requested without a Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// SectionTitleKeyPrefix prefixes the translation key of default section
// headings, e.g. "sections.experience".
const SectionTitleKeyPrefix = "sections."

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler returns the string used when a key cannot be
// translated. args carries {"default": fallback} as its first element.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// SectionTitleKey returns the translation key for the default heading of
// sectionType.
func SectionTitleKey(sectionType document.SectionType) string {
	return SectionTitleKeyPrefix + string(sectionType)
}

// SectionTitle returns the heading drawn for section. Titles the author
// changed are kept verbatim; default titles are localized when the options
// carry a locale.
func (o Options) SectionTitle(section document.Section) string {
	title := strings.TrimSpace(section.Title)
	if title == "" {
		title = section.Type.Label()
	}
	if o.Locale == "" || title != section.Type.Label() {
		return title
	}
	return o.translate(SectionTitleKey(section.Type), title)
}

func (o Options) translate(key, fallback string) string {
	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	args := []any{map[string]any{"default": fallback}}
	if o.Translator == nil {
		return onMissing(o.Locale, key, args, ErrMissingTranslator)
	}
	msg, err := o.Translator.Translate(o.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(o.Locale, key, args, err)
	}
	return msg
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if len(args) > 0 {
		if values, ok := args[0].(map[string]any); ok {
			if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
