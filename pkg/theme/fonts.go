package theme

import "strings"

// DefaultFontKey is the engine-wide font when no layer names one.
const DefaultFontKey = "inter"

var fontStacks = map[string]string{
	"inter":        `"Inter", "Helvetica Neue", Arial, sans-serif`,
	"roboto":       `"Roboto", "Helvetica Neue", Arial, sans-serif`,
	"lato":         `"Lato", "Helvetica Neue", Arial, sans-serif`,
	"open-sans":    `"Open Sans", "Helvetica Neue", Arial, sans-serif`,
	"merriweather": `"Merriweather", Georgia, serif`,
	"georgia":      `Georgia, "Times New Roman", serif`,
	"playfair":     `"Playfair Display", Georgia, serif`,
	"source-serif": `"Source Serif Pro", Georgia, serif`,
	"fira-code":    `"Fira Code", "SFMono-Regular", Menlo, monospace`,
	"helvetica":    `"Helvetica Neue", Helvetica, Arial, sans-serif`,
	"times":        `"Times New Roman", Times, serif`,
}

// FontKeys returns the known logical font keys.
func FontKeys() []string {
	return []string{
		"inter", "roboto", "lato", "open-sans", "merriweather", "georgia",
		"playfair", "source-serif", "fira-code", "helvetica", "times",
	}
}

// FontStack maps a logical font key to a concrete CSS font stack. Keys are
// matched case-insensitively with spaces and underscores treated as hyphens.
// A value containing a comma is taken to be a stack already and returned as
// is. Unknown keys get the default stack.
func FontStack(key string) string {
	stack, _ := lookupFont(key)
	return stack
}

// KnownFont reports whether key maps to an entry of the font table.
func KnownFont(key string) bool {
	_, ok := lookupFont(key)
	return ok
}

func lookupFont(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if strings.Contains(key, ",") {
		return key, true
	}
	normalised := strings.ToLower(key)
	normalised = strings.NewReplacer(" ", "-", "_", "-").Replace(normalised)
	if stack, ok := fontStacks[normalised]; ok {
		return stack, true
	}
	return fontStacks[DefaultFontKey], false
}

func fontKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.Contains(key, ",") {
		return key
	}
	return strings.NewReplacer(" ", "-", "_", "-").Replace(strings.ToLower(key))
}
