package html

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var registerOnce sync.Once

func registerFilters() {
	registerOnce.Do(func() {
		if !pongo2.FilterExists("cssvalue") {
			_ = pongo2.RegisterFilter("cssvalue", filterCSSValue)
		}
	})
}

// cssValueReplacer drops characters that could end a declaration or the
// style attribute. Font stacks keep their quotes; the template escapes them.
var cssValueReplacer = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", "\\", "")

func filterCSSValue(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(cssValueReplacer.Replace(in.String()))), nil
}
