package html

import (
	gohtml "html"
	"sort"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/render"
)

// textElements maps text roles to the element they render as. Roles not
// listed render as a span.
var textElements = map[string]string{
	"name":        "h1",
	"job-title":   "p",
	"paragraph":   "p",
	"description": "p",
	"date":        "time",
	"rail-date":   "time",
}

// writeNode serializes a node tree to markup. All text and attribute values
// are escaped here; sanitizeBody is applied to the result afterwards.
func writeNode(b *strings.Builder, n *render.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case render.KindPage:
		writeChildren(b, n)
	case render.KindRegion:
		element := "div"
		switch n.Role {
		case "main":
			element = "main"
		case "sidebar":
			element = "aside"
		}
		open(b, element, "region region-"+n.Role, dataAttrs(n, render.AttrSide))
		writeChildren(b, n)
		closeTag(b, element)
	case render.KindHeader:
		open(b, "header", "header", dataAttrs(n, render.AttrSectionID))
		writeChildren(b, n)
		closeTag(b, "header")
	case render.KindPhoto:
		b.WriteString(`<img class="photo photo-`)
		b.WriteString(gohtml.EscapeString(n.Attr(render.AttrShape)))
		b.WriteString(`" src="`)
		b.WriteString(gohtml.EscapeString(n.Attr(render.AttrSrc)))
		b.WriteString(`" alt="Photo" loading="lazy">`)
	case render.KindContact:
		open(b, "ul", "contact", nil)
		for _, child := range n.Children {
			open(b, "li", "contact-line", nil)
			b.WriteString(gohtml.EscapeString(child.Text))
			closeTag(b, "li")
		}
		closeTag(b, "ul")
	case render.KindSection:
		open(b, "section", "section section-"+n.Role,
			dataAttrs(n, render.AttrSectionID, render.AttrSectionType, render.AttrOrder, render.AttrColumns, render.AttrMarker))
		writeChildren(b, n)
		closeTag(b, "section")
	case render.KindHeading:
		open(b, "h2", "section-title", nil)
		b.WriteString(gohtml.EscapeString(n.Text))
		closeTag(b, "h2")
	case render.KindEntry:
		class := "entry"
		if n.Role != "" {
			class += " entry-" + n.Role
		}
		open(b, "article", class, dataAttrs(n, render.AttrItemID, render.AttrMarker))
		writeChildren(b, n)
		closeTag(b, "article")
	case render.KindList:
		open(b, "ul", "bullets", nil)
		writeChildren(b, n)
		closeTag(b, "ul")
	case render.KindBullet:
		open(b, "li", "bullet", nil)
		b.WriteString(gohtml.EscapeString(n.Text))
		closeTag(b, "li")
	case render.KindTag:
		open(b, "span", "tag", dataAttrs(n, "level"))
		b.WriteString(gohtml.EscapeString(n.Text))
		closeTag(b, "span")
	case render.KindText:
		element, ok := textElements[n.Role]
		if !ok {
			element = "span"
		}
		open(b, element, n.Role, nil)
		b.WriteString(gohtml.EscapeString(n.Text))
		closeTag(b, element)
	default:
		writeChildren(b, n)
	}
}

func writeChildren(b *strings.Builder, n *render.Node) {
	for _, child := range n.Children {
		writeNode(b, child)
	}
}

func open(b *strings.Builder, element, class string, data map[string]string) {
	b.WriteByte('<')
	b.WriteString(element)
	if class != "" {
		b.WriteString(` class="`)
		b.WriteString(gohtml.EscapeString(class))
		b.WriteByte('"')
	}
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(` data-`)
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(gohtml.EscapeString(data[key]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, element string) {
	b.WriteString("</")
	b.WriteString(element)
	b.WriteByte('>')
}

func dataAttrs(n *render.Node, keys ...string) map[string]string {
	var out map[string]string
	for _, key := range keys {
		value := n.Attr(key)
		if value == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(keys))
		}
		out[key] = value
	}
	return out
}
