package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// NodeKind classifies layout tree nodes.
type NodeKind string

const (
	KindPage    NodeKind = "page"
	KindRegion  NodeKind = "region"
	KindHeader  NodeKind = "header"
	KindPhoto   NodeKind = "photo"
	KindContact NodeKind = "contact"
	KindSection NodeKind = "section"
	KindHeading NodeKind = "heading"
	KindEntry   NodeKind = "entry"
	KindText    NodeKind = "text"
	KindList    NodeKind = "list"
	KindBullet  NodeKind = "bullet"
	KindTag     NodeKind = "tag"
)

// Attribute keys set by the shared builders.
const (
	AttrSectionID   = "section-id"
	AttrSectionType = "section-type"
	AttrItemID      = "item-id"
	AttrOrder       = "order"
	AttrColumns     = "columns"
	AttrSrc         = "src"
	AttrShape       = "shape"
	AttrSide        = "side"
	AttrMarker      = "marker"
	AttrSpacing     = "spacing"
	AttrFontScale   = "font-scale"
)

// Node is one element of the layout tree. Role refines Kind (a text node
// with role "title", a region with role "sidebar").
type Node struct {
	Kind     NodeKind
	Role     string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

// NewNode builds a node with the given children, skipping nil ones.
func NewNode(kind NodeKind, role string, children ...*Node) *Node {
	node := &Node{Kind: kind, Role: role}
	node.Append(children...)
	return node
}

// TextNode builds a text-carrying leaf. Empty text yields nil so callers can
// append optional fields without checking them.
func TextNode(kind NodeKind, role, text string) *Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Node{Kind: kind, Role: role, Text: text}
}

// Append adds non-nil children.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Prepend inserts non-nil children before the existing ones.
func (n *Node) Prepend(children ...*Node) *Node {
	head := make([]*Node, 0, len(children)+len(n.Children))
	for _, child := range children {
		if child != nil {
			head = append(head, child)
		}
	}
	n.Children = append(head, n.Children...)
	return n
}

// SetAttr sets an attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns an attribute value or "".
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Output is the rendered layout tree handed to the editor canvas, preview
// surfaces and export serializers.
type Output struct {
	TemplateID string
	Family     Family
	Theme      theme.Resolved
	Root       *Node
}

// Find returns every node of kind in tree order.
func (o *Output) Find(kind NodeKind) []*Node {
	var out []*Node
	if o == nil {
		return out
	}
	o.Root.Walk(func(n *Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Sections returns section nodes in logical reading order. Families that
// split sections across regions still number them by the plan order, so this
// order matches the section order the caller asked for.
func (o *Output) Sections() []*Node {
	sections := o.Find(KindSection)
	sort.SliceStable(sections, func(i, j int) bool {
		return orderOf(sections[i]) < orderOf(sections[j])
	})
	return sections
}

// SectionTypes returns the types of Sections, in the same order.
func (o *Output) SectionTypes() []document.SectionType {
	sections := o.Sections()
	out := make([]document.SectionType, 0, len(sections))
	for _, section := range sections {
		out = append(out, document.SectionType(section.Attr(AttrSectionType)))
	}
	return out
}

// Text concatenates every text-bearing node, one per line, in tree order.
func (o *Output) Text() string {
	var b strings.Builder
	if o == nil {
		return ""
	}
	o.Root.Walk(func(n *Node) bool {
		if n.Text != "" {
			b.WriteString(n.Text)
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}

func orderOf(n *Node) int {
	value, err := strconv.Atoi(n.Attr(AttrOrder))
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return value
}
