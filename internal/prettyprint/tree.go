package prettyprint

import (
	"strings"

	"github.com/atlanticdynamic/uitree/internal/component"
)

// Tree is a formatted snapshot of a component hierarchy: one label per node and
// the children in the order the containers reported them.
type Tree struct {
	Label    string
	Children []*Tree
}

// NewTree walks c and its descendants. Only Container components contribute
// children. The hierarchy must be acyclic; a cycle recurses without bound.
func NewTree(c component.Component) *Tree {
	t := &Tree{Label: PrettyString(c)}
	container, ok := c.(component.Container)
	if !ok {
		return t
	}
	children := container.Children()
	t.Children = make([]*Tree, 0, len(children))
	for _, child := range children {
		t.Children = append(t.Children, NewTree(child))
	}
	return t
}

// Size returns the number of nodes in the tree, which is also the number of
// lines Print produces.
func (t *Tree) Size() int {
	n := 1
	for _, child := range t.Children {
		n += child.Size()
	}
	return n
}

// Print renders the tree with the given glyphs, one newline-terminated line per node.
func (t *Tree) Print(glyphs Glyphs) string {
	return Printer{Glyphs: glyphs}.Render(t)
}

// Decorator restyles glyphs and labels as they are written, for example to add
// terminal colors. Line structure is unaffected.
type Decorator interface {
	Glyph(glyph string) string
	Label(label string) string
}

// Printer renders trees with a fixed glyph set and an optional Decorator.
type Printer struct {
	Glyphs   Glyphs
	Decorate Decorator
}

// Render renders t in depth-first pre-order. The root is drawn as a tail.
func (p Printer) Render(t *Tree) string {
	var sb strings.Builder
	p.print(&sb, t, "", true)
	return sb.String()
}

func (p Printer) print(sb *strings.Builder, t *Tree, prefix string, isTail bool) {
	branch := p.Glyphs.Mid
	childPrefix := prefix + p.Glyphs.Pipe + "   "
	if isTail {
		branch = p.Glyphs.Tail
		childPrefix = prefix + "    "
	}

	sb.WriteString(p.glyph(prefix))
	sb.WriteString(p.glyph(branch))
	sb.WriteString(p.label(t.Label))
	sb.WriteByte('\n')

	for i, child := range t.Children {
		p.print(sb, child, childPrefix, i == len(t.Children)-1)
	}
}

func (p Printer) glyph(s string) string {
	if p.Decorate == nil || s == "" {
		return s
	}
	return p.Decorate.Glyph(s)
}

func (p Printer) label(s string) string {
	if p.Decorate == nil {
		return s
	}
	return p.Decorate.Label(s)
}
