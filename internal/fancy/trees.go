package fancy

import (
	"strings"

	"github.com/atlanticdynamic/uitree/internal/prettyprint"
	"github.com/charmbracelet/lipgloss/tree"
)

// TreeDecorator colors the glyphs and labels written by a prettyprint.Printer.
// Labels of hidden or disabled components are muted.
type TreeDecorator struct{}

// Glyph implements prettyprint.Decorator
func (TreeDecorator) Glyph(glyph string) string {
	return BranchText(glyph)
}

// Label implements prettyprint.Decorator
func (TreeDecorator) Label(label string) string {
	name, tokens, found := strings.Cut(label, "[")
	if !found {
		return ComponentText(label)
	}
	tokens = "[" + tokens
	if strings.Contains(tokens, "INVIS") || strings.Contains(tokens, "DISABLED") {
		return MutedStyle.Render(label)
	}
	return ComponentText(name) + InfoText(tokens)
}

// Printer returns a prettyprint.Printer that colors its output
func Printer(glyphs prettyprint.Glyphs) prettyprint.Printer {
	return prettyprint.Printer{Glyphs: glyphs, Decorate: TreeDecorator{}}
}

// Tree returns a new lipgloss tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// ComponentTree converts a formatted component tree into a rounded lipgloss
// tree. Unlike prettyprint output, the root is drawn without a branch glyph.
func ComponentTree(src *prettyprint.Tree) *tree.Tree {
	t := Tree()
	t.Root(RootStyle.Render(src.Label))
	for _, child := range src.Children {
		t.Child(componentBranch(child))
	}
	return t
}

func componentBranch(src *prettyprint.Tree) any {
	label := TreeDecorator{}.Label(src.Label)
	if len(src.Children) == 0 {
		return label
	}
	branch := tree.New().Root(label)
	for _, child := range src.Children {
		branch.Child(componentBranch(child))
	}
	return branch
}
