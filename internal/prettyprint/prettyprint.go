// Package prettyprint renders a component hierarchy as an indented text tree
// for test assertions and debugging:
//
//	└── Panel[#form]
//	    ├── TextField[caption='Name', value='']
//	    └── Button[caption='OK']
//
// Every node is summarized by PrettyString. Set SetUseASCII(true) on terminals
// that cannot display box-drawing characters.
package prettyprint

import "github.com/atlanticdynamic/uitree/internal/component"

// ToPrettyTree renders c and all of its descendants, one line per node. The
// glyph style is read once per call.
func ToPrettyTree(c component.Component) string {
	return NewTree(c).Print(DefaultGlyphs())
}

// ToPrettyString returns the label of c alone, without descendants.
func ToPrettyString(c component.Component) string {
	return PrettyString(c)
}
