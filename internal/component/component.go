// Package component defines the capabilities a UI component exposes to the
// pretty printer. Capabilities are independent interfaces that are checked with
// type assertions, so a node may be a container, a value holder, a text
// display, or a plain component.
package component

// Component is the set of attributes every node in a hierarchy exposes.
type Component interface {
	// ID returns the component identifier and whether one is set.
	ID() (string, bool)
	Visible() bool
	Enabled() bool
	// StyleName returns the whitespace separated style classes, or "".
	StyleName() string
	// Caption returns the caption and whether one is set. A set caption may be empty.
	Caption() (string, bool)
}

// Container is a component that holds an ordered list of child components.
type Container interface {
	Component
	Children() []Component
}

// ValueHolder is a component with a current value and a read-only flag.
type ValueHolder interface {
	Component
	ReadOnly() bool
	Value() any
}

// TextDisplay is a component that displays a text value without being a ValueHolder.
type TextDisplay interface {
	Component
	Text() any
}

// TypeNamer lets a component report its type name instead of the Go type name.
type TypeNamer interface {
	TypeName() string
}
