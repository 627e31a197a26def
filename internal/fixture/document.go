package fixture

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/uitree/internal/component"
)

// CurrentVersion is the only fixture format version understood by the loaders
const CurrentVersion = "v1"

// Document is the on-disk form of a component hierarchy, shared by the TOML,
// YAML and JSON loaders.
type Document struct {
	Version string `toml:"version" yaml:"version" json:"version"`
	Root    *Node  `toml:"root"    yaml:"root"    json:"root"`
}

// Node describes one component. When Kind is empty it is inferred: nodes with
// children are containers, nodes with a value are fields, the rest are leaves.
type Node struct {
	Type     string  `toml:"type"     yaml:"type"     json:"type"`
	Kind     string  `toml:"kind"     yaml:"kind"     json:"kind"`
	ID       *string `toml:"id"       yaml:"id"       json:"id"`
	Caption  *string `toml:"caption"  yaml:"caption"  json:"caption"`
	Style    string  `toml:"style"    yaml:"style"    json:"style"`
	Hidden   bool    `toml:"hidden"   yaml:"hidden"   json:"hidden"`
	Disabled bool    `toml:"disabled" yaml:"disabled" json:"disabled"`
	ReadOnly bool    `toml:"readonly" yaml:"readonly" json:"readonly"`
	Value    any     `toml:"value"    yaml:"value"    json:"value"`
	Children []*Node `toml:"children" yaml:"children" json:"children"`
}

// Build validates the document and converts it into components. Every invalid
// node is reported, joined into one error.
func (d *Document) Build() (component.Component, error) {
	version := d.Version
	if version == "" {
		version = CurrentVersion
	}
	if version != CurrentVersion {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
	if d.Root == nil {
		return nil, ErrNoRoot
	}

	var errs []error
	root := d.Root.build("root", &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return root, nil
}

func (n *Node) kind() component.Kind {
	switch {
	case n.Kind != "":
		return component.Kind(n.Kind)
	case len(n.Children) > 0:
		return component.KindContainer
	case n.Value != nil:
		return component.KindField
	default:
		return component.KindLeaf
	}
}

func (n *Node) options() []component.Option {
	var opts []component.Option
	if n.ID != nil {
		opts = append(opts, component.WithID(*n.ID))
	}
	if n.Caption != nil {
		opts = append(opts, component.WithCaption(*n.Caption))
	}
	if n.Style != "" {
		opts = append(opts, component.WithStyle(n.Style))
	}
	if n.Hidden {
		opts = append(opts, component.Hidden())
	}
	if n.Disabled {
		opts = append(opts, component.Disabled())
	}
	return opts
}

// build converts n and its children, appending problems to errs. The returned
// component is only meaningful when errs stays empty.
func (n *Node) build(path string, errs *[]error) component.Component {
	if n == nil {
		*errs = append(*errs, formatNodeError(ErrMissingType, path))
		return nil
	}
	if n.Type == "" {
		*errs = append(*errs, formatNodeError(ErrMissingType, path))
	}

	kind := n.kind()
	if !kind.Valid() {
		*errs = append(*errs, formatNodeError(fmt.Errorf("%w: %q", ErrInvalidKind, n.Kind), path))
		return nil
	}

	opts := n.options()
	switch kind {
	case component.KindContainer:
		children := make([]component.Component, 0, len(n.Children))
		for i, child := range n.Children {
			children = append(children, child.build(fmt.Sprintf("%s.children[%d]", path, i), errs))
		}
		return component.NewContainer(n.Type, children, opts...)
	case component.KindField:
		n.checkLeaf(path, errs)
		return component.NewField(n.Type, n.Value, n.ReadOnly, opts...)
	case component.KindText:
		n.checkLeaf(path, errs)
		return component.NewText(n.Type, n.Value, opts...)
	default:
		n.checkLeaf(path, errs)
		return component.NewLeaf(n.Type, opts...)
	}
}

func (n *Node) checkLeaf(path string, errs *[]error) {
	if len(n.Children) > 0 {
		*errs = append(*errs, formatNodeError(ErrUnexpectedChildren, path))
	}
}
