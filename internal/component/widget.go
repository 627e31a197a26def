package component

// Kind selects which capabilities a Widget exposes.
type Kind string

const (
	KindContainer Kind = "container"
	KindField     Kind = "field"
	KindText      Kind = "text"
	KindLeaf      Kind = "leaf"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindContainer, KindField, KindText, KindLeaf:
		return true
	default:
		return false
	}
}

// WidgetBase holds the attributes shared by all widget kinds. It implements
// Component and TypeNamer.
type WidgetBase struct {
	Type     string
	Id       *string
	Label    *string
	Style    string
	Hidden   bool
	Disabled bool
}

func (w *WidgetBase) ID() (string, bool) {
	if w.Id == nil {
		return "", false
	}
	return *w.Id, true
}

func (w *WidgetBase) Visible() bool     { return !w.Hidden }
func (w *WidgetBase) Enabled() bool     { return !w.Disabled }
func (w *WidgetBase) StyleName() string { return w.Style }
func (w *WidgetBase) TypeName() string  { return w.Type }

func (w *WidgetBase) Caption() (string, bool) {
	if w.Label == nil {
		return "", false
	}
	return *w.Label, true
}

// Base returns the shared attributes so options can modify any widget kind.
func (w *WidgetBase) Base() *WidgetBase { return w }

// Panel is a container widget.
type Panel struct {
	WidgetBase
	Items []Component
}

func (p *Panel) Children() []Component { return p.Items }

// Add appends children and returns the panel.
func (p *Panel) Add(children ...Component) *Panel {
	p.Items = append(p.Items, children...)
	return p
}

// Field is a value holding widget.
type Field struct {
	WidgetBase
	Current  any
	Readonly bool
}

func (f *Field) ReadOnly() bool { return f.Readonly }
func (f *Field) Value() any     { return f.Current }

// Text is a plain text display widget.
type Text struct {
	WidgetBase
	Content any
}

func (t *Text) Text() any { return t.Content }

// Leaf is a widget with no value and no children.
type Leaf struct {
	WidgetBase
}

// based is satisfied by every widget kind through the embedded WidgetBase.
type based interface {
	Base() *WidgetBase
}

// Option configures the shared attributes of a widget.
type Option func(*WidgetBase)

// WithID sets the widget identifier.
func WithID(id string) Option {
	return func(w *WidgetBase) { w.Id = &id }
}

// WithCaption sets the widget caption.
func WithCaption(caption string) Option {
	return func(w *WidgetBase) { w.Label = &caption }
}

// WithStyle sets the whitespace separated style classes.
func WithStyle(style string) Option {
	return func(w *WidgetBase) { w.Style = style }
}

// Hidden marks the widget as not visible.
func Hidden() Option {
	return func(w *WidgetBase) { w.Hidden = true }
}

// Disabled marks the widget as not enabled.
func Disabled() Option {
	return func(w *WidgetBase) { w.Disabled = true }
}

func apply[T based](w T, opts []Option) T {
	for _, opt := range opts {
		opt(w.Base())
	}
	return w
}

// NewContainer creates a Panel with the given type name and children.
func NewContainer(typeName string, children []Component, opts ...Option) *Panel {
	return apply(&Panel{WidgetBase: WidgetBase{Type: typeName}, Items: children}, opts)
}

// NewField creates a value holding widget.
func NewField(typeName string, value any, readOnly bool, opts ...Option) *Field {
	return apply(&Field{WidgetBase: WidgetBase{Type: typeName}, Current: value, Readonly: readOnly}, opts)
}

// NewText creates a text display widget.
func NewText(typeName string, text any, opts ...Option) *Text {
	return apply(&Text{WidgetBase: WidgetBase{Type: typeName}, Content: text}, opts)
}

// NewLeaf creates a widget with only the base attributes.
func NewLeaf(typeName string, opts ...Option) *Leaf {
	return apply(&Leaf{WidgetBase: WidgetBase{Type: typeName}}, opts)
}
