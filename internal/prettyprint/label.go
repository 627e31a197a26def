package prettyprint

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atlanticdynamic/uitree/internal/component"
)

// PrettyString returns the single-line label of c, for example
// `TextField[#x, INVIS, RO, DISABLED, .foo .bar, value='hi']`.
func PrettyString(c component.Component) string {
	var tokens []string
	if id, ok := c.ID(); ok {
		tokens = append(tokens, "#"+id)
	}
	if !c.Visible() {
		tokens = append(tokens, "INVIS")
	}
	holder, isHolder := c.(component.ValueHolder)
	if isHolder && holder.ReadOnly() {
		tokens = append(tokens, "RO")
	}
	if !c.Enabled() {
		tokens = append(tokens, "DISABLED")
	}
	if style := styleToken(c.StyleName()); style != "" {
		tokens = append(tokens, style)
	}
	if caption, ok := c.Caption(); ok {
		tokens = append(tokens, "caption='"+caption+"'")
	}
	if isHolder {
		tokens = append(tokens, "value='"+displayValue(holder.Value())+"'")
	} else if text, ok := c.(component.TextDisplay); ok {
		tokens = append(tokens, "value='"+displayValue(text.Text())+"'")
	}

	return typeName(c) + "[" + strings.Join(tokens, ", ") + "]"
}

// styleToken turns "  foo  bar " into ".foo .bar"; a blank style yields "".
func styleToken(style string) string {
	classes := strings.Fields(style)
	for i, class := range classes {
		classes[i] = "." + class
	}
	return strings.Join(classes, " ")
}

func displayValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

// typeName prefers a declared type name, then the simple Go type name, and
// falls back to the full type string for unnamed types.
func typeName(c component.Component) string {
	if namer, ok := c.(component.TypeNamer); ok {
		if name := namer.TypeName(); name != "" {
			return name
		}
	}

	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer && t.Name() == "" && t.Elem().Name() != "" {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
