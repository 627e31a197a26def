package fixture

import (
	"bytes"

	"github.com/atlanticdynamic/uitree/internal/component"
	"github.com/pelletier/go-toml/v2"
)

// tomlLoader implements the Loader interface for TOML files
//
// Children are written as arrays of tables:
//
//	[root]
//	type = "Panel"
//	id = "form"
//
//	[[root.children]]
//	type = "Button"
//	caption = "OK"
type tomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML fixture loader
func NewTomlLoader(source []byte) *tomlLoader {
	return &tomlLoader{source: source}
}

func (l *tomlLoader) LoadDocument() (*Document, error) {
	return load(l.source, func(src []byte, doc *Document) error {
		dec := toml.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	})
}

func (l *tomlLoader) Load() (component.Component, error) {
	return build(l.LoadDocument())
}
