package fixture

import (
	"bytes"
	"encoding/json"

	"github.com/atlanticdynamic/uitree/internal/component"
)

// jsonLoader implements the Loader interface for JSON files
type jsonLoader struct {
	source []byte
}

// NewJSONLoader creates a new JSON fixture loader
func NewJSONLoader(source []byte) *jsonLoader {
	return &jsonLoader{source: source}
}

func (l *jsonLoader) LoadDocument() (*Document, error) {
	return load(l.source, func(src []byte, doc *Document) error {
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	})
}

func (l *jsonLoader) Load() (component.Component, error) {
	return build(l.LoadDocument())
}
