package fixture

import (
	"bytes"

	"github.com/atlanticdynamic/uitree/internal/component"
	"gopkg.in/yaml.v3"
)

// yamlLoader implements the Loader interface for YAML files
type yamlLoader struct {
	source []byte
}

// NewYamlLoader creates a new YAML fixture loader
func NewYamlLoader(source []byte) *yamlLoader {
	return &yamlLoader{source: source}
}

func (l *yamlLoader) LoadDocument() (*Document, error) {
	return load(l.source, func(src []byte, doc *Document) error {
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		return dec.Decode(doc)
	})
}

func (l *yamlLoader) Load() (component.Component, error) {
	return build(l.LoadDocument())
}
