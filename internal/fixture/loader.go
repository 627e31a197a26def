// Package fixture loads component hierarchies from TOML, YAML or JSON files so
// they can be rendered without a running UI.
package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/uitree/internal/component"
)

type LoaderFunc func([]byte) Loader

// Loader handles loading a component hierarchy from a source
type Loader interface {
	// LoadDocument parses the source into its document form
	LoadDocument() (*Document, error)
	// Load parses and validates the source and returns the root component
	Load() (component.Component, error)
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// LoaderFuncForPath returns the loader constructor for the file extension of path
func LoaderFuncForPath(filePath string) (LoaderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".toml":
		return func(b []byte) Loader { return NewTomlLoader(b) }, nil
	case ".yaml", ".yml":
		return func(b []byte) Loader { return NewYamlLoader(b) }, nil
	case ".json":
		return func(b []byte) Loader { return NewJSONLoader(b) }, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}

// NewLoaderFromFilePath creates a new Loader from a file path
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	lodFunc, err := LoaderFuncForPath(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file '%s': %w", filePath, err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// LoadFile loads and validates the component hierarchy in filePath
func LoadFile(filePath string) (component.Component, error) {
	l, err := NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, err
	}
	root, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return root, nil
}

// load decodes source with decode and builds the result
func load(source []byte, decode func([]byte, *Document) error) (*Document, error) {
	if len(source) == 0 {
		return nil, ErrNoSourceProvided
	}
	doc := &Document{}
	if err := decode(source, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParse, err)
	}
	return doc, nil
}

func build(doc *Document, err error) (component.Component, error) {
	if err != nil {
		return nil, err
	}
	return doc.Build()
}
