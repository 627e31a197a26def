package fixture

import (
	"errors"
	"fmt"
)

// Loader errors
var (
	ErrNoSourceProvided     = errors.New("no source data provided to loader")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrUnsupportedVersion   = errors.New("unsupported fixture version")
	ErrFailedToParse        = errors.New("failed to parse fixture")
)

// Node errors
var (
	ErrNoRoot             = errors.New("fixture has no root component")
	ErrMissingType        = errors.New("missing component type")
	ErrInvalidKind        = errors.New("invalid component kind")
	ErrUnexpectedChildren = errors.New("children on a non-container component")
)

// formatNodeError wraps a node error with the path of the node in the document
func formatNodeError(baseErr error, path string) error {
	return fmt.Errorf("%s: %w", path, baseErr)
}
