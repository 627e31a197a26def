package component

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid child path")
	ErrNoSuchChild = errors.New("no such child")
)

// ParsePath parses a slash separated list of child indexes such as "0/2/1".
// The empty string and "/" address the root.
func ParsePath(path string) ([]int, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}

	parts := strings.Split(path, "/")
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}

// Descendant follows indexes from root through container children.
func Descendant(root Component, indexes []int) (Component, error) {
	c := root
	for depth, i := range indexes {
		container, ok := c.(Container)
		if !ok {
			return nil, fmt.Errorf("%w: level %d is not a container", ErrNoSuchChild, depth)
		}
		children := container.Children()
		if i >= len(children) {
			return nil, fmt.Errorf("%w: index %d at level %d, %d children", ErrNoSuchChild, i, depth, len(children))
		}
		c = children[i]
	}
	return c, nil
}
