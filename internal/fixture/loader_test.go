package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atlanticdynamic/uitree/internal/prettyprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginTree = "" +
	"└── VerticalLayout[#form]\n" +
	"    ├── TextField[#username, caption='Username', value='']\n" +
	"    ├── PasswordField[RO, caption='Password', value='secret']\n" +
	"    ├── HorizontalLayout[.buttons .right]\n" +
	"    │   ├── Button[caption='Login']\n" +
	"    │   └── Button[DISABLED, caption='Cancel']\n" +
	"    └── Label[INVIS, value='Invalid credentials']\n"

func TestLoadFile(t *testing.T) {
	for _, name := range []string{"login.toml", "login.yaml", "login.json"} {
		t.Run(name, func(t *testing.T) {
			root, err := LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, loginTree, prettyprint.NewTree(root).Print(prettyprint.UnicodeGlyphs))
		})
	}
}

func TestNewLoaderFromFilePath(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewLoaderFromFilePath("layout.xml")
		require.ErrorIs(t, err, ErrUnsupportedExtension)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoaderFromFilePath(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := NewLoaderFromFilePath(path)
		require.ErrorIs(t, err, ErrNoSourceProvided)
	})

	t.Run("extension is case insensitive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "LAYOUT.YML")
		require.NoError(t, os.WriteFile(path, []byte("root:\n  type: Button\n"), 0o644))

		l, err := NewLoaderFromFilePath(path)
		require.NoError(t, err)
		root, err := l.Load()
		require.NoError(t, err)
		assert.Equal(t, "Button[]", prettyprint.PrettyString(root))
	})
}

func TestNewLoaderFromReader(t *testing.T) {
	src := `{"root": {"type": "Panel", "children": [{"type": "Label", "kind": "text", "value": "Hi"}]}}`

	l, err := NewLoaderFromReader(strings.NewReader(src), func(b []byte) Loader { return NewJSONLoader(b) })
	require.NoError(t, err)
	root, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "└── Panel[]\n    └── Label[value='Hi']\n", prettyprint.ToPrettyTree(root))

	_, err = NewLoaderFromReader(strings.NewReader(""), func(b []byte) Loader { return NewJSONLoader(b) })
	require.ErrorIs(t, err, ErrNoSourceProvided)
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []error
	}{
		{
			name:     "unsupported version",
			source:   "version = \"v2\"\n[root]\ntype = \"Panel\"\n",
			expected: []error{ErrUnsupportedVersion},
		},
		{
			name:     "no root",
			source:   "version = \"v1\"\n",
			expected: []error{ErrNoRoot},
		},
		{
			name:     "unknown field",
			source:   "[root]\ntype = \"Panel\"\ncolour = \"red\"\n",
			expected: []error{ErrFailedToParse},
		},
		{
			name:     "malformed toml",
			source:   "[root\n",
			expected: []error{ErrFailedToParse},
		},
		{
			name: "every bad node is reported",
			source: `
[root]
type = "Panel"

[[root.children]]
caption = "no type"

[[root.children]]
type = "Button"
kind = "widget"

[[root.children]]
type = "Label"
kind = "text"

[[root.children.children]]
type = "Button"
`,
			expected: []error{ErrMissingType, ErrInvalidKind, ErrUnexpectedChildren},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := NewTomlLoader([]byte(tt.source)).Load()
			require.Error(t, err)
			assert.Nil(t, root)
			for _, want := range tt.expected {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestNodeErrorPaths(t *testing.T) {
	src := `
root:
  type: Panel
  children:
    - type: Panel
      children:
        - caption: missing type
`
	_, err := NewYamlLoader([]byte(src)).Load()
	require.ErrorIs(t, err, ErrMissingType)
	assert.Contains(t, err.Error(), "root.children[0].children[0]")
}

func TestKindInference(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "value makes a field",
			source:   `{"root": {"type": "Slider", "value": 5}}`,
			expected: "Slider[value='5']",
		},
		{
			name:     "nothing makes a leaf",
			source:   `{"root": {"type": "Image", "readonly": true}}`,
			expected: "Image[]",
		},
		{
			name:     "explicit empty container",
			source:   `{"root": {"type": "Panel", "kind": "container", "caption": ""}}`,
			expected: "Panel[caption='']",
		},
		{
			name:     "explicit field without value",
			source:   `{"root": {"type": "DatePicker", "kind": "field", "id": "due"}}`,
			expected: "DatePicker[#due, value='null']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := NewJSONLoader([]byte(tt.source)).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prettyprint.PrettyString(root))
		})
	}
}

func TestLoadDocument(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "login.toml"))
	require.NoError(t, err)

	doc, err := NewTomlLoader(data).LoadDocument()
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, doc.Version)
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Children, 4)
	assert.Equal(t, "HorizontalLayout", doc.Root.Children[2].Type)
	assert.Len(t, doc.Root.Children[2].Children, 2)
}
