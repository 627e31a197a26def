package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOutput(t *testing.T) {
	t.Run("standard streams", func(t *testing.T) {
		for _, spec := range []string{"", "stderr", "stdout"} {
			out, err := OpenOutput(spec)
			require.NoError(t, err, spec)
			assert.NoError(t, out.Close(), spec)
		}
	})

	t.Run("plain path creates directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "out.log")

		out, err := OpenOutput(path)
		require.NoError(t, err)
		_, err = out.Write([]byte("line\n"))
		require.NoError(t, err)
		require.NoError(t, out.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("appends to existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		require.NoError(t, os.WriteFile(path, []byte("first\n"), 0o644))

		out, err := OpenOutput("file://" + path)
		require.NoError(t, err)
		_, err = out.Write([]byte("second\n"))
		require.NoError(t, err)
		require.NoError(t, out.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(data))
	})

	t.Run("rejects other schemes", func(t *testing.T) {
		_, err := OpenOutput("http://example.com/log")
		assert.ErrorIs(t, err, ErrUnsupportedOutput)
	})

	t.Run("rejects bare words", func(t *testing.T) {
		_, err := OpenOutput("syslog")
		assert.ErrorIs(t, err, ErrUnsupportedOutput)
	})
}
