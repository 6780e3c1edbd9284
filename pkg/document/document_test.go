package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	got, err := IO{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", got)
}

func TestReadMissingFile(t *testing.T) {
	_, err := IO{}.Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
}

func TestReadStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		d := IO{Stdin: strings.NewReader("from stdin")}
		got, err := d.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "from stdin", got)
	}
}

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	d := IO{Stdout: &buf}

	require.NoError(t, d.Write("", []string{"a", "", "b"}))
	assert.Equal(t, "a\n\nb\n", buf.String())
}

// swapStdio points the process stream at a temp file for the test.
func swapStdio(t *testing.T, stream **os.File, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdio")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	require.NoError(t, err)

	saved := *stream
	*stream = f
	t.Cleanup(func() {
		*stream = saved
		_ = f.Close()
	})
	return f
}

func TestZeroIOUsesProcessStreams(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		swapStdio(t, &os.Stdin, "piped\n")

		got, err := IO{}.Read("")
		require.NoError(t, err)
		assert.Equal(t, "piped\n", got)
	})

	t.Run("stdout", func(t *testing.T) {
		f := swapStdio(t, &os.Stdout, "")

		require.NoError(t, IO{}.Write(StdioPath, []string{"x", "y"}))

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Equal(t, "x\ny\n", string(data))
	})

	t.Run("only the unset stream is replaced", func(t *testing.T) {
		f := swapStdio(t, &os.Stdout, "")
		var buf bytes.Buffer

		require.NoError(t, IO{Stdout: &buf}.Write("", []string{"kept"}))
		assert.Equal(t, "kept\n", buf.String())

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, IO{}.Write(path, []string{"a", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(data))
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	err := IO{}.Write(path, []string{"a"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputWrite))
}
