package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/rules.json", `{"a": "b"}`)
	assert.Equal(t, filepath.Join(dir, "nested", "rules.json"), path)
	AssertFileContent(t, path, `{"a": "b"}`)
	AssertNoFile(t, filepath.Join(dir, "other.json"))
}

func TestIsolate(t *testing.T) {
	t.Setenv("ARBITRATOR_REWRITE_MODE", "token")

	env := Isolate(t)

	assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
	assert.Equal(t, "false", os.Getenv("ARBITRATOR_LOG_FILE"))

	_, set := os.LookupEnv("ARBITRATOR_REWRITE_MODE")
	assert.False(t, set)

	path := env.File(t, "doc.txt", "line")
	require.FileExists(t, path)
	assert.Equal(t, "line", ReadFile(t, path))
}
