package genconfig

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/config"
	"github.com/arthur-debert/arbitrator/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output only", func(t *testing.T) {
		dir := t.TempDir()

		result, err := GenConfig(GenConfigOptions{Dir: dir})
		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "[rewrite]")
		assert.Contains(t, result.ConfigContent, "[log]")
		assert.Empty(t, result.FilesWritten)
		testutil.AssertNoFile(t, filepath.Join(dir, ".arbitrator.toml"))
	})

	t.Run("write", func(t *testing.T) {
		dir := t.TempDir()

		result, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})
		require.NoError(t, err)

		path := filepath.Join(dir, ".arbitrator.toml")
		assert.Equal(t, []string{path}, result.FilesWritten)
		testutil.AssertFileContent(t, path, config.DefaultConfigContent())
	})

	t.Run("existing file is kept", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.CreateFile(t, dir, ".arbitrator.toml", "[rewrite]\nmode = \"token\"\n")

		result, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)
		testutil.AssertFileContent(t, path, "[rewrite]\nmode = \"token\"\n")
	})

	t.Run("written file loads", func(t *testing.T) {
		testutil.Isolate(t)
		dir := t.TempDir()

		_, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})
		require.NoError(t, err)

		cfg, err := config.Load(config.LoadOptions{WorkDir: dir, UserConfigDir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, "line", cfg.Rewrite.Mode)
	})
}
