package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"rules.md":           {Data: []byte("# Rule files\n\nPatterns and templates.\n")},
		"templates.txt":      {Data: []byte("Placeholders are {}.\n")},
		"nested/config.md":   {Data: []byte("# Config\n")},
		"ignored.json":       {Data: []byte("{}")},
		"nested/notes.draft": {Data: []byte("draft")},
	}
}

func TestNew(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"config", "rules", "templates"}, tm.Names())

	topic, ok := tm.GetTopic("config")
	require.True(t, ok)
	assert.Equal(t, "nested/config.md", topic.Path)
	assert.Equal(t, "# Config\n", topic.Content)

	_, ok = tm.GetTopic("ignored")
	assert.False(t, ok)
}

func TestNew_Extensions(t *testing.T) {
	tm, err := New(testFS(), Options{Extensions: []string{".draft"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, tm.Names())
}

type upperRenderer struct{ exts []string }

func (r *upperRenderer) Render(content, ext string) string {
	r.exts = append(r.exts, ext)
	return strings.ToUpper(content)
}

func TestRender(t *testing.T) {
	r := &upperRenderer{}
	tm, err := New(testFS(), Options{Renderer: r})
	require.NoError(t, err)

	out, ok := tm.Render("templates")
	require.True(t, ok)
	assert.Equal(t, "PLACEHOLDERS ARE {}.\n", out)
	assert.Equal(t, []string{".txt"}, r.exts)

	_, ok = tm.Render("missing")
	assert.False(t, ok)
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}

	out := r.Render("# Rule files\n\nPatterns and templates.\n", ".md")
	assert.Contains(t, out, "Rule files")
	assert.Contains(t, out, "Patterns and templates.")

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "tool", Short: "A tool", Run: func(cmd *cobra.Command, args []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(cmd *cobra.Command, args []string) {}})

	tm, err := New(testFS(), Options{})
	require.NoError(t, err)
	tm.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "topic",
			args:     []string{"help", "rules"},
			contains: []string{"# Rule files", "Patterns and templates."},
		},
		{
			name:     "list",
			args:     []string{"help", "topics"},
			contains: []string{"Available help topics:", "  config", "  rules", "tool help <topic>"},
		},
		{
			name:     "command",
			args:     []string{"help", "sub"},
			contains: []string{"A subcommand"},
		},
		{
			name:     "root",
			args:     []string{"help"},
			contains: []string{"A tool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newTestRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
