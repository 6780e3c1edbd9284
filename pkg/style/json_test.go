package style

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/arthur-debert/arbitrator/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRulesJSON(t *testing.T) {
	rs, err := ruleset.Compile(ruleset.NewMapping(
		ruleset.Entry{Pattern: `^\.SH "`, Template: "<{}>"},
		ruleset.Entry{Pattern: "^#", Template: ""},
	))
	require.NoError(t, err)

	r := NewPlainRenderer(&bytes.Buffer{})
	out, err := r.RenderRulesJSON(rs.Rules())
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"^\\\\.SH \\\"\": \"<{}>\",\n  \"^#\": \"\"\n}", out)

	// The dump reads back as the same rules in the same order
	m, err := sources.ParseJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []ruleset.Entry{
		{Pattern: `^\.SH "`, Template: "<{}>"},
		{Pattern: "^#", Template: ""},
	}, m.Entries())
}

func TestRenderRulesJSON_Empty(t *testing.T) {
	out, err := NewPlainRenderer(&bytes.Buffer{}).RenderRulesJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}
