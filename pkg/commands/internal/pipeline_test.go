package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"^a": "A{}", "^b": "B"}`), 0644))

	rs, err := CompileRules(RuleOptions{
		Files: []string{path},
		Pairs: []string{"[^a,override{}]", "[^c,C]"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())

	assert.Equal(t, "^a", rs.Rule(0).Pattern)
	assert.Equal(t, "override{}", rs.Template(0))
	assert.Equal(t, "^c", rs.Rule(2).Pattern)
}

func TestCompileRules_Errors(t *testing.T) {
	_, err := CompileRules(RuleOptions{Pairs: []string{"[(,x]"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))

	_, err = CompileRules(RuleOptions{Files: []string{filepath.Join(t.TempDir(), "missing.json")}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSourceNotFound))
}
