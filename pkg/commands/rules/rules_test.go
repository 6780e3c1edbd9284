package rules

import (
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules(t *testing.T) {
	result, err := ListRules(ListRulesOptions{
		Pairs: []string{"[^a,<{}|{}>]", "[b,]"},
	})
	require.NoError(t, err)
	require.Len(t, result.Rules, 2)

	assert.Equal(t, "^a", result.Rules[0].Pattern)
	assert.Equal(t, 2, result.Rules[0].PlaceholderCount)
	assert.Equal(t, "", result.Rules[1].Template)
	assert.Equal(t, 0, result.Rules[1].PlaceholderCount)
}

func TestListRules_Empty(t *testing.T) {
	result, err := ListRules(ListRulesOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Rules)
}

func TestListRules_BadPair(t *testing.T) {
	_, err := ListRules(ListRulesOptions{Pairs: []string{"nocomma"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulePairInvalid))
}
