package rewriter

import (
	"testing"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text))
		})
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"words", "a b c", []string{"a", "b", "c"}},
		{"double space yields empty token", "a  b", []string{"a", "", "b"}},
		{"newline stays in token", "a\nb c", []string{"a\nb", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.text))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeLine},
		{"line", ModeLine},
		{"LINE", ModeLine},
		{" token ", ModeToken},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("word")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
}

func TestModeSplit(t *testing.T) {
	assert.Equal(t, []string{"a b", "c"}, ModeLine.Split("a b\nc\n"))
	assert.Equal(t, []string{"a", "b\nc\n"}, ModeToken.Split("a b\nc\n"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "a\nb", Join([]string{"a", "b"}))
}
