package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingSet(t *testing.T) {
	m := &Mapping{}
	m.Set("^a$", "A")
	m.Set("^b$", "B")
	m.Set("^a$", "A2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []Entry{
		{Pattern: "^a$", Template: "A2"},
		{Pattern: "^b$", Template: "B"},
	}, m.Entries())

	tpl, ok := m.Get("^a$")
	assert.True(t, ok)
	assert.Equal(t, "A2", tpl)

	_, ok = m.Get("^c$")
	assert.False(t, ok)
}

func TestMappingMerge(t *testing.T) {
	tests := []struct {
		name     string
		sources  []*Mapping
		expected []Entry
	}{
		{
			name:     "no sources",
			sources:  nil,
			expected: []Entry{},
		},
		{
			name: "later source wins value, first keeps position",
			sources: []*Mapping{
				NewMapping(Entry{"^foo$", "first"}, Entry{"^bar$", "bar"}),
				NewMapping(Entry{"^baz$", "baz"}, Entry{"^foo$", "second"}),
			},
			expected: []Entry{
				{"^foo$", "second"},
				{"^bar$", "bar"},
				{"^baz$", "baz"},
			},
		},
		{
			name: "nil sources are skipped",
			sources: []*Mapping{
				nil,
				NewMapping(Entry{"x", "y"}),
			},
			expected: []Entry{{"x", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mapping{}
			m.Merge(tt.sources...)
			assert.Equal(t, tt.expected, m.Entries())
		})
	}
}

func TestMappingNilSafe(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Entries())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestMappingEntriesIsCopy(t *testing.T) {
	m := NewMapping(Entry{"a", "b"})
	entries := m.Entries()
	entries[0].Template = "changed"

	tpl, _ := m.Get("a")
	assert.Equal(t, "b", tpl)
}
