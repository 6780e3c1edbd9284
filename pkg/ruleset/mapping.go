package ruleset

// Entry is one pattern/template pair as it appears in a rule source.
type Entry struct {
	Pattern  string
	Template string
}

// Mapping is an ordered pattern -> template mapping. The zero value is an
// empty mapping ready to use.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping builds a mapping by setting each entry in turn.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{}
	for _, e := range entries {
		m.Set(e.Pattern, e.Template)
	}
	return m
}

// Set appends a new pattern, or replaces the template of an existing one in
// place.
func (m *Mapping) Set(pattern, template string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[pattern]; ok {
		m.entries[i].Template = template
		return
	}
	m.index[pattern] = len(m.entries)
	m.entries = append(m.entries, Entry{Pattern: pattern, Template: template})
}

// Merge sets every entry of each source, in order.
func (m *Mapping) Merge(sources ...*Mapping) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, e := range src.entries {
			m.Set(e.Pattern, e.Template)
		}
	}
}

// Get returns the template for pattern.
func (m *Mapping) Get(pattern string) (string, bool) {
	if m == nil || m.index == nil {
		return "", false
	}
	i, ok := m.index[pattern]
	if !ok {
		return "", false
	}
	return m.entries[i].Template, true
}

// Len returns the number of distinct patterns.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
