package matlab

// Members is an insertion-ordered name -> Member index, the Go stand-in for
// the teacher's fieldMap/methodMap pattern (inspector/graph/types.go) used
// here instead of Python's plain dict (which is already insertion-ordered).
type Members struct {
	order []string
	index map[string]Member
}

// NewMembers returns an empty, ready-to-use Members set.
func NewMembers() *Members {
	return &Members{index: make(map[string]Member)}
}

// Get returns the member stored under name, if any.
func (m *Members) Get(name string) (Member, bool) {
	v, ok := m.index[name]
	return v, ok
}

// Set inserts or replaces the member stored under name, preserving original
// insertion order on replacement.
func (m *Members) Set(name string, v Member) {
	if _, exists := m.index[name]; !exists {
		m.order = append(m.order, name)
	}
	m.index[name] = v
}

// Delete removes name from the set, if present.
func (m *Members) Delete(name string) {
	if _, ok := m.index[name]; !ok {
		return
	}
	delete(m.index, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Names returns member names in insertion order.
func (m *Members) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len reports the number of members stored.
func (m *Members) Len() int { return len(m.order) }

// Each calls fn for every member in insertion order.
func (m *Members) Each(fn func(name string, v Member)) {
	for _, n := range m.order {
		fn(n, m.index[n])
	}
}

// Slice returns every member in insertion order.
func (m *Members) Slice() []Member {
	out := make([]Member, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, m.index[n])
	}
	return out
}
