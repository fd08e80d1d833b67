package theme

// Mapping is an ordered set of raw key/value pairs as produced by a
// descriptor parser. Keys are unique; setting an existing key replaces
// its value but keeps its original position, so the order unknown keys
// appeared in a source survives through to emission.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set stores a value under key. Last write wins.
func (m *Mapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Clone returns a deep copy of the mapping.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	for _, k := range m.keys {
		c.Set(k, m.values[k])
	}
	return c
}

// Merge combines a base mapping with overrides applied left to right.
// For a given key the last mapping that defines it wins; keys present
// in only one input are preserved. Inputs are never mutated.
func Merge(base *Mapping, overrides ...*Mapping) *Mapping {
	merged := NewMapping()
	if base != nil {
		for _, k := range base.keys {
			merged.Set(k, base.values[k])
		}
	}
	for _, o := range overrides {
		if o == nil {
			continue
		}
		for _, k := range o.keys {
			merged.Set(k, o.values[k])
		}
	}
	return merged
}
