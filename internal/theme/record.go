package theme

// Record is a validated, typed theme mapping. Key order is the order
// the validator inserted entries: schema declaration order first, then
// unknown keys in their source insertion order.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores a typed value under key, keeping first-insertion order.
func (r *Record) Set(key string, value Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the typed value for key and whether it is present.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Equal reports whether two records hold the same keys in the same
// order with equal values.
func (r *Record) Equal(other *Record) bool {
	if other == nil || len(r.keys) != len(other.keys) {
		return false
	}
	for i, k := range r.keys {
		if other.keys[i] != k {
			return false
		}
		if r.values[k] != other.values[k] {
			return false
		}
	}
	return true
}
