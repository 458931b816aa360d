package swissset

// Set is the byte-array specialization: entries are a user-chosen fixed
// width, and the hash is computed internally (default: the xxhash adapter
// in hash.go) rather than supplied by the caller, for callers that don't
// want to manage hashing themselves. Table remains the lower-level engine
// that takes a caller-supplied hash directly.
type Set struct {
	t  *Table
	fn HashFunc
}

// NewSet builds a Set that can hold up to maxSize entries of entrySize
// bytes each.
func NewSet(entrySize, maxSize int, opts ...Option) (*Set, error) {
	cfg := config{hashFunc: xxhashSum64}
	for _, opt := range opts {
		opt(&cfg)
	}

	t, err := New(entrySize, maxSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Set{t: t, fn: cfg.hashFunc}, nil
}

// Put inserts entry if absent, reporting true iff it was newly inserted.
// It fails with *InvalidArgumentError if len(entry) doesn't match the
// entrySize given to NewSet.
func (s *Set) Put(entry []byte) (bool, error) {
	return s.t.Put(s.fn(entry), entry)
}

// Find reports whether entry is present.
func (s *Set) Find(entry []byte) (bool, error) {
	return s.t.Find(s.fn(entry), entry)
}

// Clear empties the set, preserving capacity.
func (s *Set) Clear() { s.t.Clear() }

// Len reports the number of entries currently stored.
func (s *Set) Len() int { return s.t.Len() }

// Cap reports the set's fixed capacity.
func (s *Set) Cap() int { return s.t.Cap() }
