package swissset

// Uint64Set is the "long-only" specialization: entries are 8-byte
// little-endian integers, and the hash is derived internally.
type Uint64Set struct {
	t  *Table
	fn HashFunc
}

// NewUint64Set builds a Uint64Set that can hold up to maxSize values.
func NewUint64Set(maxSize int, opts ...Option) (*Uint64Set, error) {
	cfg := config{hashFunc: xxhashSum64}
	for _, opt := range opts {
		opt(&cfg)
	}

	t, err := New(8, maxSize, opts...)
	if err != nil {
		return nil, err
	}
	return &Uint64Set{t: t, fn: cfg.hashFunc}, nil
}

// Put inserts v if absent, reporting true iff it was newly inserted.
func (s *Uint64Set) Put(v uint64) (bool, error) {
	var buf [8]byte
	putUint64LE(buf[:], v)
	return s.t.Put(hashUint64(s.fn, v), buf[:])
}

// Find reports whether v is present.
func (s *Uint64Set) Find(v uint64) (bool, error) {
	var buf [8]byte
	putUint64LE(buf[:], v)
	return s.t.Find(hashUint64(s.fn, v), buf[:])
}

// Clear empties the set, preserving capacity.
func (s *Uint64Set) Clear() { s.t.Clear() }

// Len reports the number of values currently stored.
func (s *Uint64Set) Len() int { return s.t.Len() }

// Cap reports the set's fixed capacity.
func (s *Uint64Set) Cap() int { return s.t.Cap() }
