// Package swissset implements a fixed-capacity, open-addressing hash set
// based on the Swiss Tables design (Abseil's flat_hash_set): a parallel
// metadata array of control bytes, scanned in SIMD-width groups, drives a
// quadratic probe over a flat array of fixed-width entries.
//
// The table is single-writer/single-reader with no internal
// synchronization, has a fixed capacity chosen at construction, and
// supports only two operations: insert-if-absent (Put) and membership
// test (Find). There is no resize and no delete.
package swissset

// config holds construction-time options, expressed as functional options.
type config struct {
	loadFactor float64
	hashFunc   HashFunc
}

// Option configures a Table, Uint64Set, or Set at construction.
type Option func(*config)

// WithLoadFactor overrides the default load factor used by the capacity
// planner.
func WithLoadFactor(lf float64) Option {
	return func(c *config) { c.loadFactor = lf }
}

// WithHashFunc overrides the hash function Uint64Set and Set use
// internally. Table itself never calls a HashFunc -- callers supply the
// hash directly to Put/Find.
func WithHashFunc(fn HashFunc) Option {
	return func(c *config) { c.hashFunc = fn }
}

// Table is the generic Swiss-table engine: entries are opaque, fixed-width
// byte strings; the caller supplies the hash.
type Table struct {
	ctrl      controlArray
	vals      []byte
	m         matcher
	group     int
	capacity  int
	mask      int
	size      int
	maxSize   int
	entrySize int
}

// defaultLoadFactor is 7/8 in general, or 15/16 for the 64-bit (8-byte
// group) SIMD variant, which is what swarMatcher is.
func defaultLoadFactor(group int) float64 {
	if group == 8 {
		return 15.0 / 16.0
	}
	return 7.0 / 8.0
}

// New builds a Table that can hold up to maxSize entries of entrySize
// bytes each. It fails with an *InvalidArgumentError if entrySize == 0,
// maxSize == 0, the load factor is out of (0, 1], or the computed
// capacity would reach 2^30.
func New(entrySize, maxSize int, opts ...Option) (*Table, error) {
	if entrySize <= 0 {
		return nil, invalidArgument("entrySize", "must be > 0")
	}

	m := newMatcher()
	cfg := config{loadFactor: defaultLoadFactor(m.groupWidth())}
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity, err := planCapacity(maxSize, cfg.loadFactor, m.groupWidth())
	if err != nil {
		return nil, err
	}

	return &Table{
		ctrl:      newControlArray(capacity, m.groupWidth()),
		vals:      make([]byte, capacity*entrySize),
		m:         m,
		group:     m.groupWidth(),
		capacity:  capacity,
		mask:      capacity - 1,
		maxSize:   maxSize,
		entrySize: entrySize,
	}, nil
}

// Len reports the number of entries currently stored.
func (t *Table) Len() int { return t.size }

// Cap reports the table's fixed capacity (always a power of two).
func (t *Table) Cap() int { return t.capacity }

// Clear empties the table: every control byte, including the mirrored
// tail, is reset to empty and size drops to zero. Entry storage is left
// as-is; readers only ever key off control bytes.
func (t *Table) Clear() {
	t.ctrl.clear()
	t.size = 0
}

func (t *Table) slot(s int) []byte {
	return t.vals[s*t.entrySize : s*t.entrySize+t.entrySize]
}

// tags splits a 64-bit hash into H1 (starting bucket) and H2 (occupancy
// tag). The split is mandatory: H2 lives in bits disjoint from the ones H1
// uses, so group-internal matching never correlates with group selection.
func (t *Table) tags(hash uint64) (h1 int, h2 uint8) {
	h2 = uint8(hash&0x7f) | ctrlOccupiedBit
	h1 = int((hash >> 7) & uint64(t.mask))
	return h1, h2
}
