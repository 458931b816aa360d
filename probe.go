package swissset

import (
	"bytes"
	"math/bits"
)

// Put inserts entry if no equal entry is already present, reporting true
// iff it inserted a new entry and false iff entry was already present. It
// fails with *InvalidArgumentError if len(entry) != entrySize, and with
// ErrCapacityExceeded if the table is already at maxSize and entry is a
// new key.
func (t *Table) Put(hash uint64, entry []byte) (bool, error) {
	if len(entry) != t.entrySize {
		return false, invalidArgument("entry", "length does not match entrySize")
	}

	h1, h2 := t.tags(hash)
	bucket := h1
	var step uint64 = 1

	for {
		group := t.ctrl.load(bucket)

		matches := t.m.match(group, h2)
		for matches != 0 {
			pos := bits.TrailingZeros16(matches)
			s := (bucket + pos) & t.mask
			if bytes.Equal(t.slot(s), entry) {
				return false, nil
			}
			matches &= matches - 1
		}

		if e := t.m.firstEmpty(group); e < t.group {
			if t.size == t.maxSize {
				return false, ErrCapacityExceeded
			}
			s := (bucket + e) & t.mask
			logf("put: empty slot bucket=%d pos=%d slot=%d\n", bucket, e, s)
			t.ctrl.set(s, t.capacity, h2)
			copy(t.slot(s), entry)
			t.size++
			return true, nil
		}

		logf("put: group full at bucket=%d, advancing by step=%d\n", bucket, step)
		bucket = (bucket + int(step)) & t.mask
		step += uint64(t.group)
	}
}

// Find reports whether entry is present. It never mutates the table and,
// by the reachability invariant, stops probing the moment it encounters
// an empty control byte in a group.
func (t *Table) Find(hash uint64, entry []byte) (bool, error) {
	if len(entry) != t.entrySize {
		return false, invalidArgument("entry", "length does not match entrySize")
	}

	h1, h2 := t.tags(hash)
	bucket := h1
	var step uint64 = 1

	for {
		group := t.ctrl.load(bucket)

		matches := t.m.match(group, h2)
		for matches != 0 {
			pos := bits.TrailingZeros16(matches)
			s := (bucket + pos) & t.mask
			if bytes.Equal(t.slot(s), entry) {
				return true, nil
			}
			matches &= matches - 1
		}

		if t.m.firstEmpty(group) < t.group {
			return false, nil
		}

		bucket = (bucket + int(step)) & t.mask
		step += uint64(t.group)
	}
}
