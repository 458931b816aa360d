package swissset

// Vset is a self-validating wrapper around Uint64Set, used by the fuzz
// chain in autofuzzchain_test.go: it covers Put, Find, Clear, Len -- no
// Delete or Range, since this table doesn't support removal or
// iteration.

import (
	"fmt"
	"sort"
)

const debugVset = false

// Vset mirrors every Put/Find/Clear onto a plain Go map and panics the
// moment the two disagree.
type Vset struct {
	s       *Uint64Set
	maxSize int
	mirror  map[uint64]bool
}

// NewVset builds a Vset with a small, fuzz-friendly capacity (capacity is
// a byte) and a deterministic identity hash so fuzzing explores
// collision-heavy probe sequences more often than a well-distributed hash
// would.
func NewVset(maxSize byte) *Vset {
	size := int(maxSize)
	if size == 0 {
		size = 1
	}
	s, err := NewUint64Set(size, WithHashFunc(identityHash))
	if err != nil {
		panic(err)
	}
	return &Vset{s: s, maxSize: size, mirror: make(map[uint64]bool)}
}

// identityHash is deliberately a bad, lumpy hash so fuzzing exercises
// collision-heavy probe sequences more often than xxhash would.
func identityHash(b []byte) uint64 {
	return getUint64LE(b)
}

func (vm *Vset) Put(v uint64) {
	if debugVset {
		println("Put:", v)
	}
	wasPresent := vm.mirror[v]
	ok, err := vm.s.Put(v)

	switch {
	case err == ErrCapacityExceeded:
		if wasPresent {
			panic(fmt.Sprintf("Put(%v) = _, ErrCapacityExceeded, but %v was already present", v, v))
		}
		if len(vm.mirror) != vm.maxSize {
			panic(fmt.Sprintf("Put(%v) = _, ErrCapacityExceeded, but mirror has room (%d/%d)",
				v, len(vm.mirror), vm.maxSize))
		}
	case err != nil:
		panic(fmt.Sprintf("Put(%v) unexpected error: %v", v, err))
	case ok == wasPresent:
		panic(fmt.Sprintf("Put(%v) = %v, want %v (mirror presence: %v)", v, ok, !wasPresent, wasPresent))
	default:
		vm.mirror[v] = true
	}
}

func (vm *Vset) Find(v uint64) bool {
	if debugVset {
		println("Find:", v)
	}
	got, err := vm.s.Find(v)
	if err != nil {
		panic(fmt.Sprintf("Find(%v) unexpected error: %v", v, err))
	}
	want := vm.mirror[v]
	if got != want {
		panic(fmt.Sprintf("Find(%v) = %v, want %v", v, got, want))
	}
	return got
}

func (vm *Vset) Clear() {
	if debugVset {
		println("Clear")
	}
	vm.s.Clear()
	vm.mirror = make(map[uint64]bool)
}

func (vm *Vset) Len() int {
	got := vm.s.Len()
	want := len(vm.mirror)
	if got != want {
		panic(fmt.Sprintf("Len() = %d, want %d", got, want))
	}
	return got
}

// occupied reads every occupied slot directly out of the underlying
// Table, used only for the final cross-check against the mirror.
func (vm *Vset) occupied() []uint64 {
	tbl := vm.s.t
	var out []uint64
	for i := 0; i < tbl.capacity; i++ {
		if tbl.ctrl.bytes[i]&ctrlOccupiedBit != 0 {
			out = append(out, getUint64LE(tbl.slot(i)))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (vm *Vset) mirrorSorted() []uint64 {
	out := make([]uint64, 0, len(vm.mirror))
	for k := range vm.mirror {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
