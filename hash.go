package swissset

import "github.com/cespare/xxhash/v2"

// HashFunc is the externalized hash contract: deterministic, uniformly
// distributed in the low bits. The zero value of Table never calls a
// HashFunc directly -- Table.Put/Table.Find take the hash as an argument
// -- but Uint64Set and Set compute one internally using a HashFunc,
// defaulting to xxhashSum64 below.
type HashFunc func(b []byte) uint64

// xxhashSum64 is the default hash: xxHash64 with seed 0. cespare/xxhash/v2
// implements the standard xxHash64 algorithm and its Sum64 entry point
// always hashes with seed 0.
func xxhashSum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// hashUint64 hashes the little-endian encoding of v.
func hashUint64(fn HashFunc, v uint64) uint64 {
	var buf [8]byte
	putUint64LE(buf[:], v)
	return fn(buf[:])
}

func putUint64LE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func getUint64LE(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
