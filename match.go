package swissset

//go:generate go run -C internal/simdgen .

// matcher is the group matcher capability: given a group-wide load of
// groupWidth() consecutive control bytes, answer which positions hold a
// given tag and which holds the first empty byte.
//
// Exposed as an interface with interchangeable backends selected at
// construction, rather than parallel full-table implementations per SIMD
// width. Table selects one at New time via newMatcher.
type matcher interface {
	// groupWidth is G: the number of control bytes one group covers.
	groupWidth() int

	// match returns a bitmask over [0, groupWidth()) with a bit set at
	// every position whose control byte equals tag.
	match(group []byte, tag uint8) uint16

	// firstEmpty returns the position in [0, groupWidth()) of the first
	// control byte equal to ctrlEmpty, or groupWidth() if none.
	firstEmpty(group []byte) int
}

// newMatcher returns the active group matcher backend. The shipped
// backend is the portable SWAR implementation (match_swar.go); see
// DESIGN.md for why the hardware SIMD backend generated by
// internal/simdgen isn't wired in here.
func newMatcher() matcher {
	return swarMatcher{}
}
