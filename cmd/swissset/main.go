// Command swissset is a small harness for poking at a Table from the
// command line: build one from flags, fill it with pseudo-random keys from
// a seeded PRNG, and print occupancy stats. Not part of the library's contract.
package main

import (
	"fmt"
	"math/rand"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/gopherflats/swissset"
)

func main() {
	var (
		maxSize    = flag.Int("max-size", 1000, "maximum number of entries")
		loadFactor = flag.Float64("load-factor", 0, "override the default load factor (0 keeps the default)")
		fillPct    = flag.Int("fill", 50, "percentage of max-size to insert")
		seed       = flag.Int64("seed", 1, "PRNG seed for generated keys")
	)
	flag.Parse()

	opts := []swissset.Option{}
	if *loadFactor > 0 {
		opts = append(opts, swissset.WithLoadFactor(*loadFactor))
	}

	set, err := swissset.NewUint64Set(*maxSize, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "swissset:", err)
		os.Exit(1)
	}

	r := rand.New(rand.NewSource(*seed))
	toInsert := *maxSize * *fillPct / 100
	inserted, duplicates := 0, 0
	for i := 0; i < toInsert; i++ {
		ok, err := set.Put(r.Uint64())
		switch {
		case err != nil:
			fmt.Fprintln(os.Stderr, "swissset: put failed:", err)
			os.Exit(1)
		case ok:
			inserted++
		default:
			duplicates++
		}
	}

	fmt.Printf("capacity:   %d\n", set.Cap())
	fmt.Printf("max size:   %d\n", *maxSize)
	fmt.Printf("len:        %d\n", set.Len())
	fmt.Printf("inserted:   %d\n", inserted)
	fmt.Printf("duplicates: %d\n", duplicates)
}
