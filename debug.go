package swissset

import "fmt"

// debug gates the verbose tracing used while developing the probe loop.
// Left in place rather than removed: it costs nothing at debug=false and
// is handy when something about probing looks wrong.
const debug = false

func logf(format string, args ...any) {
	if debug {
		fmt.Printf(format, args...)
	}
}
