package swissset

import "errors"

// ErrCapacityExceeded is returned by Put when the table already holds
// maxSize entries and the key being inserted is not already present.
var ErrCapacityExceeded = errors.New("swissset: capacity exceeded")

// InvalidArgumentError reports a construction or call argument that is out
// of range for the operation being performed.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "swissset: invalid argument " + e.Arg + ": " + e.Reason
}

func invalidArgument(arg, reason string) error {
	return &InvalidArgumentError{Arg: arg, Reason: reason}
}
