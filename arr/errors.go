package arr

import "errors"

// Sentinel errors returned by arr operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.Range(1, 5, 0, false)
//	if errors.Is(err, arr.ErrInvalidArgument) {
//	    // step was rejected
//	}
var (
	// ErrInvalidArgument is returned when an argument can never produce a
	// result: a zero or wrong-signed Range step, or a value that cannot be
	// used as an array key.
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrInvalidJSON is returned by [Parse] when the input is not a JSON
	// object or array, or is malformed.
	ErrInvalidJSON = errors.New("arr: invalid JSON document")
)
