package hll

import "errors"

// Sentinel error kinds, matched with errors.Is.
var (
	// ErrInvalidParams is returned by Build when the requested
	// log2m/r/word-type combination cannot represent a valid logic.
	ErrInvalidParams = errors.New("hllpack: invalid params")

	// ErrLengthMismatch is returned by Set/Merge when a backend's
	// length does not equal the logic's backend length.
	ErrLengthMismatch = errors.New("hllpack: length mismatch")

	// ErrIndexOutOfRange is returned by array accessors given an
	// index outside [0, len).
	ErrIndexOutOfRange = errors.New("hllpack: index out of range")
)
