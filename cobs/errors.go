package cobs

import "errors"

var (
	// ErrMissingTerminator is returned when an encoded frame does not contain
	// the marker byte that terminates it.
	ErrMissingTerminator = errors.New("cobs: frame has no terminating marker")

	// ErrInvalidFrame is returned when an encoded frame is empty or starts
	// with the marker byte, so that it has no leading distance byte.
	ErrInvalidFrame = errors.New("cobs: frame has no leading distance byte")

	// ErrTruncatedFrame is returned when the terminating marker appears
	// before the run announced by the preceding distance byte is complete.
	ErrTruncatedFrame = errors.New("cobs: frame terminated in the middle of a run")
)
