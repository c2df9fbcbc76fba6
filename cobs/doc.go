// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  A stuffed frame never contains the chosen marker byte
// except as its final, terminating byte, so frames can be sent over links that
// use the marker as a delimiter.  Any byte can serve as the marker; 0x00 is
// the conventional choice.  Distance bytes are stored XOR'd with the marker,
// so with a non-zero marker the frames differ from textbook COBS output.
package cobs
