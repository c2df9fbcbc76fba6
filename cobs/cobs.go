package cobs

import (
	"bytes"
)

// MaxStuffedLen returns the size of the output buffer that Stuff needs for an
// n-byte payload: one leading distance byte, one terminator, and room for a
// forced distance byte per 254 bytes of payload.  This is a capacity bound;
// the frame Stuff returns may be shorter, for example a payload of exactly
// 254 bytes stuffs into 256.
func MaxStuffedLen(n int) int {
	return n + 2 + n/(maxRun-1)
}

// Stuff encodes src into dst, removing every occurrence of marker and
// terminating the frame with a single copy of it.  It returns the length of
// the frame; dst[n-1] is the terminator.  The first MaxStuffedLen(len(src))
// bytes of dst are overwritten, and any of them past the frame are left
// holding the marker.
//
// Stuff panics if dst is shorter than MaxStuffedLen(len(src)).
func Stuff(dst, src []byte, marker byte) int {
	size := MaxStuffedLen(len(src))
	if len(dst) < size {
		panic("cobs: Stuff output buffer too small")
	}
	dst = dst[:size]
	for i := range dst {
		dst[i] = marker
	}

	// The frame always starts with a distance byte, which is overhead that
	// shifts every payload byte one position to the right.
	last := newTracker()
	overhead := 1

	for i, value := range src {
		if last.due(i + overhead) {
			// 254 payload bytes without a marker; force a distance byte.
			last.advance(dst, i+overhead, marker)
			overhead++
		}

		if value == marker {
			// The distance byte takes the place of the removed marker.
			last.advance(dst, i+overhead, marker)
			continue
		}

		dst[i+overhead] = value
	}

	end := len(src) + overhead
	last.advance(dst, end, marker)
	dst[end] = marker
	return end + 1
}

// Unstuff decodes the first frame in src into dst, and returns the number of
// payload bytes written.  Bytes of src after the terminator are ignored, and
// bytes of dst past the returned length are not touched.
//
// A frame without a terminator yields ErrMissingTerminator, and a frame that
// is empty or starts with the marker yields ErrInvalidFrame; in both cases
// nothing is written.  If the terminator cuts a run short, Unstuff returns the
// bytes it decoded along with ErrTruncatedFrame.
//
// dst must be able to hold len(src)-2 bytes; more precisely, Unstuff panics if
// it is shorter than the terminator's index minus one.
func Unstuff(dst, src []byte, marker byte) (int, error) {
	if len(src) == 0 || src[0] == marker {
		return 0, ErrInvalidFrame
	}
	end := bytes.IndexByte(src[1:], marker)
	if end == -1 {
		return 0, ErrMissingTerminator
	}
	end++
	if len(dst) < end-1 {
		panic("cobs: Unstuff output buffer too small")
	}

	// The leading distance byte has already been consumed, hence the -1.
	untilNext := (src[0] ^ marker) - 1
	nextIsOverhead := src[0]^marker == maxRun
	overhead := 1

	for i := 1; i < end; i++ {
		value := src[i]
		if untilNext != 0 {
			dst[i-overhead] = value
			untilNext--
			continue
		}

		// This is a distance byte.  It stands for a removed marker unless
		// the previous one was a forced break.
		untilNext = value ^ marker
		if nextIsOverhead {
			overhead++
		} else {
			dst[i-overhead] = marker
		}
		nextIsOverhead = untilNext == maxRun
		untilNext--
	}

	n := end - overhead
	if untilNext != 0 {
		return n, ErrTruncatedFrame
	}
	return n, nil
}

// Encode writes a binary record into an output buffer as a single COBS frame,
// including its terminating marker.
func Encode(record []byte, marker byte, buf *bytes.Buffer) {
	frame := make([]byte, MaxStuffedLen(len(record)))
	n := Stuff(frame, record, marker)
	buf.Write(frame[:n])
}

// Decode reads the first COBS frame in encoded and appends its payload to
// record.  If the frame is truncated, the bytes decoded before the terminator
// are still appended.
func Decode(encoded []byte, marker byte, record *bytes.Buffer) error {
	decoded := make([]byte, len(encoded))
	n, err := Unstuff(decoded, encoded, marker)
	record.Write(decoded[:n])
	return err
}
