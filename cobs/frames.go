package cobs

import (
	"bytes"
)

// FrameBuilder accumulates payloads for several frames in one
// bytes.Buffer.  Write a payload through the embedded buffer and close it with
// FinishFrame; Encode then stuffs each closed payload as its own frame.
// Anything written after the last FinishFrame is not encoded.
type FrameBuilder struct {
	bytes.Buffer
	// Marker is the byte that terminates each frame.  The zero value uses
	// the conventional 0x00.
	Marker byte

	// ends holds the buffer offset where each closed payload stops; a
	// payload starts where the previous one stopped.
	ends []int
}

// FinishFrame closes the payload written since the previous call.  An empty
// payload is allowed and encodes as a frame of its own.
func (fb *FrameBuilder) FinishFrame() {
	fb.ends = append(fb.ends, fb.Len())
}

// Frames returns the number of closed payloads.
func (fb *FrameBuilder) Frames() int {
	return len(fb.ends)
}

// Encode appends every closed payload to dest as a terminated COBS frame, in
// the order they were written.
func (fb *FrameBuilder) Encode(dest *bytes.Buffer) {
	payloads := fb.Bytes()
	start := 0
	for _, end := range fb.ends {
		Encode(payloads[start:end], fb.Marker, dest)
		start = end
	}
}

// Scanner walks through a buffer containing any number of concatenated COBS
// frames.  Runs of markers between frames carry no payload and are skipped.
type Scanner struct {
	remaining []byte
	marker    byte
	frame     []byte
	err       error
}

// Reset starts scanning the frames in encoded, which are terminated by
// marker.
func (s *Scanner) Reset(encoded []byte, marker byte) {
	s.remaining = encoded
	s.marker = marker
	s.frame = nil
	s.err = nil
}

// Next advances to the next frame, returning false when there are no more.
// Trailing bytes without a terminator are reported by Err.
func (s *Scanner) Next() bool {
	for len(s.remaining) > 0 && s.remaining[0] == s.marker {
		s.remaining = s.remaining[1:]
	}
	if len(s.remaining) == 0 {
		s.frame = nil
		return false
	}

	end := bytes.IndexByte(s.remaining, s.marker)
	if end == -1 {
		s.frame = nil
		s.remaining = nil
		s.err = ErrMissingTerminator
		return false
	}
	s.frame = s.remaining[:end+1]
	s.remaining = s.remaining[end+1:]
	return true
}

// Encoded returns the current frame, including its terminator.
func (s *Scanner) Encoded() []byte {
	return s.frame
}

// Decode appends the payload of the current frame to record.
func (s *Scanner) Decode(record *bytes.Buffer) error {
	return Decode(s.frame, s.marker, record)
}

// Err returns the error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}
