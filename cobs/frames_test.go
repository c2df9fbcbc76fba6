package cobs_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBuilder(t *testing.T) {
	testCases := [][][]byte{
		{},
		{[]byte("hello"), []byte("there")},
		{[]byte("what is\x00going on")},
		{{}, {0x00}, seq(0x00, 0xff)},
	}
	for i := range testCases {
		checkFrameRoundTrip(t, testCases[i], 0x00)
		checkFrameRoundTrip(t, testCases[i], '\n')
	}
}

func TestFrameBuilderEncoding(t *testing.T) {
	var builder cobs.FrameBuilder
	builder.Write([]byte{0x11, 0x22, 0x00, 0x33})
	builder.FinishFrame()
	builder.FinishFrame()
	builder.Write([]byte{0x00})
	builder.FinishFrame()
	assert.Equal(t, 3, builder.Frames())

	var encoded bytes.Buffer
	builder.Encode(&encoded)
	expected := []byte{
		0x03, 0x11, 0x22, 0x02, 0x33, 0x00,
		0x01, 0x00,
		0x01, 0x01, 0x00,
	}
	assert.Equal(t, expected, encoded.Bytes())
}

func TestFrameBuilderIgnoresUnfinishedPayload(t *testing.T) {
	builder := cobs.FrameBuilder{Marker: '\n'}
	builder.WriteString("ab")
	builder.FinishFrame()
	builder.WriteString("pending")
	assert.Equal(t, 1, builder.Frames())

	var encoded bytes.Buffer
	builder.Encode(&encoded)
	assert.Equal(t, "\x09ab\n", encoded.String())
}

func TestScanner(t *testing.T) {
	encoded := []byte{
		0x00, 0x00,
		0x03, 0x11, 0x22, 0x02, 0x33, 0x00,
		0x00,
		0x01, 0x01, 0x00,
	}
	var s cobs.Scanner
	s.Reset(encoded, 0x00)

	require.True(t, s.Next())
	assert.Equal(t, []byte{0x03, 0x11, 0x22, 0x02, 0x33, 0x00}, s.Encoded())
	var decoded bytes.Buffer
	require.NoError(t, s.Decode(&decoded))
	assert.Equal(t, []byte{0x11, 0x22, 0x00, 0x33}, decoded.Bytes())

	require.True(t, s.Next())
	assert.Equal(t, []byte{0x01, 0x01, 0x00}, s.Encoded())
	decoded.Reset()
	require.NoError(t, s.Decode(&decoded))
	assert.Equal(t, []byte{0x00}, decoded.Bytes())

	assert.False(t, s.Next())
	assert.NoError(t, s.Err())
}

func TestScannerUnterminated(t *testing.T) {
	var s cobs.Scanner
	s.Reset([]byte{0x02, 'a', 0x00, 0x03, 'b', 'c'}, 0x00)
	require.True(t, s.Next())
	assert.False(t, s.Next())
	assert.Equal(t, cobs.ErrMissingTerminator, s.Err())
	assert.Nil(t, s.Encoded())

	s.Reset(nil, 0x00)
	assert.False(t, s.Next())
	assert.NoError(t, s.Err())
}

func ExampleScanner() {
	// Distance bytes are XOR'd with the marker.
	encoded := []byte("\x0eabc\n\x0b\n\x0f1234\n")
	var s cobs.Scanner
	var decoded bytes.Buffer
	s.Reset(encoded, '\n')
	for s.Next() {
		decoded.Reset()
		err := s.Decode(&decoded)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%q\n", decoded.String())
	}
	// Output:
	// "abc"
	// ""
	// "1234"
}
