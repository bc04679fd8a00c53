package cobs_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cmcqueen/cobs2-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamEncode(t *testing.T, enc *cobs.Encoding, payload []byte) []byte {
	t.Helper()
	var wire bytes.Buffer
	e := cobs.NewEncoder(enc, &wire)
	_, err := e.Write(payload)
	require.NoError(t, err)
	require.NoError(t, e.Close())
	return wire.Bytes()
}

func streamDecode(t *testing.T, enc *cobs.Encoding, frame []byte) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	d := cobs.NewDecoder(enc, &out)
	if _, err := d.Write(frame); err != nil {
		return nil, err
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func TestEncoderMatchesSlice(t *testing.T) {
	for _, tc := range standardTestCases {
		assert.Equal(t, []byte(tc.encoded), streamEncode(t, cobs.Standard, []byte(tc.decoded)))
	}
	for _, tc := range reducedTestCases {
		assert.Equal(t, []byte(tc.encoded), streamEncode(t, cobs.Reduced, []byte(tc.decoded)))
	}
}

func TestDecoderMatchesSlice(t *testing.T) {
	for _, tc := range standardTestCases {
		decoded, err := streamDecode(t, cobs.Standard, []byte(tc.encoded))
		require.NoError(t, err)
		assert.Equal(t, []byte(tc.decoded), decoded)
	}
	for _, tc := range reducedTestCases {
		decoded, err := streamDecode(t, cobs.Reduced, []byte(tc.encoded))
		require.NoError(t, err)
		assert.Equal(t, []byte(tc.decoded), decoded)
	}
}

// Splitting a payload across Write calls never changes the output, and
// splitting a frame across Write calls never changes the decoding.
func TestChunkedWrites(t *testing.T) {
	payload := []byte("12345\x006789")
	want := cobs.Standard.Encode(payload)

	for i := 0; i <= len(payload); i++ {
		var wire bytes.Buffer
		e := cobs.NewEncoder(cobs.Standard, &wire)
		_, err := e.Write(payload[:i])
		require.NoError(t, err)
		_, err = e.Write(payload[i:])
		require.NoError(t, err)
		require.NoError(t, e.Close())
		assert.Equal(t, want, wire.Bytes())
	}

	for i := 0; i <= len(want); i++ {
		var out bytes.Buffer
		d := cobs.NewDecoder(cobs.Standard, &out)
		_, err := d.Write(want[:i])
		require.NoError(t, err)
		_, err = d.Write(want[i:])
		require.NoError(t, err)
		require.NoError(t, d.Close())
		assert.Equal(t, payload, out.Bytes())
	}
}

func TestEncoderReuse(t *testing.T) {
	var wire bytes.Buffer
	e := cobs.NewEncoder(cobs.Standard, &wire)
	for _, payload := range []string{"ab\x00c", ""} {
		_, err := e.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, e.Close())
		wire.WriteByte(cobs.Delimiter)
	}
	assert.Equal(t, []byte("\x03ab\x02c\x00\x01\x00"), wire.Bytes())
}

func TestDecoderTruncatedFrame(t *testing.T) {
	var out bytes.Buffer
	d := cobs.NewDecoder(cobs.Standard, &out)
	_, err := d.Write([]byte("\x05AB"))
	require.NoError(t, err)
	assert.ErrorIs(t, d.Close(), cobs.ErrTruncated)

	// Close resets the Decoder, so the next frame decodes normally.
	out.Reset()
	_, err = d.Write([]byte("\x03ab"))
	require.NoError(t, err)
	require.NoError(t, d.Close())
	assert.Equal(t, []byte("ab"), out.Bytes())
}

func TestDecoderSubstitutedFrame(t *testing.T) {
	var out bytes.Buffer
	d := cobs.NewDecoder(cobs.Reduced, &out)
	_, err := d.Write([]byte("\x05AB"))
	require.NoError(t, err)
	require.NoError(t, d.Close())
	assert.Equal(t, []byte("AB\x05"), out.Bytes())
}

func TestDecoderRejectsDelimiter(t *testing.T) {
	var out bytes.Buffer
	d := cobs.NewDecoder(cobs.Standard, &out)
	n, err := d.Write([]byte("\x03ab\x00\x03cd"))
	assert.ErrorIs(t, err, cobs.ErrUnexpectedZero)
	assert.Equal(t, 3, n)

	// The caller owns resynchronization: Reset and feed the next frame.
	d.Reset()
	out.Reset()
	_, err = d.Write([]byte("\x03cd"))
	require.NoError(t, err)
	require.NoError(t, d.Close())
	assert.Equal(t, []byte("cd"), out.Bytes())
}

func ExampleNewEncoder() {
	var wire bytes.Buffer
	enc := cobs.NewEncoder(cobs.Reduced, &wire)
	enc.Write([]byte("12345"))
	enc.Close()
	wire.WriteByte(cobs.Delimiter)
	fmt.Printf("% x\n", wire.Bytes())
	// Output:
	// 35 31 32 33 34 00
}
