package cobs

import (
	"errors"
)

// Delimiter is the byte that separates encoded frames on the wire.  It never
// appears inside an encoded frame.  The codec itself neither reads nor
// writes it; splitting input on the delimiter and appending it after each
// frame is the transport's job.  (Scanner and FrameBuilder take care of both
// for in-memory wire buffers.)
const Delimiter byte = 0x00

// maxRun is the largest number of literal data bytes one length code can
// describe.  A run longer than this is split with the 0xff escape code,
// which carries no implicit zero.
const maxRun = 0xfe

var (
	// ErrBufferTooSmall is the error returned by EncodeTo and DecodeTo when
	// the destination buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("cobs: buffer too small")

	// ErrTruncated is the error returned when a length code claims more
	// data bytes than remain in the encoded input.
	ErrTruncated = errors.New("cobs: truncated block")

	// ErrUnexpectedZero is the error returned when a zero byte appears
	// inside an encoded frame.
	ErrUnexpectedZero = errors.New("cobs: unexpected zero byte")
)

// An Encoding is one of the two stuffing schemes: plain COBS or COBS/R.  The
// two produce identical output except for the final block of a frame, where
// COBS/R may fold the last data byte into the length code.  Encodings are
// stateless and safe for concurrent use.
type Encoding struct {
	reduced bool
}

// Standard is the plain COBS encoding.  Every encoded frame carries at least
// one byte of overhead.
var Standard = &Encoding{}

// Reduced is the COBS/R encoding.  When the final data byte of a payload is
// greater than or equal to the final length code that Standard would write,
// the byte and the code merge and the frame comes out one byte shorter.
// Decoding is otherwise identical to Standard, and either decoder accepts
// the other's unsubstituted frames.
var Reduced = &Encoding{reduced: true}

// MaxEncodedLen returns the worst-case encoded length of a payload of n
// bytes: one length code per 254 bytes of data, and at least one byte total.
// A destination of this size never yields ErrBufferTooSmall, whatever the
// payload contents.  Reduced output is never larger than Standard's.
func (enc *Encoding) MaxEncodedLen(n int) int {
	if n == 0 {
		return 1
	}
	return n + (n+maxRun-1)/maxRun
}

// MaxDecodedLen returns the worst-case decoded length of an encoded frame of
// n bytes.  For Standard every frame decodes to at least one byte fewer than
// its encoded form; a Reduced frame that used the substitution decodes to
// exactly its encoded length.
func (enc *Encoding) MaxDecodedLen(n int) int {
	if enc.reduced {
		return n
	}
	if n <= 1 {
		return 0
	}
	return n - 1
}
