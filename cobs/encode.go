package cobs

import (
	"slices"
)

// EncodeTo encodes src into dst and returns the number of bytes written.  It
// returns ErrBufferTooSmall if dst cannot hold the encoded frame; sizing dst
// with MaxEncodedLen always leaves room.  The frame delimiter is not
// written.
func (enc *Encoding) EncodeTo(dst, src []byte) (int, error) {
	if len(dst) == 0 {
		return 0, ErrBufferTooSmall
	}

	// code is the index reserved for the length code of the open block; the
	// code's value is only known once the run ends, so it is patched in
	// afterwards.  out is the next free position.  last tracks the most
	// recent data byte of the open block, which Reduced may fold into the
	// final length code.
	code := 0
	out := 1
	last := byte(0)
	for _, b := range src {
		if out-code > maxRun {
			// The open block is full.  Close it with the escape code,
			// which carries no implicit zero, and start a new block.
			dst[code] = 0xff
			code = out
			if code >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			out++
		}
		if b == 0 {
			dst[code] = byte(out - code)
			code = out
			if code >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			out++
			last = 0
		} else {
			if out >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			dst[out] = b
			out++
			last = b
		}
	}

	n := out - code // length of the final block, code byte included: 1..255
	if enc.reduced && n <= maxRun && last >= byte(n) {
		// The final data byte can double as the final length code.  The
		// substitution never applies to a full final block, whose 0xff code
		// is the long-run escape rather than a length.
		dst[code] = last
		out--
	} else {
		dst[code] = byte(n)
	}
	return out, nil
}

// Encode returns the encoded form of src.  Encoding cannot fail; any byte
// sequence, including an empty one, is encodable.
func (enc *Encoding) Encode(src []byte) []byte {
	dst := make([]byte, enc.MaxEncodedLen(len(src)))
	n, _ := enc.EncodeTo(dst, src)
	return dst[:n]
}

// AppendEncode appends the encoded form of src to dst and returns the
// extended slice.
func (enc *Encoding) AppendEncode(dst, src []byte) []byte {
	m := enc.MaxEncodedLen(len(src))
	dst = slices.Grow(dst, m)
	n, _ := enc.EncodeTo(dst[len(dst):len(dst)+m], src)
	return dst[:len(dst)+n]
}
