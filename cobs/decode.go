package cobs

import (
	"slices"
)

// DecodeTo decodes the frame in src into dst and returns the number of bytes
// written.  src must already be stripped of the frame delimiter.  It returns
// ErrUnexpectedZero if src contains a zero byte, ErrTruncated (for Standard)
// if a length code claims more bytes than remain, and ErrBufferTooSmall if
// dst cannot hold the payload; sizing dst with MaxDecodedLen always leaves
// room.  On error nothing useful is in dst.
func (enc *Encoding) DecodeTo(dst, src []byte) (int, error) {
	out := 0
	for i := 0; i < len(src); {
		code := src[i]
		if code == 0 {
			return 0, ErrUnexpectedZero
		}
		end := i + int(code) // one past the block's last data byte
		if end > len(src) {
			if !enc.reduced {
				return 0, ErrTruncated
			}
			// The code claims more bytes than the frame holds, so it is
			// really the payload's final byte: copy the bytes that are
			// present, then the code itself, and the frame is done.
			for _, b := range src[i+1:] {
				if b == 0 {
					return 0, ErrUnexpectedZero
				}
				if out >= len(dst) {
					return 0, ErrBufferTooSmall
				}
				dst[out] = b
				out++
			}
			if out >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			dst[out] = code
			out++
			return out, nil
		}
		for _, b := range src[i+1 : end] {
			if b == 0 {
				return 0, ErrUnexpectedZero
			}
			if out >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			dst[out] = b
			out++
		}
		i = end
		if i < len(src) && code != 0xff {
			// Any block short of the escape length stands for its data
			// bytes plus one zero, unless it closes the frame.
			if out >= len(dst) {
				return 0, ErrBufferTooSmall
			}
			dst[out] = 0
			out++
		}
	}
	return out, nil
}

// Decode returns the payload encoded in src.  An empty src decodes to an
// empty payload.
func (enc *Encoding) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, enc.MaxDecodedLen(len(src)))
	n, err := enc.DecodeTo(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// AppendDecode appends the payload encoded in src to dst and returns the
// extended slice.  On error it returns dst unchanged alongside the error.
func (enc *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	m := enc.MaxDecodedLen(len(src))
	dst = slices.Grow(dst, m)
	n, err := enc.DecodeTo(dst[len(dst):len(dst)+m], src)
	if err != nil {
		return dst, err
	}
	return dst[:len(dst)+n], nil
}
