package cobs

import (
	"io"
)

// An Encoder stuffs a stream of payload bytes and writes the encoded frame
// to an underlying writer.  Only the open block is buffered; each block is
// written out as soon as its length code is known.  Close finishes the
// frame and leaves the Encoder ready for the next one.  Like the slice API,
// an Encoder never writes the frame delimiter; callers put one on the wire
// between frames.
//
// An Encoder must not be used from multiple goroutines at once.
type Encoder struct {
	enc *Encoding
	w   io.Writer
	buf []byte // open block; buf[0] is the running length code
}

var _ io.WriteCloser = (*Encoder)(nil)

// NewEncoder returns an Encoder that writes the enc-stuffed form of
// everything written to it to w.
func NewEncoder(enc *Encoding, w io.Writer) *Encoder {
	e := &Encoder{enc: enc, w: w, buf: make([]byte, 1, 0xff)}
	e.buf[0] = 1
	return e
}

// WriteByte adds a single payload byte to the frame.
func (e *Encoder) WriteByte(c byte) error {
	if e.buf[0] == 0xff {
		// The open block is full.  Writing it is deferred until another
		// byte arrives, so that a frame ending exactly on a full block
		// gets no empty trailing block.
		if err := e.flush(); err != nil {
			return err
		}
	}
	if c == 0 {
		// The zero itself is implied by the block boundary.
		return e.flush()
	}
	e.buf = append(e.buf, c)
	e.buf[0]++
	return nil
}

// Write adds the payload bytes in p to the frame.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := e.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Close finishes the frame by writing the final block, folding the last
// data byte into the length code when the Encoder was built with Reduced.
// It does not close the underlying writer, and the Encoder may be reused
// for another frame afterwards.
func (e *Encoder) Close() error {
	if e.enc.reduced && e.buf[0] <= maxRun && len(e.buf) > 1 {
		if last := e.buf[len(e.buf)-1]; last >= e.buf[0] {
			e.buf[0] = last
			e.buf = e.buf[:len(e.buf)-1]
		}
	}
	return e.flush()
}

// Reset discards the open block, abandoning any partially written frame.
func (e *Encoder) Reset() {
	e.buf = e.buf[:1]
	e.buf[0] = 1
}

func (e *Encoder) flush() error {
	_, err := e.w.Write(e.buf)
	e.Reset()
	return err
}

// A Decoder unstuffs a stream of frame bytes, forwarding the payload to an
// underlying writer.  Feed it the bytes of one frame — delimiter excluded,
// exactly as the slice API expects — and call Close, which checks that the
// frame ended on a block boundary (or, for Reduced, applies the final-byte
// substitution), then resets the Decoder for the next frame.
//
// A Decoder must not be used from multiple goroutines at once.
type Decoder struct {
	enc       *Encoding
	w         io.Writer
	code      byte // length code of the current block; 0xff also at frame start
	remaining byte // data bytes still owed to the current block
	scratch   [1]byte
}

var _ io.WriteCloser = (*Decoder)(nil)

// NewDecoder returns a Decoder that writes the decoded form of everything
// written to it to w.
func NewDecoder(enc *Encoding, w io.Writer) *Decoder {
	return &Decoder{enc: enc, w: w, code: 0xff}
}

// WriteByte feeds one frame byte to the Decoder.
func (d *Decoder) WriteByte(c byte) error {
	if c == 0 {
		return ErrUnexpectedZero
	}
	if d.remaining > 0 {
		d.remaining--
		return d.emit(c)
	}
	if d.code != 0xff {
		// The block just closed was shorter than the escape length, so a
		// zero of the original payload sat at this boundary.  Emission
		// waits until here: a boundary that turns out to end the frame
		// carries no zero.
		if err := d.emit(0); err != nil {
			return err
		}
	}
	d.code = c
	d.remaining = c - 1
	return nil
}

// Write feeds the frame bytes in p to the Decoder.
func (d *Decoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Close marks the end of the frame.  For Standard it returns ErrTruncated
// if the final block was still owed data bytes; for Reduced that case is
// the substitution signal and the length code is forwarded as the payload's
// final byte.  Either way the Decoder is reset and may be fed another
// frame.
func (d *Decoder) Close() error {
	remaining, code := d.remaining, d.code
	d.Reset()
	if remaining == 0 {
		return nil
	}
	if !d.enc.reduced {
		return ErrTruncated
	}
	return d.emit(code)
}

// Reset discards the state of the current frame, so that decoding can
// resynchronize on the next one.
func (d *Decoder) Reset() {
	d.code = 0xff
	d.remaining = 0
}

func (d *Decoder) emit(c byte) error {
	d.scratch[0] = c
	_, err := d.w.Write(d.scratch[:])
	return err
}
