package cobs

import (
	"bytes"
)

// A Scanner steps through the frames of a zero-delimited wire buffer.  Empty
// segments — stray, leading, or trailing delimiters — are skipped, so a
// buffer that follows the convention of terminating every frame scans
// cleanly, and so does one that only separates them.  A final frame with no
// terminating delimiter is still surfaced.
//
// The zero value scans with the Standard encoding; use NewScanner to decode
// with Reduced.
type Scanner struct {
	enc   *Encoding
	rest  []byte
	frame []byte
}

// NewScanner returns a Scanner over wire whose Decode uses enc.
func NewScanner(enc *Encoding, wire []byte) *Scanner {
	s := &Scanner{enc: enc}
	s.Reset(wire)
	return s
}

// Reset points the Scanner at a new wire buffer, keeping its encoding.
func (s *Scanner) Reset(wire []byte) {
	s.rest = wire
	s.frame = nil
}

// Next advances the Scanner to the next frame, reporting whether there is
// one.
func (s *Scanner) Next() bool {
	for len(s.rest) > 0 {
		var frame []byte
		if i := bytes.IndexByte(s.rest, Delimiter); i >= 0 {
			frame, s.rest = s.rest[:i], s.rest[i+1:]
		} else {
			frame, s.rest = s.rest, nil
		}
		if len(frame) > 0 {
			s.frame = frame
			return true
		}
	}
	s.frame = nil
	return false
}

// Frame returns the raw encoded frame that Next advanced to, without its
// delimiter.  The slice aliases the wire buffer.
func (s *Scanner) Frame() []byte {
	return s.frame
}

// Decode decodes the current frame.
func (s *Scanner) Decode() ([]byte, error) {
	if s.enc == nil {
		return Standard.Decode(s.frame)
	}
	return s.enc.Decode(s.frame)
}

// A FrameBuilder accumulates payloads and turns them into a zero-delimited
// wire buffer.  Build up each payload with the embedded bytes.Buffer's
// Write methods, call FinishFrame when it is complete, and call WriteWire
// once at the end to encode everything.
type FrameBuilder struct {
	bytes.Buffer
	start  int
	frames []span
}

type span struct {
	start, end int
}

// FinishFrame marks the end of the payload under construction.  Nothing is
// encoded until WriteWire.
func (b *FrameBuilder) FinishFrame() {
	end := b.Len()
	b.frames = append(b.frames, span{b.start, end})
	b.start = end
}

// WriteWire encodes every finished payload with enc and writes the frames,
// each followed by the delimiter, to dest.
func (b *FrameBuilder) WriteWire(enc *Encoding, dest *bytes.Buffer) {
	all := b.Bytes()
	for _, sp := range b.frames {
		dest.Write(enc.Encode(all[sp.start:sp.end]))
		dest.WriteByte(Delimiter)
	}
}
