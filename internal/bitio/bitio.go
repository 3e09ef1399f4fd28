// Package bitio provides bit-level reading of packed code streams.
package bitio

import (
	"io"
)

// Reader extracts variable-width codes from a byte slice, MSB first.
//
// Bits are pulled through a small accumulator: whole bytes are shifted in
// from the source until enough bits are pending, then the top bits are
// extracted as the next code. The cursor only moves forward.
type Reader struct {
	src []byte
	pos int    // index of the next unread byte
	acc uint32 // pending bits, right-aligned
	n   uint   // number of valid bits in acc (0-31)
}

// NewReader creates a reader over src. The slice is never modified.
func NewReader(src []byte) *Reader {
	return &Reader{src: src}
}

// ReadBits returns the next width bits (1-24) as an unsigned value and
// advances the cursor. If fewer than width bits remain in the source it
// returns io.ErrUnexpectedEOF and consumes nothing further.
func (r *Reader) ReadBits(width uint) (uint32, error) {
	for r.n < width {
		if r.pos >= len(r.src) {
			return 0, io.ErrUnexpectedEOF
		}
		r.acc = r.acc<<8 | uint32(r.src[r.pos])
		r.pos++
		r.n += 8
	}

	r.n -= width
	code := r.acc >> r.n
	r.acc ^= code << r.n

	return code, nil
}

// Offset returns the absolute bit offset of the cursor: the number of bits
// consumed from the source so far.
func (r *Reader) Offset() int {
	return r.pos*8 - int(r.n)
}
