// Package tifflzw implements the LZW variant used for TIFF raster data.
//
// TIFF packs LZW codes MSB first with code widths growing from 9 to 12
// bits, and switches to the next width one code earlier than the GIF
// variant implemented by compress/lzw. Decoding a TIFF strip with the
// standard library package therefore fails with invalid-code errors; this
// package reproduces the TIFF behavior exactly.
//
// Basic usage for decoding one strip or tile:
//
//	raster, err := tifflzw.Decode(strip)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding is best-effort on truncated input: if the data runs out before
// an end-of-information code, everything recovered up to that point is
// returned without error. Use DecodeResult to observe the truncation.
package tifflzw

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode expands one LZW-compressed band into its literal bytes.
// An invalid code in the stream returns the partial output together with a
// *CorruptError naming the code and its bit position.
func Decode(data []byte) ([]byte, error) {
	out, _, err := DecodeResult(data)
	return out, err
}

// DecodeResult decodes like Decode and also reports per-call diagnostics.
func DecodeResult(data []byte) ([]byte, Result, error) {
	d := newDecoder(data)
	out, err := d.decode()
	res := Result{
		Truncated: d.truncated,
		BitsRead:  d.br.Offset(),
		Codes:     d.codes,
	}
	return out, res, err
}

// Result carries diagnostics from one decode call.
type Result struct {
	// Truncated reports that the input ended before an end-of-information
	// code was seen. The decoded output is still valid up to that point.
	Truncated bool

	// BitsRead is the number of input bits consumed.
	BitsRead int

	// Codes is the number of codes interpreted, control codes included.
	Codes int
}

// CorruptError reports a code value that is invalid at its position in the
// compressed stream.
type CorruptError struct {
	Code   int // the offending code value
	Offset int // bit offset of the code in the input
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("tifflzw: corrupted stream: code %d at bit offset %d", e.Code, e.Offset)
}

// Decoder decompresses one band of image data. The byte order is the
// containing file's field endianness; schemes whose bit packing is fixed,
// such as LZW, ignore it.
type Decoder interface {
	Decode(data []byte, order binary.ByteOrder) ([]byte, error)
}

// Encoder compresses one band of image data.
type Encoder interface {
	Encode(data []byte, order binary.ByteOrder) ([]byte, error)
}

// Codec is the LZW compression scheme behind the Decoder and Encoder
// contracts.
type Codec struct{}

// Decode implements the Decoder contract. LZW bit packing is MSB first
// regardless of the container's byte order.
func (Codec) Decode(data []byte, order binary.ByteOrder) ([]byte, error) {
	return Decode(data)
}

// Encode implements the Encoder contract. The LZW encode direction is not
// implemented.
func (Codec) Encode(data []byte, order binary.ByteOrder) ([]byte, error) {
	return nil, errors.New("tifflzw: encoder is not implemented")
}
