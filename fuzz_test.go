package tifflzw

import (
	"errors"
	"testing"
)

// FuzzDecode tests the decoder with arbitrary input data.
// Run with: go test -fuzz=FuzzDecode -fuzztime=60s
func FuzzDecode(f *testing.F) {
	// Clear followed by EOI (empty raster)
	f.Add([]byte{0x80, 0x40, 0x40})

	// A small valid stream
	f.Add(encode([]byte("seed corpus seed corpus")))

	// A truncated stream
	f.Add(stream(clearCode, 'A', 'B'))

	// Empty and single byte inputs
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		// The decoder must never panic, and the only fatal failure is a
		// corrupted-stream error.
		out, res, err := DecodeResult(data)
		if err != nil {
			var ce *CorruptError
			if !errors.As(err, &ce) {
				t.Fatalf("DecodeResult() error = %v, want *CorruptError", err)
			}
			return
		}
		if res.BitsRead > len(data)*8 {
			t.Fatalf("BitsRead = %d exceeds input size %d bits", res.BitsRead, len(data)*8)
		}
		_ = out
	})
}
