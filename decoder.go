package tifflzw

import (
	"bytes"

	"github.com/mrjoshuak/go-tifflzw/internal/bitio"
)

// Control codes and width limits of the TIFF LZW variant.
const (
	clearCode = 256 // resets the dictionary
	eoiCode   = 257 // end of information

	minWidth = 9
	maxWidth = 12

	tableSize = 1 << maxWidth // 4096, the highest code space
)

// decoder holds the call-scoped state for one decode pass. Each call
// allocates its own dictionary and cursor, so concurrent decodes on
// different inputs need no locking.
type decoder struct {
	br    *bitio.Reader
	table [][]byte // code -> byte sequence, tableSize slots

	maxCode int  // highest populated code
	width   uint // current code width in bits

	out       bytes.Buffer
	codes     int
	truncated bool
}

func newDecoder(data []byte) *decoder {
	d := &decoder{
		br:    bitio.NewReader(data),
		table: make([][]byte, tableSize),
	}
	d.reset()
	return d
}

// reset restores the dictionary to the 256 single-byte literal entries and
// returns the code width to its minimum. Codes 256 and 257 stay reserved
// and never hold data.
func (d *decoder) reset() {
	for i := 0; i < clearCode; i++ {
		d.table[i] = []byte{byte(i)}
	}
	for i := clearCode; i <= d.maxCode; i++ {
		d.table[i] = nil
	}
	d.maxCode = eoiCode
	d.width = minWidth
}

// next returns the next code from the input. A stream that ends mid-code is
// treated as if it ended with an end-of-information code, so truncated
// strips decode best-effort instead of failing.
func (d *decoder) next() int {
	v, err := d.br.ReadBits(d.width)
	if err != nil {
		d.truncated = true
		return eoiCode
	}
	d.codes++
	return int(v)
}

// decode runs the code state machine until an end-of-information code or
// exhausted input, returning everything emitted so far in either case.
func (d *decoder) decode() ([]byte, error) {
	var prev []byte

	for {
		code := d.next()
		if code == eoiCode {
			break
		}

		if code == clearCode {
			d.reset()

			// Skip the redundant clear codes some encoders emit.
			for code = d.next(); code == clearCode; code = d.next() {
			}
			if code == eoiCode {
				break
			}
			// Only a literal may follow a clear. The same value could be a
			// valid deferred reference later in the epoch; right after a
			// reset there is nothing for it to refer to.
			if code > clearCode {
				return d.out.Bytes(), d.corrupt(code)
			}

			value := d.table[code]
			d.out.Write(value)
			prev = value
			continue
		}

		switch {
		case code <= d.maxCode && d.table[code] != nil:
			value := d.table[code]
			d.out.Write(value)
			if prev != nil {
				d.add(combine(prev, value))
			}
			prev = value

		case code == d.maxCode+1 && prev != nil:
			// The encoder referenced the entry it is in the middle of
			// defining: the previous sequence extended by its own first
			// byte.
			value := combine(prev, prev)
			d.out.Write(value)
			d.add(value)
			prev = value

		default:
			return d.out.Bytes(), d.corrupt(code)
		}
	}

	return d.out.Bytes(), nil
}

// add inserts value at the next free slot and grows the code width one step
// before the current width's code space would fill, matching the reference
// encoder's early switch. Insertion stops once the table is full.
func (d *decoder) add(value []byte) {
	if d.maxCode >= tableSize-1 {
		return
	}
	d.maxCode++
	d.table[d.maxCode] = value
	if d.width < maxWidth && d.maxCode >= 1<<d.width-2 {
		d.width++
	}
}

// corrupt reports the offending code at the bit offset where it started.
func (d *decoder) corrupt(code int) error {
	return &CorruptError{Code: code, Offset: d.br.Offset() - int(d.width)}
}

// combine returns first extended by the leading byte of second. The result
// is always exactly one byte longer than first.
func combine(first, second []byte) []byte {
	v := make([]byte, len(first)+1)
	copy(v, first)
	v[len(first)] = second[0]
	return v
}
