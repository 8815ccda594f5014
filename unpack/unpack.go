// Package unpack expands packed sub-byte samples into 8-bit intensities so
// that 1, 2 and 4 bit-per-sample data can be laid out like ordinary bytes.
package unpack

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/32bitkid/bitreader"
)

// ErrSampleBits is returned for sample widths other than 1, 2, 4 and 8.
var ErrSampleBits = errors.New("unsupported sample width")

// Valid reports whether bits is a supported sample width.
func Valid(bits uint) bool {
	switch bits {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// Len is the number of samples held by n bytes at the given width.
func Len(n int, bits uint) int {
	if !Valid(bits) {
		return 0
	}
	return n * 8 / int(bits)
}

// Samples reads buf MSB-first as a stream of bits-wide samples and rescales
// each one onto 0..255, so 1-bit samples become 0x00/0xFF and 4-bit samples
// step by 0x11. An 8-bit width returns buf unchanged.
func Samples(buf []byte, bits uint) ([]byte, error) {
	if !Valid(bits) {
		return nil, fmt.Errorf("%w: %d", ErrSampleBits, bits)
	}
	if bits == 8 {
		return buf, nil
	}

	br := bitreader.NewReader(bufio.NewReader(bytes.NewReader(buf)))
	scale := uint8(0xff / (uint(1)<<bits - 1))

	out := make([]byte, Len(len(buf), bits))
	for i := range out {
		v, err := br.Read8(bits)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = v * scale
	}
	return out, nil
}
