package huff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	// maxBitsPerCode is the longest code a tree of NumSymbols leaves can
	// produce: a fully skewed tree puts its deepest leaves at depth
	// NumSymbols-1.
	maxBitsPerCode = NumSymbols - 1

	codeWords = (maxBitsPerCode + 63) / 64
)

// Code represents a sequence of bits: the left(0)/right(1) choices taken from
// the root of a tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// words holds the actual values of the bits.  The first bit is the
	// most significant bit of words[0].
	words [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of at most 64
// bits.  The most significant of the size low bits of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "MakeCode size %d > 64", size)
	var hc Code
	hc.Size = uint16(size)
	if size != 0 {
		hc.words[0] = bits << (64 - size)
	}
	return hc
}

// Append returns the Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code overflow: already %d bits", hc.Size)
	if bit != 0 {
		i := hc.Size
		hc.words[i/64] |= uint64(1) << (63 - i%64)
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i uint16) uint {
	assert.Assertf(i < hc.Size, "Code.Bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.words[i/64]>>(63-i%64)) & 1
}

// Uint64 returns the bits of a Code of at most 64 bits as an integer, first
// bit most significant.
func (hc Code) Uint64() uint64 {
	assert.Assertf(hc.Size <= 64, "Code.Uint64 on %d-bit code", hc.Size)
	if hc.Size == 0 {
		return 0
	}
	return hc.words[0] >> (64 - hc.Size)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := uint16(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

// writeTo emits the bits of this Code in order, at most 64 at a time.
func (hc Code) writeTo(w BitWriter) error {
	remaining := hc.Size
	for _, word := range hc.words {
		if remaining == 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(word>>(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
