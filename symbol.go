package huff

import (
	"strconv"
)

// Symbol represents a symbol in the compressor's alphabet: the literal byte
// values 0 through 255, plus EOF.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerWord is the width of one literal symbol in the input.
	BitsPerWord = 8

	// NumLiterals is the number of literal byte values.
	NumLiterals = 1 << BitsPerWord

	// EOF is the synthetic end-of-stream symbol.  It never occurs in the
	// input; exactly one EOF leaf is present in every tree.
	EOF = Symbol(NumLiterals)

	// NumSymbols is the size of the full alphabet, including EOF.
	NumSymbols = NumLiterals + 1

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EOF

	// symbolBits is the width of a symbol in the tree header.  One bit
	// wider than BitsPerWord, so that EOF fits.
	symbolBits = BitsPerWord + 1
)

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsLiteral returns true iff this Symbol is a literal byte value.
func (sym Symbol) IsLiteral() bool {
	return sym >= 0 && sym < NumLiterals
}

// IsValid returns true iff this Symbol belongs to the alphabet.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}

// String returns "EOF" for EOF and the decimal value for any other symbol.
func (sym Symbol) String() string {
	if sym == EOF {
		return "EOF"
	}
	return strconv.FormatInt(int64(sym), 10)
}
