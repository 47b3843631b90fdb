package huff

import (
	"github.com/chronos-tachyon/assert"
)

// Decoder walks a tree one bit at a time to turn the body of a compressed
// stream back into bytes.
type Decoder struct {
	root    *Node
	current *Node
}

// NewDecoder returns a Decoder positioned at root.
func NewDecoder(root *Node) *Decoder {
	return &Decoder{root: root, current: root}
}

// Feed advances the Decoder by one bit: left on 0, right on 1.
//
// If that lands on a leaf, Feed returns the leaf's symbol (possibly EOF) and
// moves back to the root.  Otherwise it returns InvalidSymbol and more bits
// are needed.
//
func (d *Decoder) Feed(bit uint) Symbol {
	assert.Assertf(!d.root.IsLeaf(), "Feed on a single-leaf tree")
	if bit == 0 {
		d.current = d.current.Left
	} else {
		d.current = d.current.Right
	}
	if !d.current.IsLeaf() {
		return InvalidSymbol
	}
	sym := d.current.Symbol
	d.current = d.root
	return sym
}

// Reset moves the Decoder back to the root.
func (d *Decoder) Reset() {
	d.current = d.root
}

// DecodeStream reads bits from r, writing each decoded byte to w as an 8-bit
// group, until it reaches the EOF leaf.  It returns the number of bytes
// written.
//
// If r reaches end-of-stream before the EOF leaf, DecodeStream fails with a
// *TruncatedInputError.  If the tree is a single EOF leaf (the tree of an
// empty input), there is no body to read and DecodeStream returns at once.
//
func (d *Decoder) DecodeStream(w BitWriter, r BitReader) (int64, error) {
	if d.root.IsLeaf() {
		if d.root.Symbol == EOF {
			return 0, nil
		}
		return 0, headerError("single-leaf tree for symbol %v has no EOF leaf", d.root.Symbol)
	}

	d.Reset()
	var n int64
	var bitsRead uint64
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return n, readError("body", bitsRead, err)
		}
		bitsRead++

		switch sym := d.Feed(uint(bit)); sym {
		case InvalidSymbol:
			// need more bits
		case EOF:
			return n, nil
		default:
			if err := w.WriteBits(uint64(sym), BitsPerWord); err != nil {
				return n, writeError("output", err)
			}
			n++
		}
	}
}
