package huff

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in a tree to its Code.  It is built once
// per compression by NewCodeTable and never modified afterward.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize uint16
	maxSize uint16
}

// NewCodeTable walks the tree rooted at root and records one Code per leaf:
// the left(0)/right(1) choices from root to that leaf.
//
// If root is itself a leaf (empty input), its Code is empty.  Encoding that
// Code writes no bits at all.
//
func NewCodeTable(root *Node) *CodeTable {
	ct := new(CodeTable)
	walk(root, func(node *Node, path Code) {
		if !node.IsLeaf() {
			return
		}
		sym := node.Symbol
		ct.codes[sym] = path
		ct.present[sym] = true
		if ct.count == 0 {
			ct.minSize = path.Size
			ct.maxSize = path.Size
		} else if ct.minSize > path.Size {
			ct.minSize = path.Size
		} else if ct.maxSize < path.Size {
			ct.maxSize = path.Size
		}
		ct.count++
	})
	return ct
}

// Lookup returns the Code for sym, and false if sym has no entry.
func (ct *CodeTable) Lookup(sym Symbol) (Code, bool) {
	if !sym.IsValid() || !ct.present[sym] {
		return Code{}, false
	}
	return ct.codes[sym], true
}

// Len returns the number of symbols with an entry.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() uint16 {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() uint16 {
	return ct.maxSize
}

// SizeBySymbol returns the bit length for each Symbol in the alphabet, 0 for
// symbols without an entry.
func (ct *CodeTable) SizeBySymbol() []uint16 {
	out := make([]uint16, NumSymbols)
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		out[sym] = ct.codes[sym].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// entries to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if ct.present[sym] {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", sym, ct.codes[sym])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
