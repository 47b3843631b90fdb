package huff

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

const (
	// TreeMagic is the leading 32-bit value of every stream written by
	// this package.  It identifies the tree-header format.
	TreeMagic uint32 = 0xface8201

	// LegacyMagic identifies the older count-table header format.  Streams
	// that start with it are recognized, but rejected.
	LegacyMagic uint32 = 0xface8200

	magicBits = 32

	// A full binary tree with at most NumSymbols leaves has at most
	// NumSymbols-1 internal nodes.
	maxInternalNodes = NumSymbols - 1
)

// WriteHeader writes TreeMagic followed by the tree rooted at root, in
// preorder: a 0 bit for each internal node, followed by its left and then its
// right subtree; a 1 bit for each leaf, followed by its symbol in 9 bits.
func WriteHeader(w BitWriter, root *Node) error {
	if err := w.WriteBits(uint64(TreeMagic), magicBits); err != nil {
		return writeError("magic", err)
	}

	var err error
	walk(root, func(node *Node, _ Code) {
		if err != nil {
			return
		}
		if !node.IsLeaf() {
			err = w.WriteBits(0, 1)
			return
		}
		assert.Assertf(node.Symbol.IsValid(), "leaf carries invalid symbol %d", int32(node.Symbol))
		// The leading 1 bit and the symbol go out as one 10-bit group.
		err = w.WriteBits(1<<symbolBits|uint64(node.Symbol), 1+symbolBits)
	})
	if err != nil {
		return writeError("header", err)
	}
	return nil
}

// ReadHeader reads and validates TreeMagic, then reads back a tree written by
// WriteHeader.  The returned tree carries no weights.
//
// A stream that does not start with TreeMagic, or whose tree is not one
// WriteHeader could have produced, yields a *FormatError.  A stream that ends
// before the tree is complete yields a *TruncatedInputError.
//
func ReadHeader(r BitReader) (*Node, error) {
	u, err := r.ReadBits(magicBits)
	if err != nil {
		return nil, readError("magic", 0, err)
	}

	switch magic := uint32(u); magic {
	case TreeMagic:
		// pass
	case LegacyMagic:
		return nil, &FormatError{
			Magic:  magic,
			Reason: fmt.Sprintf("header %#08x is the legacy count-table format, which is not supported", magic),
		}
	default:
		return nil, &FormatError{
			Magic:  magic,
			Reason: fmt.Sprintf("illegal header starts with %#08x", magic),
		}
	}

	return readTree(r)
}

func readTree(r BitReader) (*Node, error) {
	var (
		root        *Node
		stack       []*Node
		seen        [NumSymbols]bool
		numInternal int
		bitsRead    uint64
	)

	// stack holds the internal nodes still missing a right child, deepest
	// last.  The tree is complete once the root has been read and the
	// stack has drained.
	for root == nil || len(stack) != 0 {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, readError("header", bitsRead, err)
		}
		bitsRead++

		node := &Node{Symbol: InvalidSymbol}
		if bit == 1 {
			u, err := r.ReadBits(symbolBits)
			if err != nil {
				return nil, readError("header", bitsRead, err)
			}
			bitsRead += symbolBits

			sym := Symbol(u)
			if !sym.IsValid() {
				return nil, headerError("leaf symbol %d is out of range", u)
			}
			if seen[sym] {
				return nil, headerError("duplicate leaf for symbol %v", sym)
			}
			seen[sym] = true
			node.Symbol = sym
		} else {
			numInternal++
			if numInternal > maxInternalNodes {
				return nil, headerError("more than %d internal nodes", maxInternalNodes)
			}
		}

		if root == nil {
			root = node
		} else {
			parent := stack[len(stack)-1]
			if parent.Left == nil {
				parent.Left = node
			} else {
				parent.Right = node
				stack[len(stack)-1] = nil
				stack = stack[:len(stack)-1]
			}
		}

		if bit == 0 {
			stack = append(stack, node)
		}
	}

	if !seen[EOF] {
		return nil, headerError("tree has no EOF leaf")
	}
	return root, nil
}

func headerError(format string, args ...interface{}) error {
	return &FormatError{
		Magic:  TreeMagic,
		Reason: "bad tree header: " + fmt.Sprintf(format, args...),
	}
}
