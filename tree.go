package huff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// Node is one node of a Huffman tree.
//
// A Node is a leaf iff both Left and Right are nil; an internal Node always
// has both.  Each Node is owned by exactly one parent.  In a tree built by
// BuildTree, the Weight of an internal Node is the sum of its children's.
// Trees read back from a header carry no weights.
type Node struct {
	Weight uint64
	Symbol Symbol
	Left   *Node
	Right  *Node

	// seq is the creation order, used to break ties between equal weights.
	seq uint32
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaf is a leaf symbol together with its depth in the tree, which is also
// the bit length of its code.
type Leaf struct {
	Symbol Symbol
	Depth  int
}

// BuildTree builds the Huffman tree for the given counts.
//
// One leaf is created per literal with a non-zero count, in ascending symbol
// order, followed by one EOF leaf of weight 1.  The two lightest nodes are
// then repeatedly merged into a new internal node, lighter node on the left.
// Ties between equal weights go to the node created first, so leaves win
// over internal nodes of the same weight and older internal nodes win over
// newer ones.
//
// For empty input the tree is a single EOF leaf.
//
func BuildTree(ft *FrequencyTable) *Node {
	nodes := make([]*Node, 0, NumSymbols)
	var seq uint32
	for b, count := range ft {
		if count != 0 {
			nodes = append(nodes, &Node{Weight: count, Symbol: Symbol(b), seq: seq})
			seq++
		}
	}
	nodes = append(nodes, &Node{Weight: 1, Symbol: EOF, seq: seq})
	seq++

	h := nodeHeap{nodes}
	h.Init()

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Weight: saturatingAdd(left.Weight, right.Weight),
			Symbol: InvalidSymbol,
			Left:   left,
			Right:  right,
			seq:    seq,
		})
		seq++
	}

	return heap.Pop(&h).(*Node)
}

// Leaves returns every leaf of the tree in preorder (left to right).
func (n *Node) Leaves() []Leaf {
	var out []Leaf
	walk(n, func(node *Node, path Code) {
		if node.IsLeaf() {
			out = append(out, Leaf{Symbol: node.Symbol, Depth: int(path.Size)})
		}
	})
	return out
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in preorder.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	walk(n, func(node *Node, path Code) {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\t%s = %v {weight %d}\n", path, node.Symbol, node.Weight)
		} else {
			fmt.Fprintf(&buf, "\t%s = {weight %d}\n", path, node.Weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node of the tree rooted at root in preorder, passing the
// path from root to that node.
func walk(root *Node, visit func(node *Node, path Code)) {
	visit(root, Code{})
	if root.IsLeaf() {
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed, so the stack never grows deeper than
	// the longest code.

	type stackItem struct {
		node *Node
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, 2*log2uint32(NumSymbols))

	processChild := func(child *Node, path Code) {
		visit(child, path)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child, path: path})
		}
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.path.Append(0))
		case 1:
			processChild(top.node.Right, top.path.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
