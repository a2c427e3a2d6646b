package huf

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
)

// Node is a node of the Huffman tree.  A leaf carries a symbol and its
// frequency; an internal node carries two children and the sum of their
// frequencies.  Every node has exactly one parent except the root.
type Node struct {
	// Sym is the symbol held by a leaf.  Meaningless on internal nodes.
	Sym byte

	// Freq is the leaf's occurrence count, or the (saturating) sum of
	// the children's frequencies on an internal node.
	Freq uint32

	Left  *Node
	Right *Node

	// order breaks frequency ties deterministically: a leaf's order is
	// its symbol value, and internal nodes are numbered NumSymbols,
	// NumSymbols+1, ... in creation order.  Both codec directions build
	// from the same sorted leaf list, so the numbering, and therefore
	// the tree shape, is identical on both ends.
	order uint32
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the Huffman tree for the given leaf entries by
// repeatedly merging the two lowest-frequency active roots until one
// remains.  The first root removed becomes the left child, the second
// the right child.  The leaf list is drained in the process.
//
// An empty list yields a nil root.  A single entry yields that leaf as
// the root; BuildCodes still assigns it a one-bit code.
func BuildTree(leaves *List[SymbolFreq]) *Node {
	if leaves.Len() == 0 {
		return nil
	}

	h := nodeHeap{list: make([]*Node, 0, leaves.Len())}
	for leaves.Len() > 0 {
		sf := leaves.RemoveFront()
		h.list = append(h.list, &Node{Sym: sf.Sym, Freq: sf.Freq, order: uint32(sf.Sym)})
	}
	h.Init()

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)

		// Saturating addition; frequencies near MaxUint32 must not wrap.
		sum := left.Freq + right.Freq
		if sum < left.Freq {
			sum = math.MaxUint32
		}

		heap.Push(&h, &Node{Freq: sum, Left: left, Right: right, order: nextOrder})
		nextOrder++
	}
	return heap.Pop(&h).(*Node)
}

// DumpTree writes a programmer-readable rendering of the tree to the
// given writer, rotated 90 degrees so the root is at the left margin.
func DumpTree(w io.Writer, root *Node) (int64, error) {
	var buf bytes.Buffer
	dumpTree(&buf, root, 0)
	return buf.WriteTo(w)
}

func dumpTree(buf *bytes.Buffer, n *Node, depth int) {
	if n == nil {
		return
	}
	dumpTree(buf, n.Right, depth+1)
	for i := 0; i < depth; i++ {
		buf.WriteString("     ")
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%5d [0x%02x]\n", n.Freq, n.Sym)
	} else {
		fmt.Fprintf(buf, "%5d\n", n.Freq)
	}
	dumpTree(buf, n.Left, depth+1)
}

// type nodeHeap {{{

// nodeHeap is a min-heap over the active roots, ordered by (frequency,
// creation order).  The order field makes the comparison total, so the
// two popped minima are exactly the front two entries the repeated
// re-sort of the list would produce.
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
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.order < b.order
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
