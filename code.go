package huf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit sequence assigned to a symbol: its root-to-leaf
// path, with 0 for a left edge and 1 for a right edge.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant
	// bit of Bits is the last bit of the path, so appending an edge is
	// Bits<<1|edge and the code is emitted most-significant-first.
	//
	// 64 bits is wide enough for any code this package can build: a
	// path of depth d needs a Fibonacci-like frequency ladder summing
	// to at least F(d+2), and the 4-byte length cap stops that ladder
	// short of depth 47.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// IsPrefixOf reports whether hc is a proper or improper prefix of other.
// Codes generated from one tree are prefix-free, so this only holds for
// other == hc within a single code set.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each symbol of the alphabet to its Code.  Symbols absent
// from the input have a zero-size code.
type CodeTable struct {
	codes [NumSymbols]Code
}

// Code returns the code assigned to sym.  A zero Size means sym was not
// a leaf of the tree.
func (t *CodeTable) Code(sym byte) Code {
	return t.codes[sym]
}

// BuildCodes assigns a code to every leaf of the tree by depth-first
// traversal, descending left before right.  A single-leaf tree gets the
// one-bit code "0" rather than an empty code, so the bitstream still
// carries one bit per occurrence of the sole symbol.  A nil root yields
// an empty table.
func BuildCodes(root *Node) *CodeTable {
	t := new(CodeTable)
	if root == nil {
		return t
	}
	if root.IsLeaf() {
		t.codes[root.Sym] = MakeCode(1, 0)
		return t
	}

	type stackItem struct {
		node *Node
		path Code
	}

	// The stack holds at most one pending right sibling per level; the
	// log2 of the alphabet size is a good starting capacity.
	stack := make([]stackItem, 0, 2*log2uint32(NumSymbols))
	stack = append(stack, stackItem{root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			t.codes[top.node.Sym] = top.path
			continue
		}

		assert.Assertf(top.path.Size < 64, "code longer than 64 bits at depth %d", top.path.Size)

		// Push the right child first so the left is visited first.
		stack = append(stack, stackItem{top.node.Right, MakeCode(top.path.Size+1, top.path.Bits<<1|1)})
		stack = append(stack, stackItem{top.node.Left, MakeCode(top.path.Size+1, top.path.Bits<<1)})
	}
	return t
}

// Dump writes a programmer-readable listing of the assigned codes to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for sym := 0; sym < NumSymbols; sym++ {
		hc := t.codes[sym]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\t0x%02x = %s\n", sym, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
