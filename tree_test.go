package huf

import (
	"strings"
	"testing"
)

// leafList builds a sorted leaf list for symbols 0..len(freqs)-1; zero
// frequencies are skipped.
func leafList(freqs []uint32) *List[SymbolFreq] {
	l := NewList[SymbolFreq]()
	for sym, f := range freqs {
		if f != 0 {
			l.PushBack(SymbolFreq{Sym: byte(sym), Freq: f})
		}
	}
	l.Sort(lessFreqThenSym)
	return l
}

// depthOf returns the depth of the leaf holding sym, or -1 if absent.
func depthOf(root *Node, sym byte) int {
	if root == nil {
		return -1
	}
	if root.IsLeaf() {
		if root.Sym == sym {
			return 0
		}
		return -1
	}
	if d := depthOf(root.Left, sym); d >= 0 {
		return d + 1
	}
	if d := depthOf(root.Right, sym); d >= 0 {
		return d + 1
	}
	return -1
}

func TestBuildTreeEmpty(t *testing.T) {
	if root := BuildTree(NewList[SymbolFreq]()); root != nil {
		t.Errorf("expected nil root, got %v", root)
	}
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	l := NewList[SymbolFreq]()
	l.PushBack(SymbolFreq{Sym: 0x41, Freq: 1000})

	root := BuildTree(l)
	if root == nil || !root.IsLeaf() {
		t.Fatalf("expected a leaf root, got %v", root)
	}
	if root.Sym != 0x41 || root.Freq != 1000 {
		t.Errorf("expected leaf {0x41, 1000}, got {0x%02x, %d}", root.Sym, root.Freq)
	}
	if l.Len() != 0 {
		t.Errorf("expected the leaf list to be drained, %d left", l.Len())
	}
}

func TestBuildTreeClassic(t *testing.T) {
	// The textbook frequency set; its optimal code lengths are known.
	root := BuildTree(leafList([]uint32{5, 9, 12, 13, 16, 45}))
	if root == nil {
		t.Fatal("expected a root")
	}
	if root.Freq != 100 {
		t.Errorf("expected root frequency 100, got %d", root.Freq)
	}

	expectDepths := []int{4, 4, 3, 3, 3, 1}
	for sym, expect := range expectDepths {
		if actual := depthOf(root, byte(sym)); actual != expect {
			t.Errorf("symbol %d: expected depth %d, got %d", sym, expect, actual)
		}
	}
}

func TestBuildTreeTieBreak(t *testing.T) {
	// Four symbols of equal frequency.  Leaves merge in ascending
	// symbol order, and the two resulting internal nodes merge in
	// creation order, so the shape is fully determined.
	root := BuildTree(leafList([]uint32{1, 1, 1, 1}))
	if root == nil || root.IsLeaf() {
		t.Fatal("expected an internal root")
	}

	type probe struct {
		name string
		node *Node
		sym  byte
	}
	probes := []probe{
		{"Left.Left", root.Left.Left, 0},
		{"Left.Right", root.Left.Right, 1},
		{"Right.Left", root.Right.Left, 2},
		{"Right.Right", root.Right.Right, 3},
	}
	for _, p := range probes {
		if p.node == nil || !p.node.IsLeaf() {
			t.Errorf("%s: expected a leaf", p.name)
			continue
		}
		if p.node.Sym != p.sym {
			t.Errorf("%s: expected symbol %d, got %d", p.name, p.sym, p.node.Sym)
		}
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	freqs := []uint32{7, 7, 3, 3, 14, 1, 1, 9}

	var dumps [2]string
	for i := range dumps {
		root := BuildTree(leafList(freqs))
		var buf strings.Builder
		if _, err := DumpTree(&buf, root); err != nil {
			t.Fatalf("DumpTree failed: %v", err)
		}
		dumps[i] = buf.String()
	}
	if dumps[0] != dumps[1] {
		t.Errorf("tree construction is not deterministic:\n\tfirst:  %q\n\tsecond: %q", dumps[0], dumps[1])
	}
}

func TestDumpTree(t *testing.T) {
	l := NewList[SymbolFreq]()
	l.PushBack(SymbolFreq{Sym: 0x62, Freq: 1})
	l.PushBack(SymbolFreq{Sym: 0x61, Freq: 2})
	root := BuildTree(l)

	expect := strings.Join([]string{
		"         2 [0x61]\n",
		"    3\n",
		"         1 [0x62]\n",
	}, "")

	var buf strings.Builder
	if _, err := DumpTree(&buf, root); err != nil {
		t.Fatalf("DumpTree failed: %v", err)
	}
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
