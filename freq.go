package huf

import (
	"io"
)

// FreqTable counts the occurrences of each byte value in an input stream
// and remembers the total number of bytes read.
type FreqTable struct {
	counts [NumSymbols]uint32
	total  uint64
}

// CountFrequencies consumes r to end of input, tallying every byte.
// Empty input yields an empty table with Total() == 0.
func CountFrequencies(r io.Reader) (*FreqTable, error) {
	t := new(FreqTable)
	var buf [32 * 1024]byte
	for {
		n, err := r.Read(buf[:])
		for _, sym := range buf[:n] {
			t.counts[sym]++
		}
		t.total += uint64(n)
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Count returns the number of occurrences recorded for sym.
func (t *FreqTable) Count(sym byte) uint32 {
	return t.counts[sym]
}

// Total returns the number of bytes consumed while counting.
func (t *FreqTable) Total() uint64 {
	return t.total
}

// Entries materializes one SymbolFreq per observed symbol, in ascending
// symbol order.  The caller sorts the result into frequency order before
// building the tree.
func (t *FreqTable) Entries() *List[SymbolFreq] {
	entries := NewList[SymbolFreq]()
	for sym := 0; sym < NumSymbols; sym++ {
		if c := t.counts[sym]; c != 0 {
			entries.PushBack(SymbolFreq{Sym: byte(sym), Freq: c})
		}
	}
	return entries
}
