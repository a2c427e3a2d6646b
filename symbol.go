package huf

import (
	"math"
)

// NumSymbols is the size of the input alphabet.  Symbols are plain bytes,
// so the alphabet is fixed at 256.
const NumSymbols = 256

// MaxFileLen is the largest input the archive format can describe.  The
// original-length field is 4 bytes wide, which caps inputs at 4 GiB - 1.
const MaxFileLen = uint64(math.MaxUint32)

// SymbolFreq pairs a byte value from the input alphabet with its number
// of occurrences.  A frequency of 0 never appears as a real entry; the
// archive header reserves it for the end-of-table sentinel.
type SymbolFreq struct {
	Sym  byte
	Freq uint32
}

// lessFreqThenSym is the ordering used for every leaf-phase sort: ascending
// frequency, ties broken by ascending symbol value.  The front of a list
// sorted this way is the lowest-frequency entry.
func lessFreqThenSym(a, b SymbolFreq) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.Sym < b.Sym
}
