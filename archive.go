package huf

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// freqEntrySize is the width of one header record: a symbol byte followed
// by a 4-byte little-endian frequency.
const freqEntrySize = 1 + 4

// Compress reads the whole of r, writes the archive form of its content
// to w, and returns the first error encountered.  The input is read
// twice: once to count frequencies and once to emit the bitstream, so r
// must be seekable.  Inputs larger than MaxFileLen fail with ErrTooLarge.
//
// Compression is deterministic: the same input always produces a
// byte-identical archive.
func Compress(r io.ReadSeeker, w io.Writer) error {
	table, err := CountFrequencies(r)
	if err != nil {
		return fmt.Errorf("huf: counting frequencies: %w", err)
	}
	if table.Total() > MaxFileLen {
		return fmt.Errorf("huf: input is %d bytes: %w", table.Total(), ErrTooLarge)
	}

	entries := table.Entries()
	entries.Sort(lessFreqThenSym)

	bw := bufio.NewWriter(w)
	if err := writeFreqTable(bw, entries, uint32(table.Total())); err != nil {
		return fmt.Errorf("huf: writing frequency table: %w", err)
	}

	// BuildTree drains the entry list, so the header above must be
	// written first, in the sorted order the decoder will re-derive.
	codes := BuildCodes(BuildTree(entries))

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("huf: rewinding input: %w", err)
	}

	in := bufio.NewReader(r)
	out := bitio.NewWriter(bw)
	for {
		sym, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("huf: reading input: %w", err)
		}
		hc := codes.Code(sym)
		if hc.Size == 0 {
			return fmt.Errorf("huf: no code for symbol 0x%02x: input changed between passes", sym)
		}
		if err := out.WriteBits(hc.Bits, hc.Size); err != nil {
			return fmt.Errorf("huf: writing bitstream: %w", err)
		}
	}
	// Close flushes the final partial byte, zero-padded in the low
	// bits; with no pending bits (empty input) it writes nothing.
	if err := out.Close(); err != nil {
		return fmt.Errorf("huf: flushing bitstream: %w", err)
	}
	return bw.Flush()
}

// Decompress reads an archive from r and writes the reconstructed
// original content to w.  Structural damage (truncated header, missing
// sentinel or length field, bitstream too short for the stored length)
// fails with an error wrapping ErrMalformedArchive.
func Decompress(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	entries, fileLen, err := readFreqTable(br)
	if err != nil {
		return err
	}
	if fileLen == 0 {
		return nil
	}
	if entries.Len() == 0 {
		return fmt.Errorf("huf: length %d with empty frequency table: %w", fileLen, ErrMalformedArchive)
	}

	// Re-sort the parsed table and rebuild: same comparator, same
	// merge order, same tree as the compressor's.
	entries.Sort(lessFreqThenSym)
	root := BuildTree(entries)

	out := bufio.NewWriter(w)
	bits := bitio.NewReader(br)
	for emitted := uint32(0); emitted < fileLen; emitted++ {
		node := root
		if node.IsLeaf() {
			// Single-symbol alphabet: the encoder spent one bit
			// per occurrence, so consume it to validate the body.
			if _, err := bits.ReadBool(); err != nil {
				return fmt.Errorf("huf: bitstream ended after %d of %d symbols: %w", emitted, fileLen, ErrMalformedArchive)
			}
		}
		for !node.IsLeaf() {
			bit, err := bits.ReadBool()
			if err != nil {
				return fmt.Errorf("huf: bitstream ended after %d of %d symbols: %w", emitted, fileLen, ErrMalformedArchive)
			}
			if bit {
				node = node.Right
			} else {
				node = node.Left
			}
		}
		if err := out.WriteByte(node.Sym); err != nil {
			return fmt.Errorf("huf: writing output: %w", err)
		}
	}
	// Any bits left over are the trailing pad; ignore them.
	return out.Flush()
}

// writeFreqTable emits the header: one record per entry in list order,
// the zero-frequency sentinel, then the original length.
func writeFreqTable(w io.Writer, entries *List[SymbolFreq], fileLen uint32) error {
	assert.Assertf(entries.Len() <= NumSymbols, "%d entries for a %d-symbol alphabet", entries.Len(), NumSymbols)

	var buf [freqEntrySize]byte
	for e := entries.Front(); e != nil; e = e.Next() {
		buf[0] = e.Value.Sym
		binary.LittleEndian.PutUint32(buf[1:], e.Value.Freq)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	buf = [freqEntrySize]byte{}
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], fileLen)
	_, err := w.Write(lenBuf[:])
	return err
}

// readFreqTable parses header records until the sentinel, then the
// original length.  The sentinel is the record with frequency 0; the
// symbol byte is not consulted, so 0x00 works as ordinary data.
func readFreqTable(r io.Reader) (*List[SymbolFreq], uint32, error) {
	entries := NewList[SymbolFreq]()
	var seen [NumSymbols]bool
	var buf [freqEntrySize]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, 0, fmt.Errorf("huf: frequency table ends before sentinel: %w", ErrMalformedArchive)
			}
			return nil, 0, fmt.Errorf("huf: reading frequency table: %w", err)
		}
		freq := binary.LittleEndian.Uint32(buf[1:])
		if freq == 0 {
			break
		}
		sym := buf[0]
		if seen[sym] {
			return nil, 0, fmt.Errorf("huf: duplicate frequency entry for 0x%02x: %w", sym, ErrMalformedArchive)
		}
		seen[sym] = true
		entries.PushBack(SymbolFreq{Sym: sym, Freq: freq})
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, 0, fmt.Errorf("huf: missing length field: %w", ErrMalformedArchive)
		}
		return nil, 0, fmt.Errorf("huf: reading length field: %w", err)
	}
	return entries, binary.LittleEndian.Uint32(lenBuf[:]), nil
}
