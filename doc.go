// Package huf implements a byte-oriented Huffman archive codec.
//
// Compress replaces each 8-bit symbol of the input with a variable-length
// code derived from the symbol frequencies, and stores the frequency table
// alongside the packed bitstream so that Decompress can rebuild the
// identical code tree and reverse the transform losslessly.
//
// Archive layout (all multi-byte integers little-endian):
//
//     [ symbol(1 byte) | frequency(4 bytes) ]*   one entry per distinct symbol
//     sentinel entry with frequency 0
//     original length in bytes (4 bytes)
//     packed bitstream, MSB-first per byte, zero-padded to a byte boundary
//
// The sentinel is recognized by its zero frequency, never by its symbol
// byte, so the byte value 0x00 is an ordinary symbol.  The stored length
// caps archives at 4 GiB of original data.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huf
