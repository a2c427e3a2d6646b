package huf

import (
	"errors"
)

// ErrMalformedArchive indicates that a stream handed to Decompress is not
// a structurally valid archive: the header ended before the sentinel, the
// length field is missing, or the bitstream ran out before the stored
// number of symbols could be decoded.  Detection is opportunistic; a
// corrupted archive that happens to stay within these bounds decodes to
// garbage rather than an error.
var ErrMalformedArchive = errors.New("malformed archive")

// ErrTooLarge indicates that an input exceeds the 4-byte length field of
// the archive format.
var ErrTooLarge = errors.New("input too large for archive format")
