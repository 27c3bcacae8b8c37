package pagechecksum

import (
	"encoding/binary"

	"github.com/pgbackrest/corert/errkit"
)

// pdUpperOffset and pdLsn* offsets mirror PageHeaderData: an 8-byte LSN
// (xlogid, xrecoff, both big-endian halves stored as native uint32s),
// then pd_checksum, pd_flags, pd_lower, pd_upper, each uint16.
const (
	pdLsnXlogidOffset  = 0
	pdLsnXrecoffOffset = 4
	pdUpperOffset      = 14
)

// PageValid reports whether page's checksum matches, a new (all-zero
// pd_upper) page is exempt, or the page's LSN is at or after
// (ignoreWalID, ignoreWalOffset) - meaning it may have been torn by a
// concurrent write during backup and is not expected to check out. The
// LSN test compares the two halves independently, not as one 64-bit
// value: it is not a lexicographic compare, matching pageChecksumTest.
func PageValid(page []byte, blockNo uint32, pageSize uint32, ignoreWalID, ignoreWalOffset uint32) bool {
	if len(page) < int(pageSize) {
		errkit.Throw(errkit.AssertError, "page shorter than page size")
	}

	if binary.LittleEndian.Uint16(page[pdUpperOffset:]) == 0 {
		return true
	}

	xlogid := binary.LittleEndian.Uint32(page[pdLsnXlogidOffset:])
	xrecoff := binary.LittleEndian.Uint32(page[pdLsnXrecoffOffset:])
	if xlogid >= ignoreWalID && xrecoff >= ignoreWalOffset {
		return true
	}

	stored := binary.LittleEndian.Uint16(page[pdChecksumOffset:])
	return stored == Checksum(page, blockNo, pageSize)
}

// BufferValid checks every page-sized slice of buf in turn, starting at
// block number blockNoStart. It throws FormatError if buf's length is
// not an exact, nonzero multiple of pageSize.
func BufferValid(buf []byte, blockNoStart uint32, pageSize uint32, ignoreWalID, ignoreWalOffset uint32) bool {
	if pageSize == 0 || len(buf)%int(pageSize) != 0 || len(buf)/int(pageSize) == 0 {
		errkit.Throwf(errkit.FormatError, "buffer size %d, page size %d are not divisible", len(buf), pageSize)
	}

	pages := len(buf) / int(pageSize)
	for i := 0; i < pages; i++ {
		page := buf[i*int(pageSize) : (i+1)*int(pageSize)]
		if !PageValid(page, blockNoStart+uint32(i), pageSize, ignoreWalID, ignoreWalOffset) {
			return false
		}
	}
	return true
}
