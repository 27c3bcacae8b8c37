// Package pagechecksum computes and validates PostgreSQL data page
// checksums: a 32-way parallel FNV-1a variant chosen for throughput over
// cryptographic strength, ported bit-for-bit from PostgreSQL's
// checksum_impl.h (by way of pageChecksum.c).
package pagechecksum

import "encoding/binary"

// nSums is the number of parallel FNV-1a accumulators the page is split
// across; it is a fixed part of the algorithm, not a tunable - changing
// it changes the checksum result.
const nSums = 32

// fnvPrime is FNV-1a's prime multiplier.
const fnvPrime = 16777619

// baseOffsets seeds each of the nSums accumulators into a distinct
// initial state. The values are arbitrary but fixed; they must match
// byte-for-byte or no checksum will agree with a page written by
// PostgreSQL.
var baseOffsets = [nSums]uint32{
	0x5B1F36E9, 0xB8525960, 0x02AB50AA, 0x1DE66D2A, 0x79FF467A, 0x9BB9F8A3, 0x217E7CD2, 0x83E13D2C,
	0xF8D4474F, 0xE39EB970, 0x42C6AE16, 0x993216FA, 0x7B093B5D, 0x98DAFF3C, 0xF718902A, 0x0B1C9CDB,
	0xE58F764B, 0x187636BC, 0x5D7B3BB1, 0xE73DE7DE, 0x92BEC979, 0xCCA6C0B2, 0x304A0979, 0x85AA43D4,
	0x783125BB, 0x6CA8EAA2, 0xE407EAC6, 0x4B5CFC3E, 0x9FBF8C76, 0x15CA20BE, 0xF2CA9FD3, 0x959BD756,
}

// comp folds value into one of the parallel accumulators: a plain FNV-1a
// step, but with the pre-multiply value xor'd back in after a 17-bit
// right shift to fix FNV-1a's poor mixing of high-order bits.
func comp(sum, value uint32) uint32 {
	t := sum ^ value
	return t*fnvPrime ^ (t >> 17)
}

// block runs the 32-way parallel checksum over data, which must be a
// whole number of 4-byte little-endian words and should in practice be a
// full page (the header's checksum field included, since the caller is
// responsible for zeroing it first). Two trailing rounds of zero mix the
// last real word's bits before the accumulators are folded together.
func block(data []byte) uint32 {
	var sums [nSums]uint32
	sums = baseOffsets

	words := len(data) / 4
	rows := words / nSums

	for i := 0; i < rows; i++ {
		for j := 0; j < nSums; j++ {
			off := (i*nSums + j) * 4
			sums[j] = comp(sums[j], binary.LittleEndian.Uint32(data[off:]))
		}
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < nSums; j++ {
			sums[j] = comp(sums[j], 0)
		}
	}

	var result uint32
	for _, s := range sums {
		result ^= s
	}
	return result
}

// pdChecksumOffset is the byte offset of the pd_checksum field within a
// PostgreSQL page header (an 8-byte LSN, then a 2-byte checksum).
const pdChecksumOffset = 8

// Checksum computes the checksum for a PostgreSQL page of the given
// block number. page must be exactly pageSize bytes, 4-byte aligned in
// the sense that pageSize is a multiple of 4*nSums. The page's existing
// pd_checksum field is read and temporarily treated as zero for the
// computation - Checksum never mutates the caller's page.
func Checksum(page []byte, blockNo uint32, pageSize uint32) uint16 {
	data := make([]byte, pageSize)
	copy(data, page[:pageSize])
	data[pdChecksumOffset] = 0
	data[pdChecksumOffset+1] = 0

	sum := block(data)
	sum ^= blockNo

	return uint16(sum%65535) + 1
}
