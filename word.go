package crapwow

import (
	"github.com/pkg/errors"
)

// getU32LE reads the 4 bytes starting at index as a little-endian uint32.
func getU32LE(data []byte, index int) uint32 {
	if index < 0 || index+4 > len(data) {
		panic(errors.Wrapf(ErrOutOfRange, "u32 at index %d, length %d", index, len(data)))
	}

	return uint32(data[index]) |
		uint32(data[index+1])<<8 |
		uint32(data[index+2])<<16 |
		uint32(data[index+3])<<24
}

// getPartialU32LE reads available (1, 2 or 3) bytes starting at index as a
// little-endian uint32, the missing high bytes being zero.
func getPartialU32LE(data []byte, index, available int) uint32 {
	if available < 1 || available > 3 {
		panic(errors.Wrapf(ErrInvalidAvailable, "partial u32 wants 1..3 bytes, got %d", available))
	}
	if index < 0 || index+available > len(data) {
		panic(errors.Wrapf(ErrOutOfRange, "partial u32 of %d bytes at index %d, length %d",
			available, index, len(data)))
	}

	v := uint32(data[index])
	if available > 1 {
		v |= uint32(data[index+1]) << 8
		if available > 2 {
			v |= uint32(data[index+2]) << 16
		}
	}

	return v
}

// getPartialU64LE gathers available (1..7) bytes starting at index into an
// uint64.
//
// With 5 bytes or more the first 4 bytes form a word which is shifted up by the
// width of the remaining bytes, and those remaining bytes fill the vacated low
// bits. This is NOT a plain little-endian read of the same bytes, e.g. the bytes
// 01 02 03 04 05 gather to 0x0403020105 rather than 0x0504030201.
func getPartialU64LE(data []byte, index, available int) uint64 {
	if available < 1 || available > 7 {
		panic(errors.Wrapf(ErrInvalidAvailable, "partial u64 wants 1..7 bytes, got %d", available))
	}

	if available < 4 {
		return uint64(getPartialU32LE(data, index, available))
	}

	l := uint64(getU32LE(data, index))
	rest := available - 4
	if rest == 0 {
		return l
	}

	l <<= uint(rest) << 3
	l |= uint64(getPartialU32LE(data, index+4, rest))
	return l
}
