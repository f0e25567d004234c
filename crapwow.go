package crapwow

import (
	"unsafe"
)

// Hash returns the 64-bit CrapWow hash of data with the given seed.
//
// Any length is accepted, including zero. Hash does not modify or retain data
// and is safe for concurrent use.
func Hash(data []byte, seed uint64) uint64 {
	length := len(data)
	s := state{
		h: seed,
		k: uint64(length) + seed + N,
	}

	pos, n := 0, length
	for n >= 16 {
		s.mixb(getU64LE(data, pos))
		pos += 8
		s.mixa(getU64LE(data, pos))
		pos += 8
		n -= 16
	}

	if n >= 8 {
		s.mixb(getU64LE(data, pos))
		pos += 8
		n -= 8
	}

	if n > 0 {
		s.mixa(getPartialU64LE(data, pos, n))
	}

	s.mixb(s.h ^ (s.k + N))
	return s.h ^ s.k
}

// HashString returns Hash of the bytes of str. Text is hashed as its UTF-8
// encoding, which is what a Go string holds.
func HashString(str string, seed uint64) uint64 {
	if len(str) == 0 {
		return Hash(nil, seed)
	}

	// Hash only reads, so the string memory can be used in place.
	return Hash(unsafe.Slice(unsafe.StringData(str), len(str)), seed)
}

// getU64LE reads 8 bytes as two little-endian words, the first being the low one.
func getU64LE(data []byte, index int) uint64 {
	return uint64(getU32LE(data, index)) | uint64(getU32LE(data, index+4))<<32
}
