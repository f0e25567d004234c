// Package crapwow provides a 64-bit seeded implementation of the CrapWow
// non-cryptographic hash.
//
// The hash is fast and well distributed, which makes it a good fit for hash-table
// keys, partitioning and checksums over trusted data. It offers no resistance
// against an adversary choosing the input, and must never be used for security.
//
// The whole input must be available at once, there is no incremental API:
//
//	sum := crapwow.Hash([]byte("hello"), 0)
//	sum = crapwow.HashString("hello", 0) // same value
//
// All multi-byte reads are little-endian regardless of the host byte order, so
// the value of a given (data, seed) pair is stable across platforms.
//
// The hash sub-package adapts this function (and murmur3) to a common HashFunc
// interface, and the partition package uses it to map keys onto nodes.
package crapwow
