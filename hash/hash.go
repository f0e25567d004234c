// Package hash adapts seeded 64-bit hash functions to a single interface, so
// callers such as partition can switch algorithms without caring about seeds.
package hash

// HashFunc hashes a key to a 64-bit value.
type HashFunc interface {
	Hash(key []byte) uint64
}
