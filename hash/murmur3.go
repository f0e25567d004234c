package hash

import (
	"github.com/spaolacci/murmur3"
)

// Murmur3 is the first half of MurmurHash3 x64_128. murmur3 takes a 32-bit
// seed, so only the low 32 bits of the seed given to NewMurmur3 are used.
type Murmur3 struct {
	seed uint32
}

func NewMurmur3(seed uint64) *Murmur3 {
	return &Murmur3{seed: uint32(seed)}
}

func (h *Murmur3) Hash(key []byte) uint64 {
	return murmur3.Sum64WithSeed(key, h.seed)
}
