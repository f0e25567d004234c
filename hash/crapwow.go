package hash

import (
	"github.com/yeqown/crapwow"
)

type CrapWow struct {
	seed uint64
}

func NewCrapWow(seed uint64) *CrapWow {
	return &CrapWow{seed: seed}
}

func (h *CrapWow) Hash(key []byte) uint64 {
	return crapwow.Hash(key, h.seed)
}
