package crapwow

const (
	loMask = 0x00000000ffffffff

	// M and N are the CrapWow 64-bit multipliers.
	M uint64 = 0x95b47aa3355ba1a1
	N uint64 = 0x8a970be7488fda55

	mLo = M & loMask
	mHi = M >> 32
	nLo = N & loMask
	nHi = N >> 32
)

// mul splits a and b into 32-bit halves and multiplies them schoolbook style.
// lo is the low 64 bits of a*b. hi adds the carry lane to aH*bH but not the
// high halves of the two cross products, which is how CrapWow defines it.
func mul(aL, aH, bL, bH uint64) (lo, hi uint64) {
	r1 := aL * bL
	r2 := aH * bL
	r3 := aL * bH
	rM := r1>>32 + r2&loMask + r3&loMask

	lo = r1&loMask | (rM&loMask)<<32
	hi = aH*bH + rM>>32
	return lo, hi
}

// state holds the two accumulators of a single Hash call.
type state struct {
	h uint64
	k uint64
}

// mixb is cwfold(x, N, h, k).
func (s *state) mixb(x uint64) {
	lo, hi := mul(x&loMask, x>>32, nLo, nHi)
	s.h ^= lo
	s.k ^= hi
}

// mixa is cwfold(y, M, k, h), note the swapped accumulators.
func (s *state) mixa(y uint64) {
	lo, hi := mul(y&loMask, y>>32, mLo, mHi)
	s.k ^= lo
	s.h ^= hi
}
