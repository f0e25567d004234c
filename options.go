package crapwow

type Option func(*hasherOptions)

type hasherOptions struct {
	// seed is mixed into both accumulators. Default is 0.
	seed uint64
}

func newHasherOptions() *hasherOptions {
	return &hasherOptions{}
}

// WithSeed sets the seed the Hasher hashes with.
//
// Small seeds that differ only in a few low bits can produce the same hash
// for a given input. Draw seeds from the full 64-bit range when distinct
// seeds must give distinct hash families.
func WithSeed(seed uint64) Option {
	return func(o *hasherOptions) {
		o.seed = seed
	}
}

// Hasher binds a seed to Hash so it can be passed around as a value.
// The zero value hashes with seed 0.
type Hasher struct {
	seed uint64
}

// New creates a Hasher configured by opts.
func New(opts ...Option) Hasher {
	o := newHasherOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}

	return Hasher{seed: o.seed}
}

// Seed returns the seed of h.
func (h Hasher) Seed() uint64 { return h.seed }

// Hash returns Hash(key, h.Seed()).
func (h Hasher) Hash(key []byte) uint64 {
	return Hash(key, h.seed)
}

// HashString returns HashString(key, h.Seed()).
func (h Hasher) HashString(key string) uint64 {
	return HashString(key, h.seed)
}
