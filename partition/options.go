package partition

import (
	"github.com/yeqown/crapwow/hash"
)

type Option func(*partitionerOptions)

type partitionerOptions struct {
	resolver    Resolver
	pickBuilder Builder

	// seed and hashFunc configure the default rendezvous picker, they are
	// ignored once WithPickBuilder is used.
	seed     uint64
	hashFunc hash.HashFunc
}

func newPartitionerOptions() *partitionerOptions {
	return &partitionerOptions{
		resolver: defaultResolver{},
	}
}

// builder returns the configured Builder, or a rendezvous Builder over the
// configured hash function.
func (o *partitionerOptions) builder() Builder {
	if o.pickBuilder != nil {
		return o.pickBuilder
	}
	if o.hashFunc != nil {
		return NewRendezvousPickBuilderWithHash(o.hashFunc)
	}

	return NewRendezvousPickBuilder(o.seed)
}

// WithResolver sets the resolver to resolve the given node list
// to a list of Node.
func WithResolver(r Resolver) Option {
	return func(o *partitionerOptions) {
		if r == nil {
			return
		}

		o.resolver = r
	}
}

// WithPickBuilder sets the pickBuilder to build a Picker from
// a list of Node. Default is a rendezvous picker.
func WithPickBuilder(b Builder) Option {
	return func(o *partitionerOptions) {
		if b == nil {
			return
		}

		o.pickBuilder = b
	}
}

// WithSeed sets the CrapWow seed of the default picker. Default is 0.
//
// Seeds that differ only in a few low bits may score keys identically, use
// a random 64-bit value when seeds must differ.
func WithSeed(seed uint64) Option {
	return func(o *partitionerOptions) {
		o.seed = seed
	}
}

// WithHashFunc replaces CrapWow in the default picker.
func WithHashFunc(h hash.HashFunc) Option {
	return func(o *partitionerOptions) {
		if h == nil {
			return
		}

		o.hashFunc = h
	}
}
