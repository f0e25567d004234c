package crapwow

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Vector is a pinned (input, seed) -> hash value.
type Vector struct {
	Name string
	Data []byte
	Seed uint64
	Want uint64
}

const altSeed = 0x0123456789abcdef

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func repeat(c byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return b
}

// Vectors returns the reference values of the algorithm. Every call returns
// fresh slices, so callers may modify them.
//
// The lengths cover each branch of the block loop: empty input, tails of 1..7
// bytes, a single 8-byte block, and one or more 16-byte blocks.
func Vectors() []Vector {
	return []Vector{
		{Name: "seq0", Data: sequence(0), Seed: 0, Want: 0xb38d4df08cc54ec4},
		{Name: "seq1", Data: sequence(1), Seed: 0, Want: 0x3ce47a1854751473},
		{Name: "seq7", Data: sequence(7), Seed: 0, Want: 0x47119ff7f230e841},
		{Name: "seq8", Data: sequence(8), Seed: 0, Want: 0xa99c5ea4eea50cfe},
		{Name: "seq9", Data: sequence(9), Seed: 0, Want: 0x4140724299d623f7},
		{Name: "seq15", Data: sequence(15), Seed: 0, Want: 0x9c77ca520f5d52e7},
		{Name: "seq16", Data: sequence(16), Seed: 0, Want: 0x62d4a34ff03ded3d},
		{Name: "seq17", Data: sequence(17), Seed: 0, Want: 0x38a4164fb16d4e3f},
		{Name: "seq31", Data: sequence(31), Seed: 0, Want: 0x3d947ba2e2e5fe1e},
		{Name: "seq32", Data: sequence(32), Seed: 0, Want: 0x537e65c0c5fbb7dc},
		{Name: "seq33", Data: sequence(33), Seed: 0, Want: 0xfe04b8b241dfd995},

		{Name: "seq0/alt", Data: sequence(0), Seed: altSeed, Want: 0x94affb63ced8d79d},
		{Name: "seq1/alt", Data: sequence(1), Seed: altSeed, Want: 0x01d8ef1877a90a64},
		{Name: "seq7/alt", Data: sequence(7), Seed: altSeed, Want: 0x482645dd45e08943},
		{Name: "seq8/alt", Data: sequence(8), Seed: altSeed, Want: 0x55b79567d14051f1},
		{Name: "seq9/alt", Data: sequence(9), Seed: altSeed, Want: 0x2f7aca05705bd9f1},
		{Name: "seq15/alt", Data: sequence(15), Seed: altSeed, Want: 0x781dc48a2397ddf3},
		{Name: "seq16/alt", Data: sequence(16), Seed: altSeed, Want: 0xefe585718757b6f2},
		{Name: "seq17/alt", Data: sequence(17), Seed: altSeed, Want: 0xdc8133263fcee50e},
		{Name: "seq31/alt", Data: sequence(31), Seed: altSeed, Want: 0xc878df9d4e56f296},

		// high bits set in every byte
		{Name: "ff1", Data: repeat(0xff, 1), Seed: 0, Want: 0xa482a64b93dc433a},
		{Name: "ff4", Data: repeat(0xff, 4), Seed: 0, Want: 0xfdccf53c4c812cd9},
		{Name: "ff5", Data: repeat(0xff, 5), Seed: 0, Want: 0x78ba8d193e8e77a9},
		{Name: "ff7", Data: repeat(0xff, 7), Seed: 0, Want: 0x185cf29593aa594b},
		{Name: "ff8", Data: repeat(0xff, 8), Seed: 0, Want: 0x9d3bea1cc183933e},
		{Name: "ff15", Data: repeat(0xff, 15), Seed: 0, Want: 0x3a0e00bd16fddc99},
		{Name: "ff16", Data: repeat(0xff, 16), Seed: 0, Want: 0x0b02878dc229d84c},
		{Name: "ff31", Data: repeat(0xff, 31), Seed: 0, Want: 0x08468bf66ad43e12},

		{Name: "hello", Data: []byte("hello"), Seed: 0, Want: 0x4db6725cda86e694},
		{Name: "hello/42", Data: []byte("hello"), Seed: 42, Want: 0xfad5f125e881b0c7},
		{Name: "fox", Data: []byte("The quick brown fox jumps over the lazy dog"), Seed: 0, Want: 0x83e0314fd494654d},
		{Name: "fox/42", Data: []byte("The quick brown fox jumps over the lazy dog"), Seed: 42, Want: 0x3a91f3fb4d8a3a12},
		{Name: "utf8", Data: []byte("héllo wörld ☃"), Seed: 0, Want: 0x6c7b402e0a8b41cb},
		{Name: "utf8/42", Data: []byte("héllo wörld ☃"), Seed: 42, Want: 0x32aa519b2035269f},
	}
}

// Verify hashes every reference vector and reports each mismatch. A nil result
// means this build computes the algorithm bit for bit.
func Verify() error {
	var result *multierror.Error
	for _, v := range Vectors() {
		if got := Hash(v.Data, v.Seed); got != v.Want {
			result = multierror.Append(result,
				errors.Wrapf(ErrVectorMismatch, "%s: got %#016x, want %#016x", v.Name, got, v.Want))
		}
	}

	return result.ErrorOrNil()
}
