package crapwow

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is the cause of the panic raised when a word read would
	// cross the end of the input.
	ErrOutOfRange = errors.New("read out of range")
	// ErrInvalidAvailable is the cause of the panic raised when a partial read
	// is asked for a byte count it does not support.
	ErrInvalidAvailable = errors.New("invalid available byte count")

	// ErrVectorMismatch is reported by Verify for every reference vector
	// whose computed value differs from the pinned one.
	ErrVectorMismatch = errors.New("reference vector mismatch")
)
