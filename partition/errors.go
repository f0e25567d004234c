package partition

import (
	"github.com/pkg/errors"
)

var (
	ErrNoNode        = errors.New("no available node")
	ErrInvalidNode   = errors.New("invalid node")
	ErrDuplicateNode = errors.New("duplicate node")
)
