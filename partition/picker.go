package partition

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/yeqown/crapwow/hash"
)

// Resolver is responsible for resolving a given node list
// to a list of Node, and also support custom formats.
type Resolver interface {
	Resolve(nodes string) ([]*Node, error)
}

// Picker is responsible for picking the Node a key belongs to.
type Picker interface {
	Pick(nodes []*Node, key []byte) (*Node, error)
}

// Builder is responsible for building a Picker from a given list of Node.
type Builder interface {
	Build(nodes []*Node) Picker
}

// The defaultResolver is the default implementation of Resolver.
// It splits the given list on commas, so "a,b,c" resolves to three nodes
// named a, b and c with priority 0, 1 and 2.
// Blank entries are skipped, repeated names are rejected.
type defaultResolver struct{}

func (r defaultResolver) Resolve(nodes string) ([]*Node, error) {
	if strings.TrimSpace(nodes) == "" {
		return nil, errors.Wrap(ErrInvalidNode, "empty node list")
	}

	names := strings.Split(nodes, ",")
	result := make([]*Node, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	var merr *multierror.Error
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			merr = multierror.Append(merr, errors.Wrap(ErrDuplicateNode, name))
			continue
		}
		seen[name] = struct{}{}

		result = append(result, NewNode(name, len(result)))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, errors.Wrap(ErrInvalidNode, "no available node")
	}

	return result, nil
}

// The moduloPicker picks nodes[hash(key) % len(nodes)]. It is the cheapest
// picker, but almost every key moves when the node count changes.
type moduloPicker struct {
	hash hash.HashFunc
}

func (p *moduloPicker) Pick(nodes []*Node, key []byte) (*Node, error) {
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoNode
	}
	if n == 1 {
		return nodes[0], nil
	}

	sum := p.hash.Hash(key)
	return nodes[sum%uint64(n)], nil
}

type moduloPickBuilder struct {
	hash hash.HashFunc
}

// NewModuloPickBuilder creates a modulo Builder hashing keys with CrapWow and
// the given seed.
func NewModuloPickBuilder(seed uint64) Builder {
	return moduloPickBuilder{
		hash: hash.NewCrapWow(seed),
	}
}

// NewModuloPickBuilderWithHash creates a modulo Builder with the given hash function.
// A nil h falls back to CrapWow seeded with 0.
func NewModuloPickBuilderWithHash(h hash.HashFunc) Builder {
	if h == nil {
		h = hash.NewCrapWow(0)
	}

	return moduloPickBuilder{
		hash: h,
	}
}

func (b moduloPickBuilder) Build(_ []*Node) Picker {
	return &moduloPicker{
		hash: b.hash,
	}
}

// The rendezvousPicker is the implementation of Picker using rendezvous hash algorithm.
// It is also known as HRW (Highest Random Weight) hash algorithm: every node is
// scored for the key and the highest score wins.
//
// Its advantage is that if one node goes offline, only the keys that node was
// winning move, the other keys stay on their node. With the modulo picker about
// (n-1)/n of all keys move instead.
type rendezvousPicker struct {
	hash hash.HashFunc
}

func (p *rendezvousPicker) Pick(nodes []*Node, key []byte) (*Node, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNode
	}

	highest := uint64(0)
	var winner int

	for idx, node := range nodes {
		score := hash.Score(p.hash, node.shortcut(), key)

		if idx == 0 || score > highest {
			highest = score
			winner = idx
		} else if score == highest {
			// the score can decide the winner almost always, on a tie the
			// higher priority keeps the result stable.
			if node.Priority > nodes[winner].Priority {
				winner = idx
			}
		}
	}

	return nodes[winner], nil
}

type rendezvousPickBuilder struct {
	hash hash.HashFunc
}

// NewRendezvousPickBuilder creates a new Builder scoring with CrapWow and the given seed.
func NewRendezvousPickBuilder(seed uint64) Builder {
	return rendezvousPickBuilder{
		hash: hash.NewCrapWow(seed),
	}
}

// NewRendezvousPickBuilderWithHash creates a new Builder with the given hash function.
func NewRendezvousPickBuilderWithHash(h hash.HashFunc) Builder {
	if h == nil {
		h = hash.NewCrapWow(0)
	}

	return rendezvousPickBuilder{
		hash: h,
	}
}

func (b rendezvousPickBuilder) Build(_ []*Node) Picker {
	return &rendezvousPicker{
		hash: b.hash,
	}
}
