// Package partition maps keys onto a set of nodes with CrapWow, either by
// modulo or by rendezvous (highest random weight) hashing.
//
//	p, err := partition.New("cache-1,cache-2,cache-3")
//	if err != nil {
//		return err
//	}
//	node, err := p.PickString("user:42")
package partition

import (
	"github.com/pkg/errors"
)

// Partitioner resolves a node list once and picks nodes for keys. It is
// immutable after New and safe for concurrent use.
type Partitioner struct {
	nodes  []*Node
	picker Picker
}

// New resolves nodes and builds the picker configured by opts.
func New(nodes string, opts ...Option) (*Partitioner, error) {
	o := newPartitionerOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}

	resolved, err := o.resolver.Resolve(nodes)
	if err != nil {
		return nil, errors.Wrap(err, "resolve nodes")
	}
	if len(resolved) == 0 {
		return nil, errors.Wrap(ErrNoNode, "resolver returned no node")
	}

	return &Partitioner{
		nodes:  resolved,
		picker: o.builder().Build(resolved),
	}, nil
}

// Nodes returns a copy of the resolved nodes.
func (p *Partitioner) Nodes() []*Node {
	nodes := make([]*Node, len(p.nodes))
	copy(nodes, p.nodes)
	return nodes
}

// Pick returns the node key belongs to.
func (p *Partitioner) Pick(key []byte) (*Node, error) {
	return p.picker.Pick(p.nodes, key)
}

// PickString is Pick for a string key.
func (p *Partitioner) PickString(key string) (*Node, error) {
	return p.Pick([]byte(key))
}
