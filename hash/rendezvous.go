package hash

// Rendezvous picks one of a fixed list of nodes for a key with the highest
// random weight algorithm: every node is scored with Score and the highest
// score wins. Removing a node only moves the keys that node was winning.
type Rendezvous struct {
	nodes [][]byte
	hash  HashFunc
}

// NewRendezvous creates a Rendezvous over nodes. A nil h scores with
// CrapWow seeded with 0.
func NewRendezvous(nodes []string, h HashFunc) *Rendezvous {
	if h == nil {
		h = NewCrapWow(0)
	}

	r := &Rendezvous{
		nodes: make([][]byte, len(nodes)),
		hash:  h,
	}
	for i, node := range nodes {
		r.nodes[i] = []byte(node)
	}

	return r
}

// Hash returns the index of the node winning key, so a Rendezvous can be used
// wherever a HashFunc producing a bucket number is expected. On a tie the later
// node wins. With no nodes it returns 0.
func (r *Rendezvous) Hash(key []byte) uint64 {
	var (
		highest uint64
		winner  int
	)

	for idx, node := range r.nodes {
		score := Score(r.hash, node, key)
		if idx == 0 || score >= highest {
			highest = score
			winner = idx
		}
	}

	return uint64(winner)
}

// Score is the weight of node for key: h applied to node followed by key.
func Score(h HashFunc, node, key []byte) uint64 {
	buf := make([]byte, 0, len(node)+len(key))
	buf = append(buf, node...)
	buf = append(buf, key...)
	return h.Hash(buf)
}
