package partition

import (
	"strconv"
)

// Node is a named member of a partitioned set, e.g. a cache server or a shard.
type Node struct {
	Name string // Name of the node, unique within a set

	// Priority of the node in the set. It is used by the rendezvous picker: the
	// higher priority node wins when two nodes score the same for a key.
	//
	// By default, the priority is the position of the node in the set; the first
	// node has the lowest priority, the last node has the highest.
	//
	// If you customize the resolver, make sure the priority is unique.
	Priority int

	metadata map[string]any
}

// NewNode creates a new Node with the given name and priority.
func NewNode(name string, priority int) *Node {
	return &Node{
		Name:     name,
		Priority: priority,
		metadata: make(map[string]any, 2),
	}
}

func (n *Node) shortcut() []byte {
	return []byte(n.Name + "-" + strconv.Itoa(n.Priority))
}

// GetMetadata returns the metadata value by the given key.
func (n *Node) GetMetadata(mdKey string) any {
	return n.metadata[mdKey]
}

// Add adds the metadata key-value pair to the Node.
func (n *Node) Add(mdKey string, mdValue any) {
	if n.metadata == nil {
		n.metadata = make(map[string]any, 2)
	}

	n.metadata[mdKey] = mdValue
}

func (n *Node) String() string {
	return n.Name
}
