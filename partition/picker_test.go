package partition

import (
	"strconv"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeqown/crapwow/hash"
)

func newDefaultResolver() Resolver {
	return defaultResolver{}
}

func Test_defaultResolver_Resolve(t *testing.T) {
	nodes, err := newDefaultResolver().Resolve("node1,node2,node3")
	if err != nil {
		t.Fatal(err)
	}

	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}

	for i, node := range nodes {
		assert.Equal(t, "node"+strconv.Itoa(i+1), node.Name)
		assert.Equal(t, i, node.Priority)
		assert.Equal(t, 0, len(node.metadata))
	}
}

func Test_defaultResolver_Resolve_error(t *testing.T) {
	tests := []struct {
		name string
		list string

		wantErr       error
		wantNodeCount int
		wantNames     map[string]struct{}
	}{
		{
			name:    "case1: empty list",
			list:    "",
			wantErr: ErrInvalidNode,
		},
		{
			name:          "case2: loose format list",
			list:          "node1 , node2, node3,",
			wantNodeCount: 3,
			wantNames: map[string]struct{}{
				"node1": {},
				"node2": {},
				"node3": {},
			},
		},
		{
			name:    "case3: only separators",
			list:    " , ,",
			wantErr: ErrInvalidNode,
		},
		{
			name:    "case4: duplicate node",
			list:    "node1,node2,node1",
			wantErr: ErrDuplicateNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := newDefaultResolver().Resolve(tt.list)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNodeCount, len(nodes))

			for _, node := range nodes {
				assert.Contains(t, tt.wantNames, node.Name)
			}
		})
	}
}

func Test_defaultResolver_Resolve_allDuplicates(t *testing.T) {
	_, err := newDefaultResolver().Resolve("a,b,a,b,c")
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
}

func Test_moduloPicker_Pick(t *testing.T) {
	nodes, err := newDefaultResolver().Resolve("node1,node2,node3")
	require.NoError(t, err)

	tests := []struct {
		name string
		seed uint64
		key  string

		wantName string
	}{
		{name: "case1: seed 0", seed: 0, key: "key", wantName: "node2"},
		{name: "case2: seed 0", seed: 0, key: "key1", wantName: "node1"},
		{name: "case3: seed 0", seed: 0, key: "user:42", wantName: "node3"},
		{name: "case4: empty key", seed: 0, key: "", wantName: "node1"},
		{name: "case5: seed 7", seed: 7, key: "key1", wantName: "node3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picker := NewModuloPickBuilder(tt.seed).Build(nodes)
			node, err := picker.Pick(nodes, []byte(tt.key))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, node.Name)
		})
	}
}

func Test_Picker_edgeCases(t *testing.T) {
	builders := map[string]Builder{
		"modulo":     NewModuloPickBuilder(0),
		"rendezvous": NewRendezvousPickBuilder(0),
		"nil hash":   NewRendezvousPickBuilderWithHash(nil),
		"murmur3":    NewModuloPickBuilderWithHash(hash.NewMurmur3(0)),
	}

	for name, builder := range builders {
		t.Run(name, func(t *testing.T) {
			picker := builder.Build(nil)

			_, err := picker.Pick(nil, []byte("key"))
			assert.True(t, errors.Is(err, ErrNoNode))

			only := NewNode("only", 0)
			node, err := picker.Pick([]*Node{only}, []byte("key"))
			assert.NoError(t, err)
			assert.Equal(t, only, node)
		})
	}
}

func Test_rendezvousPicker_Pick_stable(t *testing.T) {
	nodesBefore, err := newDefaultResolver().Resolve("node1,node2,node3,node4")
	require.NoError(t, err)

	picker := NewRendezvousPickBuilder(120).Build(nodesBefore)

	// mock node2 going down; the other nodes keep their priority
	nodesAfter := []*Node{nodesBefore[0], nodesBefore[2], nodesBefore[3]}

	moved := 0
	for i := 0; i < 1000; i++ {
		key := []byte("key" + strconv.Itoa(i))

		before, err := picker.Pick(nodesBefore, key)
		require.NoError(t, err)
		after, err := picker.Pick(nodesAfter, key)
		require.NoError(t, err)

		if before.Name == "node2" {
			moved++
			continue
		}
		assert.Equal(t, before, after, "key %s moved without its node leaving", key)
	}

	assert.InDelta(t, 250, moved, 100)
}

// constHash scores every node the same.
type constHash struct{}

func (constHash) Hash(_ []byte) uint64 { return 1 }

func Test_rendezvousPicker_Pick_tie(t *testing.T) {
	nodes := []*Node{NewNode("low", 0), NewNode("high", 5), NewNode("mid", 3)}
	picker := NewRendezvousPickBuilderWithHash(constHash{}).Build(nodes)

	node, err := picker.Pick(nodes, []byte("key"))
	assert.NoError(t, err)
	assert.Equal(t, "high", node.Name)
}
