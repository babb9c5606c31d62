package smallgraph_test

import (
	"testing"

	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/smallgraph"
	"github.com/stretchr/testify/require"
)

func TestLookup_TranslatesRootAcrossIsomorphicRelabelings(t *testing.T) {
	// Both graphs are the same "paw" shape (triangle + pendant), but the
	// cut vertex (degree 3) sits at local index 0 in a and local index 3
	// in b. A Table that reused the first graph's raw local root index
	// for the second, merely-isomorphic graph would hand back b's pendant
	// leaf (degree 1) instead of its cut vertex.
	a, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	b, err := graph.New(4, [][2]int{{1, 3}, {1, 2}, {2, 3}, {0, 3}})
	require.NoError(t, err)

	table := smallgraph.NewTable()

	tdA, rootA := table.Lookup(a.Full())
	require.Equal(t, 3, tdA)
	require.Equal(t, 3, a.Full().Degree(rootA))

	tdB, rootB := table.Lookup(b.Full())
	require.Equal(t, 3, tdB)
	require.Equal(t, 3, b.Full().Degree(rootB))
}
