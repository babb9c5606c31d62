package graph_test

import (
	"testing"

	"github.com/solvers-go/treedepth/graph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	return g
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := graph.New(2, [][2]int{{0, 0}})
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestNew_RejectsMultiEdge(t *testing.T) {
	_, err := graph.New(2, [][2]int{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, graph.ErrMultiEdge)
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := graph.New(2, [][2]int{{0, 5}})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestNew_RejectsDisconnected(t *testing.T) {
	_, err := graph.New(4, [][2]int{{0, 1}, {2, 3}})
	require.ErrorIs(t, err, graph.ErrNotConnected)
}

func TestFull_IsComplete(t *testing.T) {
	g := triangle(t)
	h := g.Full()
	require.Equal(t, 3, h.N())
	require.Equal(t, 3, h.M())
	require.True(t, h.IsComplete())
}

func TestWithoutVertex_SplitsIntoComponents(t *testing.T) {
	// path 0-1-2-3-4, removing the middle vertex (2) splits into two paths.
	g, err := graph.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	h := g.Full()

	local, ok := h.LocalOf(2)
	require.True(t, ok)

	comps := h.WithoutVertex(local)
	require.Len(t, comps, 2)
	require.Equal(t, 2, comps[0].N())
	require.Equal(t, 2, comps[1].N())
}

func TestLocalOf_RoundTrips(t *testing.T) {
	g := triangle(t)
	h := g.Full()
	for v := 0; v < h.N(); v++ {
		local, ok := h.LocalOf(h.Global(v))
		require.True(t, ok)
		require.Equal(t, v, local)
	}
	_, ok := h.LocalOf(99)
	require.False(t, ok)
}

func TestDegreeOrder_DescendingWithAscendingTieBreak(t *testing.T) {
	// star: center has degree 3, leaves have degree 1.
	g, err := graph.New(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)
	h := g.Full()

	order := h.DegreeOrder()
	require.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestKCore_PeelsPendantChain(t *testing.T) {
	// triangle {0,1,2} with a pendant 3 attached to 0: the 2-core is the
	// triangle, vertex 3 has degree 1 and gets peeled.
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
	require.NoError(t, err)
	h := g.Full()

	comps := h.KCore(2)
	require.Len(t, comps, 1)
	require.Equal(t, 3, comps[0].N())
}

func TestIsPredicates(t *testing.T) {
	star, err := graph.New(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)
	require.True(t, star.Full().IsStar())
	require.True(t, star.Full().IsTree())
	require.False(t, star.Full().IsPath())

	path, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.True(t, path.Full().IsPath())
	require.True(t, path.Full().IsTree())

	cycle, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	require.True(t, cycle.Full().IsCycle())
	require.False(t, cycle.Full().IsTree())

	require.True(t, triangle(t).Full().IsComplete())
}
