package shortcut_test

import (
	"testing"

	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/shortcut"
	"github.com/solvers-go/treedepth/smallgraph"
	"github.com/stretchr/testify/require"
)

func newOracle(n0 int) *shortcut.Oracle {
	return shortcut.NewOracle(n0, smallgraph.NewTable())
}

func TestExact_SingleVertex(t *testing.T) {
	g, err := graph.New(1, nil)
	require.NoError(t, err)

	td, root, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 1, td)
	require.Equal(t, 0, root)
}

func TestExact_Complete(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	td, _, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 4, td)
}

func TestExact_Star(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	td, root, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 2, td)
	require.Equal(t, 0, root)
}

func TestExact_Cycle(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	td, _, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 3, td) // 1 + ceil(log2(4)) = 3
}

func TestExact_Path(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	td, _, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 3, td) // ceil(log2(5)) = 3
}

func TestExact_SmallGraphTableUsedBelowCutoff(t *testing.T) {
	// "Paw" graph: triangle {0,1,2} with a pendant 3 attached to 0. Not
	// complete, star, cycle, path, or a tree, so only the small-graph
	// table can answer it. Rooting at 0 gives depth 1 + td(K_2) = 3,
	// which is optimal since the triangle alone already needs 3 levels.
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	td, _, ok := newOracle(10).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 3, td)
}

func TestExact_NoShortcutForArbitraryGraph(t *testing.T) {
	// A 5-cycle plus a chord is none of the special classes and has more
	// vertices than a cutoff of 0, so no shortcut applies.
	g, err := graph.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	require.NoError(t, err)

	_, _, ok := newOracle(0).Exact(g.Full())
	require.False(t, ok)
}

func TestExact_GeneralTreeNeedsExhaustiveRootSearch(t *testing.T) {
	// r(0) has two children: u1(1), root of a 4-vertex path (u1-a-b-c),
	// and u2(2), the center of a 3-leaf star (u2-x,u2-y, plus edge to r).
	// The vertex that minimizes the *size* of the largest resulting
	// component ties between r and u1 (both leave a max component of 4
	// vertices), but only rooting at u1 reaches the true optimum: r's
	// children subtrees have treedepth 3 (the path) and 2 (the star), for
	// 1+3=4, while u1's two resulting components are a 3-vertex path
	// (td=2) and a 3-leaf star centered on u2 (td=2), for 1+2=3. A root
	// picked by size alone can therefore report 4 instead of the true 3.
	g, err := graph.New(8, [][2]int{
		{0, 1}, {0, 2}, {1, 3}, {3, 4}, {4, 5}, {2, 6}, {2, 7},
	})
	require.NoError(t, err)

	td, root, ok := newOracle(0).Exact(g.Full())
	require.True(t, ok)
	require.Equal(t, 3, td)
	require.Equal(t, 1, root)
}
