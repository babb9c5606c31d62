package treedepth_test

import (
	"testing"

	treedepth "github.com/solvers-go/treedepth"
	"github.com/solvers-go/treedepth/graph"
	"github.com/stretchr/testify/require"
)

// zeroBased translates the spec's 1-based end-to-end fixtures into the
// 0-based edges graph.New expects.
func zeroBased(edges [][2]int) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e[0] - 1, e[1] - 1}
	}

	return out
}

// assertValidElimination checks the two properties every witness must
// satisfy: the forest encoded by parents covers every vertex exactly
// once with no cycles, and every graph edge is an ancestor/descendant
// pair in it.
func assertValidElimination(t *testing.T, g *graph.Graph, parents []int, td int) {
	t.Helper()
	n := g.N()
	require.Len(t, parents, n)

	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}
	var depthOf func(v int) int
	depthOf = func(v int) int {
		if depth[v] != -1 {
			return depth[v]
		}
		if parents[v] == -1 {
			depth[v] = 1
		} else {
			depth[v] = 1 + depthOf(parents[v])
		}

		return depth[v]
	}

	maxDepth := 0
	for v := 0; v < n; v++ {
		if d := depthOf(v); d > maxDepth {
			maxDepth = d
		}
	}
	require.Equal(t, td, maxDepth)

	isAncestor := func(anc, v int) bool {
		for cur := v; cur != -1; cur = parents[cur] {
			if cur == anc {
				return true
			}
		}

		return false
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Adj(u) {
			if v < u {
				continue
			}
			require.True(t, isAncestor(u, v) || isAncestor(v, u),
				"edge (%d,%d) has no ancestor relation in the elimination tree", u, v)
		}
	}
}

func TestSolve_Triangle(t *testing.T) {
	g, err := graph.New(3, zeroBased([][2]int{{1, 2}, {1, 3}, {2, 3}}))
	require.NoError(t, err)

	td, parents, err := treedepth.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 3, td)
	assertValidElimination(t, g, parents, td)
}

func TestSolve_Path4(t *testing.T) {
	g, err := graph.New(4, zeroBased([][2]int{{1, 2}, {2, 3}, {3, 4}}))
	require.NoError(t, err)

	td, parents, err := treedepth.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 3, td)
	assertValidElimination(t, g, parents, td)
}

func TestSolve_Cycle4(t *testing.T) {
	g, err := graph.New(4, zeroBased([][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}))
	require.NoError(t, err)

	td, parents, err := treedepth.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 3, td)
	assertValidElimination(t, g, parents, td)
}

func TestSolve_Star4(t *testing.T) {
	g, err := graph.New(4, zeroBased([][2]int{{1, 2}, {1, 3}, {1, 4}}))
	require.NoError(t, err)

	td, parents, err := treedepth.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 2, td)
	assertValidElimination(t, g, parents, td)
}

func TestSolve_ReadmeExample(t *testing.T) {
	g, err := graph.New(6, zeroBased([][2]int{
		{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}, {5, 6},
	}))
	require.NoError(t, err)

	// Triangles {1,2,3}, {2,3,4} and {4,5,6} leave no single vertex whose
	// removal avoids a triangle, so no root reaches depth 3: td is 4.
	td, parents, err := treedepth.Solve(g)
	require.NoError(t, err)
	require.Equal(t, 4, td)
	assertValidElimination(t, g, parents, td)
}

func TestSolve_DisjointGraphIsRejectedAtConstruction(t *testing.T) {
	_, err := graph.New(4, zeroBased([][2]int{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, graph.ErrNotConnected)
}

func TestSolve_ClosedFormPath(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 16} {
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		g, err := graph.New(n, zeroBased(edges))
		require.NoError(t, err)

		td, _, err := treedepth.Solve(g)
		require.NoError(t, err)
		require.Equal(t, ceilLog2(n+1), td, "path of length %d", n)
	}
}

func ceilLog2(n int) int {
	td := 0
	for v := 1; v < n; v *= 2 {
		td++
	}

	return td
}
