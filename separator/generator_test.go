package separator_test

import (
	"sort"
	"testing"

	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/separator"
	"github.com/stretchr/testify/require"
)

// cycleGraph builds C_4 (0-1-2-3-0): {1,3} and {0,2} are both minimal
// separators, each splitting the cycle into two singleton components.
func cycleGraph(t *testing.T) *graph.Subgraph {
	t.Helper()
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	return g.Full()
}

func TestGenerator_FindsBothSeparatorsOfACycle(t *testing.T) {
	h := cycleGraph(t)
	gen := separator.New(h)

	var found [][]int
	for gen.HasNext() {
		for _, s := range gen.Next(10) {
			v := append([]int(nil), s.Vertices...)
			sort.Ints(v)
			found = append(found, v)
		}
	}

	require.Contains(t, found, []int{0, 2})
	require.Contains(t, found, []int{1, 3})
}

func TestGenerator_SeparatorsAreMinimal(t *testing.T) {
	h := cycleGraph(t)
	gen := separator.New(h)

	for gen.HasNext() {
		for _, s := range gen.Next(10) {
			require.True(t, separator.IsMinimal(h, s.Vertices))
		}
	}
}

func TestIsMinimal_FalseForNonSeparatingSet(t *testing.T) {
	h := cycleGraph(t)
	require.False(t, separator.IsMinimal(h, []int{0}))
}
