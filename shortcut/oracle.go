package shortcut

import (
	"math/bits"

	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/smallgraph"
)

// Oracle bundles the small-graph table with the cutoff below which it
// applies, and exposes the combined exact shortcut decision from spec
// §4.2's table: complete, star, cycle, path, small-table, tree, in that
// precedence order, falling through to "no shortcut" otherwise.
type Oracle struct {
	n0    int
	table *smallgraph.Table
}

// NewOracle returns an Oracle that consults table for subgraphs with
// fewer than n0 vertices.
func NewOracle(n0 int, table *smallgraph.Table) *Oracle {
	return &Oracle{n0: n0, table: table}
}

// Exact returns (td, rootGlobal, true) if h's treedepth can be decided
// without entering the branch-and-bound search, or (0, 0, false) if no
// shortcut applies. Detection predicates are all O(N+M); the table
// lookup and general-tree algorithm are the only shortcuts with
// super-constant cost, and both are still far cheaper than a cache probe
// followed by a separator search.
func (o *Oracle) Exact(h *graph.Subgraph) (td int, rootGlobal int, ok bool) {
	n := h.N()
	if n == 1 {
		return 1, h.Global(0), true
	}

	switch {
	case h.IsComplete():
		return n, h.Global(0), true

	case h.IsStar():
		for v := 0; v < n; v++ {
			if h.Degree(v) == n-1 {
				return 2, h.Global(v), true
			}
		}

	case h.IsCycle():
		return 1 + ceilLog2(n), h.Global(0), true

	case h.IsPath():
		return pathTreedepth(h)

	case o.table != nil && n < o.n0:
		td, root := o.table.Lookup(h)

		return td, root, true

	case h.IsTree():
		td, root := TreedepthTree(h)

		return td, root, true
	}

	return 0, 0, false
}

// pathTreedepth implements the path formula: td = ceil(log2(n+1)), rooted
// at the middle vertex found by walking n/2 steps from either leaf.
func pathTreedepth(h *graph.Subgraph) (int, int, bool) {
	n := h.N()
	td := ceilLog2Plus1(n)

	leaf := 0
	for v := 0; v < n; v++ {
		if h.Degree(v) == 1 {
			leaf = v
			break
		}
	}

	prev, cur := -1, leaf
	for i := 0; i < n/2; i++ {
		next := h.Adj(cur)[0]
		if next == prev {
			next = h.Adj(cur)[len(h.Adj(cur))-1]
		}
		prev, cur = cur, next
	}

	return td, h.Global(cur), true
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// ceilLog2Plus1 returns ceil(log2(n+1)) for n >= 1.
func ceilLog2Plus1(n int) int {
	return ceilLog2(n + 1)
}
