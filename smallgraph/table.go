package smallgraph

import (
	"sync"

	"github.com/solvers-go/treedepth/graph"
)

// Table memoizes exact (treedepth, root) answers for small subgraphs
// across an entire solve. It is safe to share a single Table across the
// whole recursion tree of one Solve call: the search itself is
// single-threaded (§5), but keeping the map guarded costs nothing and
// removes a subtle reentrancy trap if that ever changes.
type Table struct {
	mu    sync.Mutex
	cache map[string]bitResult
}

// NewTable returns an empty Table, to be created once per solve and
// discarded with it (mirrors the SetTrie cache's lifecycle).
func NewTable() *Table {
	return &Table{cache: make(map[string]bitResult)}
}

// Lookup returns the exact treedepth and a witnessing root (as a global
// vertex index) for h, computing it via subset DP on first sighting of
// h's structural signature and reusing the cached answer thereafter.
//
// The cache stores root as a canonical position (an index into order, the
// permutation canonicalize derived for whichever subgraph first populated
// this signature), never as a raw local index: two subgraphs sharing a
// signature are only isomorphic, not identically labeled, so a local
// index computed against one of them names a different vertex in the
// other. Translating the stored canonical position back through this
// call's own order keeps the returned root correct for h specifically.
//
// Callers are expected to only invoke Lookup for h.N() below the
// engine's configured cutoff (N0); Lookup itself does not enforce one so
// that it stays testable in isolation.
func (t *Table) Lookup(h *graph.Subgraph) (td int, rootGlobal int) {
	key, order := canonicalize(h)

	t.mu.Lock()
	if r, ok := t.cache[key]; ok {
		t.mu.Unlock()

		return r.td, h.Global(order[r.root])
	}
	t.mu.Unlock()

	tdLocal, rootLocal := solveExact(h)

	position := make([]int, len(order))
	for i, v := range order {
		position[v] = i
	}

	t.mu.Lock()
	t.cache[key] = bitResult{td: tdLocal, root: position[rootLocal]}
	t.mu.Unlock()

	return tdLocal, h.Global(rootLocal)
}
