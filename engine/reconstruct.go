package engine

import "github.com/solvers-go/treedepth/graph"

// Reconstruct walks the proven-optimal decomposition of h down to a full
// elimination forest, writing parent[globalVertex] = parent's global
// index for every vertex, or -1 for a root. Before reading a subgraph's
// root, it runs Calculate(sub, 1, sub.N()+1) on that subgraph so the
// root is pinned at the subgraph's own optimum (answered from the cache
// when it already holds the exact bounds); the root then comes from the
// oracle or the cache. ErrInvariantViolation means a subgraph was
// reached whose root neither could produce; ErrTimeout from one of these
// Calculate calls is returned as is.
func (e *Engine) Reconstruct(h *graph.Subgraph, parent []int) error {
	return e.reconstruct(h, -1, parent)
}

// reconstruct is Reconstruct's recursive worker; parentGlobal is the
// global index h's own root should record as its parent (-1 at the top
// of the forest).
func (e *Engine) reconstruct(h *graph.Subgraph, parentGlobal int, parent []int) error {
	if h.N() == 0 {
		return nil
	}

	if _, _, _, _, err := e.Calculate(h, 1, h.N()+1); err != nil {
		return err
	}
	root, ok := e.rootOf(h)
	if !ok {
		return ErrInvariantViolation
	}

	rootLocal, ok := h.LocalOf(root)
	if !ok {
		return ErrInvariantViolation
	}
	parent[root] = parentGlobal

	for _, comp := range h.WithoutVertex(rootLocal) {
		if err := e.reconstruct(comp, root, parent); err != nil {
			return err
		}
	}

	return nil
}

// rootOf returns the witness root for h's already-proven optimum,
// consulting the oracle first (shortcuts never touch the cache) and the
// cache second.
func (e *Engine) rootOf(h *graph.Subgraph) (int, bool) {
	if _, rg, ok := e.oracle.Exact(h); ok {
		return rg, true
	}
	entry, ok := e.cache.Search(h.GlobalSet())
	if !ok {
		return 0, false
	}

	return entry.Root, true
}
