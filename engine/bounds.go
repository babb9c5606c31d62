package engine

import "github.com/solvers-go/treedepth/graph"

// greedyUpper computes a cheap upper bound on h's treedepth by always
// eliminating the current max-degree vertex and recursing on the
// resulting components — the "greedy DFS elimination from the max-degree
// vertex" first-touch heuristic. It is not exact in general but is O(N+M) per
// level and gives the engine something to prune against before any
// separator has been examined.
func greedyUpper(h *graph.Subgraph) int {
	if h.N() == 0 {
		return 0
	}
	v := h.MaxDegreeVertex()
	worst := 0
	for _, c := range h.WithoutVertex(v) {
		if d := greedyUpper(c); d > worst {
			worst = d
		}
	}

	return 1 + worst
}

// sortedDiff returns the elements of a (sorted ascending) that are not in
// b (sorted ascending, subset of a), preserving ascending order.
func sortedDiff(a, b []int) []int {
	out := make([]int, 0, len(a)-len(b))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			j++
			continue
		}
		out = append(out, v)
	}

	return out
}

// writeSpine records cache entries for the intermediate prefixes of
// chain[1:len(chain)-1] — i.e. "chain[0] as H's own root, then chain[1],
// then chain[2], ..." down to the already-solved tail whose upper bound
// is tailUpper. chain[0] is h's own pinned root and is the caller's
// responsibility; this only back-fills the spine strictly between H and
// the tail so Reconstruct can walk the chain one vertex at a time instead
// of re-deriving it.
//
// Per spec §4.6 step 6, removing a strict prefix of a minimal separator
// need not fully disconnect the residual graph; where it does split into
// more than one piece, the single largest component is treated as the
// vertex set still carrying the chain (the others are smaller witnesses
// already covered elsewhere in the search).
func (e *Engine) writeSpine(h *graph.Subgraph, chain []int, tailUpper int) {
	l := len(chain)
	for i := 1; i < l; i++ {
		removeLocal := make([]int, 0, i)
		for _, g := range chain[:i] {
			if lo, ok := h.LocalOf(g); ok {
				removeLocal = append(removeLocal, lo)
			}
		}
		comps := h.WithoutVertices(removeLocal)
		if len(comps) == 0 {
			continue
		}
		largest := comps[0]
		for _, c := range comps[1:] {
			if c.N() > largest.N() {
				largest = c
			}
		}

		entry, _ := e.cache.Insert(largest.GlobalSet())
		newUpper := tailUpper + (l - i)
		if newUpper < entry.Upper {
			entry.Upper = newUpper
			entry.Root = chain[i]
		}
		if entry.Lower > entry.Upper {
			entry.Lower = entry.Upper
		}
	}
}
