package separator

import "github.com/solvers-go/treedepth/graph"

// IsMinimal reports whether the given sorted set of global vertices is
// still a minimal separator of h. A separator S is minimal iff removing
// it splits h into components and at least two of them are "full
// components" — components C whose neighborhood N(C) in h equals exactly
// S (the standard characterization of minimal separators). This is the
// check the engine's step 6 calls "fully_minimal" when deciding whether
// a separator hint carried up from a child call still applies in the
// parent graph.
func IsMinimal(h *graph.Subgraph, sortedGlobal []int) bool {
	locals := make([]int, 0, len(sortedGlobal))
	for _, v := range sortedGlobal {
		l, ok := h.LocalOf(v)
		if !ok {
			return false
		}
		locals = append(locals, l)
	}

	comps := h.WithoutVertices(locals)
	if len(comps) < 2 {
		return false
	}

	full := 0
	for _, c := range comps {
		if equalSorted(neighborsOf(h, c), sortedGlobal) {
			full++
		}
	}

	return full >= 2
}

func equalSorted(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
