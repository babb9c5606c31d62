package smallgraph

import (
	"math"
	"math/bits"

	"github.com/solvers-go/treedepth/graph"
)

// bitResult is the outcome of solving one vertex-bitmask: the exact
// treedepth of the induced subgraph on those local vertices, and the
// local index of a root witnessing it.
type bitResult struct {
	td   int
	root int
}

// solveExact runs the subset DP: for every connected induced subgraph of
// h reachable by peeling vertices (represented as a bitmask over h's own
// local indices), try every candidate root and recurse on the resulting
// components. Every mask this function is ever called with is connected
// by construction — masks are produced either as the full vertex set or
// as one component of a smaller mask minus its chosen root.
//
// Complexity: O(2^N * N^2) worst case, acceptable only for N below the
// small-graph cutoff (spec's N0, typically 12-16).
func solveExact(h *graph.Subgraph) (td int, root int) {
	n := h.N()
	full := uint32(1)<<uint(n) - 1
	memo := make(map[uint32]bitResult, 1<<uint(minInt(n, 12)))

	var solve func(mask uint32) bitResult
	solve = func(mask uint32) bitResult {
		if r, ok := memo[mask]; ok {
			return r
		}
		if bits.OnesCount32(mask) == 1 {
			v := bits.TrailingZeros32(mask)
			r := bitResult{td: 1, root: v}
			memo[mask] = r

			return r
		}

		best := bitResult{td: math.MaxInt32}
		for v := 0; v < n; v++ {
			if mask&(1<<uint(v)) == 0 {
				continue
			}
			worst := 0
			for _, comp := range splitComponents(h, mask&^(1<<uint(v))) {
				cr := solve(comp)
				if cr.td > worst {
					worst = cr.td
				}
			}
			if candidate := 1 + worst; candidate < best.td {
				best = bitResult{td: candidate, root: v}
			}
		}
		memo[mask] = best

		return best
	}

	r := solve(full)

	return r.td, r.root
}

// splitComponents returns the connected components of h restricted to the
// local vertices set in mask, each as a bitmask over the same local
// index space.
func splitComponents(h *graph.Subgraph, mask uint32) []uint32 {
	n := h.N()
	visited := uint32(0)
	var comps []uint32
	stack := make([]int, 0, n)
	for start := 0; start < n; start++ {
		bit := uint32(1) << uint(start)
		if mask&bit == 0 || visited&bit != 0 {
			continue
		}
		stack = stack[:0]
		stack = append(stack, start)
		visited |= bit
		comp := bit
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, u := range h.Adj(v) {
				ubit := uint32(1) << uint(u)
				if mask&ubit == 0 || visited&ubit != 0 {
					continue
				}
				visited |= ubit
				comp |= ubit
				stack = append(stack, u)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
