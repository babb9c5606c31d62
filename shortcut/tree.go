package shortcut

import (
	"sort"
	"strconv"
	"strings"

	"github.com/solvers-go/treedepth/graph"
)

// TreedepthTree computes the exact treedepth of a tree by trying every
// vertex as the candidate decomposition root and recursing into the
// resulting components, keeping whichever choice minimizes 1 + the worst
// component's treedepth.
//
// This tries every candidate rather than picking a single heuristic
// vertex (e.g. the vertex minimizing the largest resulting component's
// *size*) because minimizing component size and minimizing component
// treedepth are not the same thing: a tie in size can still differ in
// treedepth, and the vertex that loses on size can win on treedepth. The
// Oracle.Exact contract promises a true exact answer for every tree this
// shortcut applies to, so nothing less than trying every candidate is
// sound here.
//
// The recursion memoizes by vertex set: every distinct component this
// process can ever produce, at any level of recursion, is one side of
// one of T's N-1 edges (removing vertex v splits T at each of v's
// incident edges, and recursing into a resulting component only ever
// splits it further at edges strictly inside it), so at most 2*(N-1)
// distinct components are ever evaluated regardless of how many
// candidates are tried at each level.
//
// Complexity: O(N^3 log N) in the worst case (at most 2*(N-1)+1 distinct
// vertex sets are evaluated, and a set of k vertices tries all k
// candidates at O(k log k) each for the removal and the memo keys of the
// resulting components; a path reaches this bound); still the right
// tradeoff for a shortcut whose whole job is to avoid an exponential
// branch-and-bound search.
func TreedepthTree(h *graph.Subgraph) (td int, rootGlobal int) {
	memo := make(map[string]treeResult)

	return treedepthTree(h, memo)
}

type treeResult struct {
	td         int
	rootGlobal int
}

func treedepthTree(h *graph.Subgraph, memo map[string]treeResult) (int, int) {
	n := h.N()
	if n == 1 {
		return 1, h.Global(0)
	}

	key := treeKey(h)
	if r, ok := memo[key]; ok {
		return r.td, r.rootGlobal
	}

	bestTd := n + 1
	bestRoot := h.Global(0)
	for v := 0; v < n; v++ {
		worst := 0
		for _, c := range h.WithoutVertex(v) {
			ctd, _ := treedepthTree(c, memo)
			if ctd > worst {
				worst = ctd
			}
		}
		if candidate := 1 + worst; candidate < bestTd {
			bestTd, bestRoot = candidate, h.Global(v)
		}
	}

	memo[key] = treeResult{td: bestTd, rootGlobal: bestRoot}

	return bestTd, bestRoot
}

func treeKey(h *graph.Subgraph) string {
	set := h.GlobalSet()
	sort.Ints(set)

	var sb strings.Builder
	for i, v := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
