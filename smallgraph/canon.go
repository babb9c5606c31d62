package smallgraph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/solvers-go/treedepth/graph"
)

// canonicalize produces a best-effort isomorphism-insensitive key for h (a
// one-round Weisfeiler-Leman-style refinement: order vertices by degree,
// then by the sorted multiset of neighbor degrees, encoding the adjacency
// matrix in that order) together with order, the permutation that key was
// built from: order[i] is the local vertex of h sitting at canonical
// position i. Two isomorphic graphs usually produce the same key; when
// they don't (symmetric graphs can tie ambiguously) the only cost is a
// missed cache hit — solveExact still computes the exact answer, so
// correctness never depends on this being a true canonical form.
//
// order is what lets a cached root survive a cache hit: a root recorded
// against one graph's local indices means nothing for a different,
// merely-isomorphic graph that happens to share a key, since the two
// graphs' local indices aren't aligned. Recording/consulting the root by
// canonical position instead and translating through order/position keeps
// the translation correct regardless of which graph first populated the
// cache entry.
func canonicalize(h *graph.Subgraph) (key string, order []int) {
	n := h.N()
	type vinfo struct {
		idx        int
		degree     int
		neighborDs []int
	}
	infos := make([]vinfo, n)
	for v := 0; v < n; v++ {
		nd := make([]int, 0, h.Degree(v))
		for _, u := range h.Adj(v) {
			nd = append(nd, h.Degree(u))
		}
		sort.Sort(sort.Reverse(sort.IntSlice(nd)))
		infos[v] = vinfo{idx: v, degree: h.Degree(v), neighborDs: nd}
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].degree != infos[j].degree {
			return infos[i].degree > infos[j].degree
		}
		a, b := infos[i].neighborDs, infos[j].neighborDs
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		if len(a) != len(b) {
			return len(a) > len(b)
		}

		return infos[i].idx < infos[j].idx
	})

	order = make([]int, n)
	position := make([]int, n)
	for i, info := range infos {
		order[i] = info.idx
		position[info.idx] = i
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte(':')
	for i := 0; i < n; i++ {
		v := order[i]
		js := make([]int, 0, h.Degree(v))
		for _, u := range h.Adj(v) {
			if j := position[u]; j > i {
				js = append(js, j)
			}
		}
		sort.Ints(js)
		for _, j := range js {
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(i))
			sb.WriteByte('-')
			sb.WriteString(strconv.Itoa(j))
		}
	}

	return sb.String(), order
}
