package graph

import "sort"

// Subgraph is an induced-subgraph view over some subset of a Graph's
// vertices. It is a value type: created on recursion descent, dropped on
// return, never aliased across recursion frames (§3 Lifecycle).
//
// global holds the member vertices in strictly ascending global-index
// order — local index i always refers to global[i] — which is both the
// canonical serialization used as a cache key (§4.1) and the iteration
// order every structural query must respect for determinism (§9).
type Subgraph struct {
	g      *Graph
	global []int   // local index -> global index, strictly ascending
	mask   []bool  // size g.N(); mask[v] iff v is a member
	adj    [][]int // local adjacency lists, sorted ascending
	m      int
	maxDeg int
	minDeg int
}

// newSubgraphFromGlobal builds the induced subgraph of g on the given
// global vertex indices. verts need not be pre-sorted; it is sorted and
// deduplicated here so every Subgraph satisfies the ascending-order
// invariant regardless of caller order.
//
// Complexity: O(k log k + sum of degrees of members).
func newSubgraphFromGlobal(g *Graph, verts []int) *Subgraph {
	global := append([]int(nil), verts...)
	sort.Ints(global)

	mask := make([]bool, g.N())
	localOf := make(map[int]int, len(global))
	for i, v := range global {
		mask[v] = true
		localOf[v] = i
	}

	adj := make([][]int, len(global))
	m := 0
	maxDeg, minDeg := 0, len(global)
	for i, v := range global {
		nbrs := make([]int, 0, len(g.Adj(v)))
		for _, u := range g.Adj(v) {
			if mask[u] {
				nbrs = append(nbrs, localOf[u])
			}
		}
		sort.Ints(nbrs)
		adj[i] = nbrs
		m += len(nbrs)
		if len(nbrs) > maxDeg {
			maxDeg = len(nbrs)
		}
		if len(nbrs) < minDeg {
			minDeg = len(nbrs)
		}
	}
	if len(global) == 0 {
		minDeg = 0
	}

	return &Subgraph{
		g:      g,
		global: global,
		mask:   mask,
		adj:    adj,
		m:      m / 2,
		maxDeg: maxDeg,
		minDeg: minDeg,
	}
}

// newTreeSubgraph builds a Subgraph over the given global vertex set whose
// adjacency is exactly the provided local-index edge list, rather than
// being filtered from g's full adjacency. Used by DFSTree, whose result
// is a spanning tree (a strict subset of h's edges) over the same vertex
// set, not a fresh induced subgraph.
func newTreeSubgraph(g *Graph, global []int, edges [][2]int) *Subgraph {
	n := len(global)
	mask := make([]bool, g.N())
	for _, v := range global {
		mask[v] = true
	}
	adj := make([][]int, n)
	for _, e := range edges {
		a, b := e[0], e[1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	maxDeg, minDeg := 0, n
	for v := range adj {
		sort.Ints(adj[v])
		if len(adj[v]) > maxDeg {
			maxDeg = len(adj[v])
		}
		if len(adj[v]) < minDeg {
			minDeg = len(adj[v])
		}
	}
	if n == 0 {
		minDeg = 0
	}

	return &Subgraph{
		g:      g,
		global: append([]int(nil), global...),
		mask:   mask,
		adj:    adj,
		m:      len(edges),
		maxDeg: maxDeg,
		minDeg: minDeg,
	}
}

// N returns the number of vertices in the subgraph.
func (h *Subgraph) N() int { return len(h.global) }

// M returns the number of edges in the subgraph.
func (h *Subgraph) M() int { return h.m }

// MaxDegree returns the maximum local degree.
func (h *Subgraph) MaxDegree() int { return h.maxDeg }

// MinDegree returns the minimum local degree.
func (h *Subgraph) MinDegree() int { return h.minDeg }

// Global returns the global index of local vertex v.
func (h *Subgraph) Global(v int) int { return h.global[v] }

// GlobalSet returns the subgraph's key: the sorted global vertex indices.
// The returned slice is a fresh copy safe for the caller to retain (used
// directly as a cache.SetTrie key).
func (h *Subgraph) GlobalSet() []int { return append([]int(nil), h.global...) }

// Contains reports whether global vertex v is a member of the subgraph.
func (h *Subgraph) Contains(v int) bool { return v >= 0 && v < len(h.mask) && h.mask[v] }

// LocalOf returns the local index of global vertex v within h, if v is a
// member. global is kept sorted ascending, so this is a binary search.
func (h *Subgraph) LocalOf(v int) (int, bool) {
	i := sort.Search(len(h.global), func(i int) bool { return h.global[i] >= v })
	if i < len(h.global) && h.global[i] == v {
		return i, true
	}

	return 0, false
}

// Adj returns the local-index neighbors of local vertex v, sorted ascending.
func (h *Subgraph) Adj(v int) []int { return h.adj[v] }

// Degree returns the local degree of local vertex v.
func (h *Subgraph) Degree(v int) int { return len(h.adj[v]) }

// Graph returns the ambient Graph this subgraph was induced from.
func (h *Subgraph) Graph() *Graph { return h.g }

// MinDegreeVertex returns the local index of the lowest-degree vertex,
// ties broken by ascending local (== ascending global) index, per the
// determinism rule in spec §9.
func (h *Subgraph) MinDegreeVertex() int {
	best, bestDeg := 0, len(h.adj[0])
	for v := 1; v < len(h.adj); v++ {
		if len(h.adj[v]) < bestDeg {
			best, bestDeg = v, len(h.adj[v])
		}
	}

	return best
}

// MaxDegreeVertex returns the local index of the highest-degree vertex,
// ties broken by ascending index.
func (h *Subgraph) MaxDegreeVertex() int {
	best, bestDeg := 0, len(h.adj[0])
	for v := 1; v < len(h.adj); v++ {
		if len(h.adj[v]) > bestDeg {
			best, bestDeg = v, len(h.adj[v])
		}
	}

	return best
}

// DegreeOrder returns local vertex indices sorted by descending degree,
// ties broken by ascending index — the candidate-root order the original
// implementation uses (graph.cpp's sorted_vertices). The engine does not
// call it: its greedy upper bound and v_min fallback use MaxDegreeVertex
// and MinDegreeVertex, which apply the same ascending-index tie-break.
func (h *Subgraph) DegreeOrder() []int {
	order := make([]int, len(h.global))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := len(h.adj[order[i]]), len(h.adj[order[j]])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	return order
}
