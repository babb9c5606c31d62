package graph

// componentsExcluding returns the connected components of h restricted to
// local vertices for which removed[v] is false, each returned as a fresh
// induced Subgraph of the ambient Graph. Components are returned in
// ascending order of their smallest global index, which (because local
// indices already ascend with global indices) is simply the order in
// which unvisited starting vertices are encountered while scanning
// local index 0..N-1 — the determinism the without_* family must
// guarantee (§4.1).
func (h *Subgraph) componentsExcluding(removed []bool) []*Subgraph {
	visited := make([]bool, h.N())
	var comps []*Subgraph
	queue := make([]int, 0, h.N())
	for start := 0; start < h.N(); start++ {
		if removed[start] || visited[start] {
			continue
		}
		queue = queue[:0]
		queue = append(queue, start)
		visited[start] = true
		globals := make([]int, 0, h.N())
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			globals = append(globals, h.Global(v))
			for _, u := range h.adj[v] {
				if !removed[u] && !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		comps = append(comps, newSubgraphFromGlobal(h.g, globals))
	}

	return comps
}

// WithoutVertex returns the connected components of h with local vertex v
// removed, each as a fresh Subgraph.
//
// Complexity: O(N + M).
func (h *Subgraph) WithoutVertex(v int) []*Subgraph {
	removed := make([]bool, h.N())
	removed[v] = true

	return h.componentsExcluding(removed)
}

// WithoutVertices returns the connected components of h with every local
// vertex in s removed.
//
// Complexity: O(N + M).
func (h *Subgraph) WithoutVertices(s []int) []*Subgraph {
	removed := make([]bool, h.N())
	for _, v := range s {
		removed[v] = true
	}

	return h.componentsExcluding(removed)
}
