package graph

// KCore returns the connected components of the maximal induced subgraph
// of h in which every vertex has local degree >= k. Peeling is classic
// bucket-queue k-core removal: repeatedly strip any vertex whose
// remaining degree falls below k, propagating the decrement to its
// surviving neighbors, until a fixed point is reached. The result may be
// empty (nil) if peeling consumes the whole graph.
//
// Complexity: O(N + M).
func (h *Subgraph) KCore(k int) []*Subgraph {
	n := h.N()
	degree := make([]int, n)
	removed := make([]bool, n)
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		degree[v] = len(h.adj[v])
		if degree[v] < k {
			queue = append(queue, v)
			removed[v] = true
		}
	}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, u := range h.adj[v] {
			if removed[u] {
				continue
			}
			degree[u]--
			if degree[u] < k {
				removed[u] = true
				queue = append(queue, u)
			}
		}
	}

	return h.componentsExcluding(removed)
}
