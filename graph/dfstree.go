package graph

// DFSTree returns the spanning tree of h obtained by a depth-first
// traversal from local vertex root, as a Subgraph over the same vertex
// set with exactly N-1 edges. Neighbors are explored in ascending local
// order (adjacency lists are kept sorted), which together with the
// explicit stack below makes the resulting tree deterministic.
//
// Complexity: O(N + M).
func (h *Subgraph) DFSTree(root int) *Subgraph {
	n := h.N()
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	type frame struct {
		v    int
		next int
	}
	stack := make([]frame, 0, n)
	stack = append(stack, frame{v: root, next: 0})
	visited[root] = true
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(h.adj[top.v]) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := h.adj[top.v][top.next]
		top.next++
		if !visited[u] {
			visited[u] = true
			parent[u] = top.v
			stack = append(stack, frame{v: u, next: 0})
		}
	}

	edges := make([][2]int, 0, n-1)
	for v := 0; v < n; v++ {
		if parent[v] != -1 {
			edges = append(edges, [2]int{v, parent[v]})
		}
	}

	return newTreeSubgraph(h.g, h.global, edges)
}
