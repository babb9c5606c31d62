package graph

import "sort"

// Graph is the immutable, process-wide adjacency representation of the
// original input graph for one solve. Vertex identity is a stable global
// index 0..N-1. Adjacency is symmetric, loop-free, and simple (no
// parallel edges); adjacency lists are kept sorted ascending so that
// iteration order is deterministic.
//
// A Graph is built once by New and never mutated afterward: every
// Subgraph view holds only a *Graph pointer plus its own local state,
// so concurrent reads of the same Graph from independent recursion
// frames are safe without locking (§5: single-threaded recursion, no
// mutation ever occurs after construction).
type Graph struct {
	n   int
	m   int
	adj [][]int
}

// New builds a Graph from an edge list over global indices 0..n-1.
// It rejects self-loops, parallel edges, out-of-range endpoints, and
// disconnected input (spec Non-goals: the core never receives a
// disconnected graph; callers split components upstream).
//
// Complexity: O(N + M log M).
func New(n int, edges [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrEmptyGraph
	}

	seen := make(map[[2]int]struct{}, len(edges))
	adj := make([][]int, n)
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, ErrVertexOutOfRange
		}
		if a == b {
			return nil, ErrSelfLoop
		}
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if _, dup := seen[key]; dup {
			return nil, ErrMultiEdge
		}
		seen[key] = struct{}{}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for v := range adj {
		sort.Ints(adj[v])
	}

	g := &Graph{n: n, m: len(seen), adj: adj}
	if !g.isConnected() {
		return nil, ErrNotConnected
	}

	return g, nil
}

// N returns the number of vertices in the graph.
func (g *Graph) N() int { return g.n }

// M returns the number of edges in the graph.
func (g *Graph) M() int { return g.m }

// Adj returns the sorted global-index neighbors of global vertex v.
// The returned slice must not be mutated by the caller.
func (g *Graph) Adj(v int) []int { return g.adj[v] }

// Degree returns the degree of global vertex v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// isConnected runs a BFS from vertex 0 and checks every vertex was reached.
func (g *Graph) isConnected() bool {
	visited := make([]bool, g.n)
	queue := make([]int, 0, g.n)
	queue = append(queue, 0)
	visited[0] = true
	count := 1
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, u := range g.adj[v] {
			if !visited[u] {
				visited[u] = true
				count++
				queue = append(queue, u)
			}
		}
	}

	return count == g.n
}

// Full returns the Subgraph view spanning every vertex of g, in ascending
// global order — the entry point for the branch-and-bound engine.
func (g *Graph) Full() *Subgraph {
	verts := make([]int, g.n)
	for i := range verts {
		verts[i] = i
	}

	return newSubgraphFromGlobal(g, verts)
}
