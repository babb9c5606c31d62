// Package graph defines the immutable Graph and Subgraph types the
// treedepth engine operates on, along with the structural queries
// (without_vertex, k_core, dfs_tree, connected components) the engine
// composes into its search.
//
// Graph is the process-wide, fixed adjacency list for one solve: global
// vertex indices 0..N-1, adjacency symmetric, no self-loops, no parallel
// edges. Subgraph is a value type carrying a local renumbering of some
// subset of G's vertices plus a membership mask; it is created on
// recursion descent and dropped on return, never aliased across frames.
package graph
