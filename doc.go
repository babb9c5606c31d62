// Package treedepth computes the exact treedepth of a connected
// undirected graph: the minimum depth of a rooted forest T on the same
// vertex set such that every edge of the graph connects an ancestor to
// one of its descendants in T, together with a concrete elimination
// tree witnessing that depth.
//
// Solve is the single entry point:
//
//	g, err := graph.New(n, edges)
//	td, parents, err := treedepth.Solve(g)
//
// Internally Solve wires together six cooperating pieces, organized the
// way the teacher corpus organizes a layered exact solver (leaf packages
// with no upward imports, an engine package tying them together, a thin
// root-level orchestration function):
//
//	graph/      — immutable graph + induced-subgraph views
//	shortcut/   — exact answers for complete/star/cycle/path/tree graphs
//	smallgraph/ — exact subset-DP table for graphs below a size cutoff
//	cache/      — the SetTrie bound cache, keyed by vertex subset
//	separator/  — minimal vertex separator enumeration
//	engine/     — the branch-and-bound search and tree reconstruction
//
// Solve itself never performs I/O; reading PACE-format input and writing
// the result is the pace package's job, and cmd/treedepth wires the two
// together behind a cobra CLI.
package treedepth
