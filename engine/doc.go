// Package engine implements the branch-and-bound search that drives the
// treedepth solver: Engine.Calculate narrows a two-sided [lower, upper]
// window on one subgraph by combining, in order, an exact-shortcut probe,
// a cache lookup, a k-core/min-degree lower bound, a greedy first-touch
// upper bound, and a loop over minimal separators — mirroring the
// dedicated engine-struct shape (no anonymous closures, explicit fields
// for policy and search state) that tsp.bbEngine uses for the same kind
// of exact combinatorial search.
//
// Engine owns no graph data of its own: every call is handed the
// graph.Subgraph to operate on and shares a single cache.SetTrie,
// shortcut.Oracle, and config.Options across the whole recursion, exactly
// as the source's global cache lives for one solve and is discarded once
// the elimination tree is reconstructed.
package engine
