// Package shortcut implements the exact treedepth oracle: constant- or
// near-constant-time treedepth computations for the graph classes the
// branch-and-bound engine can recognize cheaply (complete, star, cycle,
// path, tree, and anything small enough for the small-graph table), per
// spec §4.2. Detection predicates live on graph.Subgraph; this package
// owns the closed-form depth/root formulas and the general-tree
// algorithm (§4.7).
package shortcut
