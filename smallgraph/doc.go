// Package smallgraph provides the exact (treedepth, root) table for
// graphs below the branch-and-bound engine's shortcut cutoff N0 (spec
// §4.3). Rather than enumerating every connected graph up to N0 vertices
// ahead of time — intractable to embed as static data for any useful N0 —
// Table computes each distinct shape exactly on first use via a subset
// dynamic program (memoized by vertex bitmask within one call) and
// memoizes the (td, root) result across calls under a best-effort
// isomorphism-insensitive signature, so repeated shapes across the
// search are answered in O(1) after the first sighting. See DESIGN.md
// for why this replaces literal exhaustive precomputation.
package smallgraph
