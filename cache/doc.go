// Package cache implements the SetTrie: the global, process-wide cache
// mapping each induced subgraph visited during a solve (identified by
// its sorted global vertex-index set) to a CacheEntry of proven
// {lower, upper, root} bounds, per spec §4.4.
//
// The trie is a literal trie over the sorted key: a node at depth k
// under path (v0<v1<...<v_{k-1}) represents every set whose k smallest
// elements are exactly that prefix, and terminal nodes carry the
// CacheEntry payload. BigSubsets walks the trie alongside the query set,
// at each element choosing to consume it (follow a matching child) or
// skip it (spend one unit of the subset gap budget), which finds every
// previously cached strict subset within the gap without ever
// materializing a subset that was never inserted.
package cache
