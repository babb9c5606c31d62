package cache

// Entry holds the proven bounds for one cached subgraph: 1 <= Lower <=
// Upper <= |W|, Root is a global vertex index inside W, and (once Upper
// is non-trivial) removing Root from the induced subgraph on W splits it
// into components each also present in the cache with Upper <= this
// entry's Upper-1 (spec §3 CacheEntry invariants).
//
// Entry is a plain value: the trie stores entries behind pointers so
// engine code can mutate Lower/Upper/Root in place as bounds tighten,
// but nothing about Entry itself is safe for concurrent mutation — the
// whole cache is single-writer, single-threaded for the lifetime of one
// solve (spec §5).
type Entry struct {
	Lower int
	Upper int
	Root  int
}
