package cache

// GapUnbounded requests every strict subset regardless of size
// difference — the "gap = infinity" case from spec §4.4.
const GapUnbounded = int(^uint(0) >> 1)

// node is one trie node. children maps the next sorted element to its
// child; entry is non-nil exactly when the path from the trie root to
// this node equals a set that was Inserted.
type node struct {
	children map[int]*node
	entry    *Entry
}

func newNode() *node {
	return &node{children: make(map[int]*node)}
}

// SetTrie is the global cache, recreated at the top of each solve and
// discarded once the elimination tree has been reconstructed (spec §3
// Lifecycle). The zero value is not usable; use NewSetTrie.
type SetTrie struct {
	root *node
	size int
}

// NewSetTrie returns an empty cache.
func NewSetTrie() *SetTrie {
	return &SetTrie{root: newNode()}
}

// Len reports how many distinct sets have been inserted.
func (t *SetTrie) Len() int { return t.size }

// Insert returns the Entry for the sorted global-index key w, creating it
// with trivial bounds (Lower=1, Upper=len(w), Root=w[0]) if absent.
// inserted reports whether this call created the entry.
//
// Complexity: O(|w|).
func (t *SetTrie) Insert(w []int) (entry *Entry, inserted bool) {
	cur := t.root
	for _, v := range w {
		child, ok := cur.children[v]
		if !ok {
			child = newNode()
			cur.children[v] = child
		}
		cur = child
	}
	if cur.entry != nil {
		return cur.entry, false
	}
	cur.entry = &Entry{Lower: 1, Upper: len(w), Root: w[0]}
	t.size++

	return cur.entry, true
}

// Search returns the Entry for the exact sorted key w, if present.
//
// Complexity: O(|w|).
func (t *SetTrie) Search(w []int) (entry *Entry, ok bool) {
	cur := t.root
	for _, v := range w {
		child, exists := cur.children[v]
		if !exists {
			return nil, false
		}
		cur = child
	}

	return cur.entry, cur.entry != nil
}
