package cache_test

import (
	"testing"

	"github.com/solvers-go/treedepth/cache"
	"github.com/stretchr/testify/require"
)

func TestInsert_CreatesTrivialEntryOnce(t *testing.T) {
	trie := cache.NewSetTrie()

	e1, inserted1 := trie.Insert([]int{2, 5, 9})
	require.True(t, inserted1)
	require.Equal(t, 1, e1.Lower)
	require.Equal(t, 3, e1.Upper)
	require.Equal(t, 2, e1.Root)

	e2, inserted2 := trie.Insert([]int{2, 5, 9})
	require.False(t, inserted2)
	require.Same(t, e1, e2)
	require.Equal(t, 1, trie.Len())
}

func TestSearch_MissOnUnseenKey(t *testing.T) {
	trie := cache.NewSetTrie()
	trie.Insert([]int{1, 2, 3})

	_, ok := trie.Search([]int{1, 2})
	require.False(t, ok)

	_, ok = trie.Search([]int{1, 2, 4})
	require.False(t, ok)
}

func TestBigSubsets_FindsStrictSubsetsWithinGap(t *testing.T) {
	trie := cache.NewSetTrie()
	sEntry, _ := trie.Insert([]int{1, 2, 3})
	sEntry.Lower, sEntry.Upper = 2, 2

	hits := trie.BigSubsets([]int{1, 2, 3, 4}, 1)
	require.Len(t, hits, 1)
	require.Equal(t, []int{1, 2, 3}, hits[0].Set)
	require.Equal(t, 1, hits[0].Gap)
	require.Same(t, sEntry, hits[0].Entry)
}

func TestBigSubsets_RespectsGapBudget(t *testing.T) {
	trie := cache.NewSetTrie()
	trie.Insert([]int{1})

	hits := trie.BigSubsets([]int{1, 2, 3, 4}, 2)
	require.Empty(t, hits)

	hits = trie.BigSubsets([]int{1, 2, 3, 4}, 3)
	require.Len(t, hits, 1)
}

func TestBigSubsets_OrdersByAscendingGap(t *testing.T) {
	trie := cache.NewSetTrie()
	trie.Insert([]int{1, 3})
	trie.Insert([]int{1, 2, 3})

	hits := trie.BigSubsets([]int{1, 2, 3, 4}, cache.GapUnbounded)
	require.Len(t, hits, 2)
	require.True(t, hits[0].Gap <= hits[1].Gap)
	require.Equal(t, []int{1, 2, 3}, hits[0].Set)
}
