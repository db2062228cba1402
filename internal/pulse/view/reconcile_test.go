package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/pulse/internal/token"
)

func pairs(cat token.Category, prefix string, n int) []token.Pair {
	out := make([]token.Pair, n)
	for i := range out {
		out[i] = token.Pair{ID: fmt.Sprintf("%s%d", prefix, i+1), Category: cat}
	}
	return out
}

func ids(ps []token.Pair) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestReconcileDropsOldestAtCap(t *testing.T) {
	old := pairs(token.CategoryNewPairs, "P", 20)
	state := token.Columns{token.CategoryNewPairs: old}
	pnew := token.Pair{ID: "Pnew", Category: token.CategoryNewPairs}

	next := Reconcile(state, []token.Pair{pnew}, DefaultMaxLen)

	got := next[token.CategoryNewPairs]
	require.Len(t, got, 20)
	assert.Equal(t, "Pnew", got[0].ID)
	assert.Equal(t, ids(old[:19]), ids(got[1:]))
	assert.NotContains(t, ids(got), "P20")

	// The previous state is untouched.
	assert.Equal(t, "P1", state[token.CategoryNewPairs][0].ID)
	assert.Len(t, state[token.CategoryNewPairs], 20)
}

func TestMergeNewestFirst(t *testing.T) {
	old := pairs(token.CategoryMigrated, "O", 2)
	items := pairs(token.CategoryMigrated, "N", 3)

	got := Merge(old, items, 10)
	assert.Equal(t, []string{"N3", "N2", "N1", "O1", "O2"}, ids(got))
}

func TestMergeNeverExceedsMaxLen(t *testing.T) {
	for maxLen := 0; maxLen <= 25; maxLen++ {
		for nOld := 0; nOld <= 22; nOld += 7 {
			for nNew := 0; nNew <= 4; nNew++ {
				got := Merge(pairs("x", "O", nOld), pairs("x", "N", nNew), maxLen)
				require.LessOrEqual(t, len(got), maxLen)
				want := nOld + nNew
				if want > maxLen {
					want = maxLen
				}
				require.Len(t, got, want)
			}
		}
	}
}

func TestMergeBatchLargerThanCapKeepsNewest(t *testing.T) {
	got := Merge(pairs("x", "O", 5), pairs("x", "N", 6), 4)
	assert.Equal(t, []string{"N6", "N5", "N4", "N3"}, ids(got))
}

func TestMergeDoesNotAliasOld(t *testing.T) {
	old := make([]token.Pair, 2, 10)
	old[0].ID, old[1].ID = "a", "b"

	got := Merge(old, nil, 5)
	got[0].ID = "z"
	assert.Equal(t, "a", old[0].ID)
}

func TestReconcileMultipleCategories(t *testing.T) {
	state := token.NewColumns()
	state[token.CategoryFinalStretch] = pairs(token.CategoryFinalStretch, "F", 3)
	state[token.CategoryMigrated] = pairs(token.CategoryMigrated, "M", 1)

	batch := []token.Pair{
		{ID: "n1", Category: token.CategoryNewPairs},
		{ID: "f9", Category: token.CategoryFinalStretch},
		{ID: "n2", Category: token.CategoryNewPairs},
	}

	next := Reconcile(state, batch, DefaultMaxLen)

	assert.Equal(t, []string{"n2", "n1"}, ids(next[token.CategoryNewPairs]))
	assert.Equal(t, []string{"f9", "F1", "F2", "F3"}, ids(next[token.CategoryFinalStretch]))
	assert.Equal(t, []string{"M1"}, ids(next[token.CategoryMigrated]))
	assert.Empty(t, state[token.CategoryNewPairs])
}
