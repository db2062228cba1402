package view

import "github.com/zappabad/pulse/internal/token"

// DefaultMaxLen is the column cap used by the dashboard.
const DefaultMaxLen = 20

// Merge prepends items to old and truncates the result to maxLen, dropping
// the oldest entries. Items are in arrival order, so the last item ends up
// first. old is never written; the result is a fresh slice.
func Merge(old, items []token.Pair, maxLen int) []token.Pair {
	if maxLen <= 0 {
		return []token.Pair{}
	}

	n := len(items) + len(old)
	if n > maxLen {
		n = maxLen
	}
	out := make([]token.Pair, 0, n)

	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	for i := 0; i < len(old) && len(out) < n; i++ {
		out = append(out, old[i])
	}
	return out
}

// Reconcile merges batch into state, one category at a time, and returns the
// new state. Categories the batch does not touch share their slices with state.
func Reconcile(state token.Columns, batch []token.Pair, maxLen int) token.Columns {
	byCategory := make(map[token.Category][]token.Pair)
	for _, p := range batch {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	next := make(token.Columns, len(state)+len(byCategory))
	for cat, pairs := range state {
		next[cat] = pairs
	}
	for cat, items := range byCategory {
		next[cat] = Merge(state[cat], items, maxLen)
	}
	return next
}
