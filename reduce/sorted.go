package reduce

import (
	"cmp"
	"slices"
)

// Entry is one row of a sorted view over a reduction result.
type Entry[V any] struct {
	Key string
	Val V
}

// SortedByValue turns an unordered reduction result into a display view
// sorted by value descending. Keys with equal values are ordered by key
// ascending, so the view is deterministic regardless of map iteration order.
func SortedByValue[V cmp.Ordered](m map[string]V) []Entry[V] {
	entries := make([]Entry[V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[V]{Key: k, Val: v})
	}

	slices.SortStableFunc(entries, func(a, b Entry[V]) int {
		if c := cmp.Compare(b.Val, a.Val); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return entries
}
