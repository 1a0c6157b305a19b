package mapsutil

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// compareEntries orders entries by value, then by key, which makes every
// reduction deterministic even when values tie.
func compareEntries[K, V cmp.Ordered](a, b lo.Entry[K, V]) int {
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// MinByValue returns the entry with the smallest value.
// Ties on value go to the smallest key.
func MinByValue[K, V cmp.Ordered](m map[K]V) (lo.Entry[K, V], bool) {
	if len(m) == 0 {
		return lo.Entry[K, V]{}, false
	}
	return slices.MinFunc(lo.Entries(m), compareEntries[K, V]), true
}

// MaxByValue returns the entry with the largest value.
// Ties on value go to the largest key.
func MaxByValue[K, V cmp.Ordered](m map[K]V) (lo.Entry[K, V], bool) {
	if len(m) == 0 {
		return lo.Entry[K, V]{}, false
	}
	return slices.MaxFunc(lo.Entries(m), compareEntries[K, V]), true
}

// SortedByValue returns the entries ordered by ascending value, then key.
func SortedByValue[K, V cmp.Ordered](m map[K]V) []lo.Entry[K, V] {
	entries := lo.Entries(m)
	slices.SortFunc(entries, compareEntries[K, V])
	return entries
}

// MinKey returns the smallest key. Reductions over a map work on keys
// unless values are asked for explicitly.
func MinKey[K cmp.Ordered, V any](m map[K]V) (K, bool) {
	if len(m) == 0 {
		var zero K
		return zero, false
	}
	return slices.Min(slices.Collect(maps.Keys(m))), true
}

// MaxKey returns the largest key.
func MaxKey[K cmp.Ordered, V any](m map[K]V) (K, bool) {
	if len(m) == 0 {
		var zero K
		return zero, false
	}
	return slices.Max(slices.Collect(maps.Keys(m))), true
}
