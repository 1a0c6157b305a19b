package mapsutil

import (
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
	"github.com/scylladb/go-set/strset"

	"cookbook/sliceutil"
)

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// CommonKeys returns the keys present in both maps, sorted.
func CommonKeys[K cmp.Ordered, V1, V2 any](a map[K]V1, b map[K]V2) []K {
	return sliceutil.Intersection(sortedKeys(a), sortedKeys(b))
}

// KeysDifference returns the keys of a that are not in b, sorted.
func KeysDifference[K cmp.Ordered, V1, V2 any](a map[K]V1, b map[K]V2) []K {
	return sliceutil.Difference(sortedKeys(a), sortedKeys(b))
}

// CommonItems returns the entries that appear in both maps with an equal
// value, sorted by key.
func CommonItems[K cmp.Ordered, V comparable](a, b map[K]V) []lo.Entry[K, V] {
	items := make([]lo.Entry[K, V], 0)
	for _, k := range CommonKeys(a, b) {
		if a[k] == b[k] {
			items = append(items, lo.Entry[K, V]{Key: k, Value: a[k]})
		}
	}
	return items
}

// StringKeySet returns the keys of m as a set, for callers that want set
// algebra (union, difference, subset checks) over key views.
func StringKeySet[V any](m map[string]V) *strset.Set {
	s := strset.NewWithSize(len(m))
	for k := range m {
		s.Add(k)
	}
	return s
}
