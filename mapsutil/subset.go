package mapsutil

import "github.com/samber/lo"

// Select returns a new map with the entries that satisfy pred.
func Select[K comparable, V any](m map[K]V, pred func(K, V) bool) map[K]V {
	return lo.PickBy(m, pred)
}

// SelectKeys returns a new map restricted to keys. Missing keys are ignored.
func SelectKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.PickByKeys(m, keys)
}

// Without returns a new map with keys removed.
func Without[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.OmitByKeys(m, keys)
}
