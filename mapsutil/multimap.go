// Package mapsutil holds map helpers: multimaps, an insertion-ordered map,
// value reductions, key views, subsets and layered lookups.
package mapsutil

import (
	"slices"

	"github.com/jwangsadinata/go-multimap/setmultimap"
	"github.com/samber/lo"
)

// ListMultimap maps a key to a list of values. Duplicate values are kept in
// insertion order. Keys are reported in the order they were first added.
type ListMultimap[K, V comparable] struct {
	values map[K][]V
	order  []K
}

func NewListMultimap[K, V comparable]() *ListMultimap[K, V] {
	return &ListMultimap[K, V]{values: make(map[K][]V)}
}

func (m *ListMultimap[K, V]) Put(key K, value V) {
	if m.values == nil {
		m.values = make(map[K][]V)
	}
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = append(m.values[key], value)
}

func (m *ListMultimap[K, V]) PutAll(key K, values ...V) {
	for _, v := range values {
		m.Put(key, v)
	}
}

// Get returns a copy of the values stored under key.
func (m *ListMultimap[K, V]) Get(key K) []V {
	return slices.Clone(m.values[key])
}

func (m *ListMultimap[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Remove deletes the first occurrence of value under key.
func (m *ListMultimap[K, V]) Remove(key K, value V) bool {
	vs := m.values[key]
	i := slices.Index(vs, value)
	if i < 0 {
		return false
	}
	vs = slices.Delete(vs, i, i+1)
	if len(vs) == 0 {
		m.RemoveAll(key)
	} else {
		m.values[key] = vs
	}
	return true
}

func (m *ListMultimap[K, V]) RemoveAll(key K) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.order = slices.DeleteFunc(m.order, func(k K) bool { return k == key })
}

func (m *ListMultimap[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// Len returns the number of distinct keys.
func (m *ListMultimap[K, V]) Len() int {
	return len(m.order)
}

// Size returns the number of key-value pairs.
func (m *ListMultimap[K, V]) Size() int {
	n := 0
	for _, vs := range m.values {
		n += len(vs)
	}
	return n
}

// Map returns a copy of the multimap as a plain map.
func (m *ListMultimap[K, V]) Map() map[K][]V {
	return lo.MapValues(m.values, func(vs []V, _ K) []V { return slices.Clone(vs) })
}

// SetMultimap maps a key to a set of values. Adding a value that is already
// present under the key has no effect. Values are reported in the order they
// were first added.
type SetMultimap[K, V comparable] struct {
	set  *setmultimap.MultiMap
	list *ListMultimap[K, V]
}

func NewSetMultimap[K, V comparable]() *SetMultimap[K, V] {
	return &SetMultimap[K, V]{
		set:  setmultimap.New(),
		list: NewListMultimap[K, V](),
	}
}

// Put adds value under key and reports whether it was not already present.
func (m *SetMultimap[K, V]) Put(key K, value V) bool {
	if m.set.Contains(key, value) {
		return false
	}
	m.set.Put(key, value)
	m.list.Put(key, value)
	return true
}

func (m *SetMultimap[K, V]) PutAll(key K, values ...V) {
	for _, v := range values {
		m.Put(key, v)
	}
}

func (m *SetMultimap[K, V]) Get(key K) []V {
	return m.list.Get(key)
}

func (m *SetMultimap[K, V]) Has(key K) bool {
	return m.set.ContainsKey(key)
}

// Contains reports whether value is stored under key.
func (m *SetMultimap[K, V]) Contains(key K, value V) bool {
	return m.set.Contains(key, value)
}

func (m *SetMultimap[K, V]) Remove(key K, value V) bool {
	if !m.set.Contains(key, value) {
		return false
	}
	m.set.Remove(key, value)
	return m.list.Remove(key, value)
}

func (m *SetMultimap[K, V]) RemoveAll(key K) {
	m.set.RemoveAll(key)
	m.list.RemoveAll(key)
}

func (m *SetMultimap[K, V]) Keys() []K {
	return m.list.Keys()
}

func (m *SetMultimap[K, V]) Len() int {
	return m.list.Len()
}

func (m *SetMultimap[K, V]) Size() int {
	return m.set.Size()
}

func (m *SetMultimap[K, V]) Map() map[K][]V {
	return m.list.Map()
}

// GroupPairs collects (key, value) pairs into a map of value lists, keeping
// the order in which values appear.
func GroupPairs[K comparable, V any](pairs []lo.Entry[K, V]) map[K][]V {
	groups := lo.GroupBy(pairs, func(e lo.Entry[K, V]) K { return e.Key })
	return lo.MapValues(groups, func(es []lo.Entry[K, V], _ K) []V {
		return lo.Map(es, func(e lo.Entry[K, V], _ int) V { return e.Value })
	})
}
