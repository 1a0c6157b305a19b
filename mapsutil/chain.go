package mapsutil

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
)

var ErrKeyNotFound = errors.New("key not found")

// ChainMap groups several maps into a single logical view. Lookups search
// the layers in order; writes and deletes only touch the first layer. The
// layers are referenced, not copied, so changes to them show through.
type ChainMap[K cmp.Ordered, V any] struct {
	maps []map[K]V
}

// NewChainMap layers maps, first one on top. With no maps the chain starts
// with a single empty layer. Nil layers are replaced by empty maps; the
// caller's slice is not modified.
func NewChainMap[K cmp.Ordered, V any](layers ...map[K]V) *ChainMap[K, V] {
	if len(layers) == 0 {
		layers = []map[K]V{{}}
	}
	layers = slices.Clone(layers)
	for i, m := range layers {
		if m == nil {
			layers[i] = map[K]V{}
		}
	}
	return &ChainMap[K, V]{maps: layers}
}

func (c *ChainMap[K, V]) Get(key K) (V, bool) {
	for _, m := range c.maps {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (c *ChainMap[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Set writes to the first layer.
func (c *ChainMap[K, V]) Set(key K, value V) {
	c.maps[0][key] = value
}

// Delete removes key from the first layer. Keys that only live in a deeper
// layer cannot be deleted through the chain.
func (c *ChainMap[K, V]) Delete(key K) error {
	if _, ok := c.maps[0][key]; !ok {
		return fmt.Errorf("%w in the first mapping: %v", ErrKeyNotFound, key)
	}
	delete(c.maps[0], key)
	return nil
}

// Len returns the number of distinct keys across all layers.
func (c *ChainMap[K, V]) Len() int {
	return len(c.Keys())
}

// Keys returns the distinct keys across all layers, sorted.
func (c *ChainMap[K, V]) Keys() []K {
	keys := make([]K, 0)
	for _, m := range c.maps {
		keys = append(keys, slices.Collect(maps.Keys(m))...)
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Values returns the visible value for every key, in Keys order.
func (c *ChainMap[K, V]) Values() []V {
	return lo.Map(c.Keys(), func(k K, _ int) V {
		v, _ := c.Get(k)
		return v
	})
}

// NewChild returns a chain with a new first layer on top of the current
// layers. With no argument the new layer is empty.
func (c *ChainMap[K, V]) NewChild(layer ...map[K]V) *ChainMap[K, V] {
	top := map[K]V{}
	if len(layer) > 0 && layer[0] != nil {
		top = layer[0]
	}
	return &ChainMap[K, V]{maps: append([]map[K]V{top}, c.maps...)}
}

// Parents returns a chain without the first layer. A chain always keeps at
// least one layer, so dropping the last one leaves an empty map.
func (c *ChainMap[K, V]) Parents() *ChainMap[K, V] {
	return NewChainMap(slices.Clone(c.maps[1:])...)
}

// Maps returns the layers, first one on top.
func (c *ChainMap[K, V]) Maps() []map[K]V {
	return slices.Clone(c.maps)
}

// Flatten copies the visible entries into a single map.
func (c *ChainMap[K, V]) Flatten() map[K]V {
	return Merge(c.maps...)
}

// Merge copies maps into a new map. When a key appears in several maps the
// first one wins, matching ChainMap lookups, but later changes to the inputs
// are not reflected.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	reversed := slices.Clone(ms)
	slices.Reverse(reversed)
	return lo.Assign(reversed...)
}
