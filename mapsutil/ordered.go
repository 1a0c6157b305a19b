package mapsutil

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var ErrUnsupportedKey = errors.New("unsupported map key type")

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Overwriting an existing key keeps its position.
//
// The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	m *linkedhashmap.Map
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: linkedhashmap.New()}
}

func (o *OrderedMap[K, V]) table() *linkedhashmap.Map {
	if o.m == nil {
		o.m = linkedhashmap.New()
	}
	return o.m
}

func (o *OrderedMap[K, V]) Set(key K, value V) {
	o.table().Put(key, value)
}

func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if o.m == nil {
		return zero, false
	}
	v, ok := o.m.Get(key)
	if !ok {
		return zero, false
	}
	return v.(V), true
}

func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	if !o.Has(key) {
		return false
	}
	o.m.Remove(key)
	return true
}

func (o *OrderedMap[K, V]) Len() int {
	if o.m == nil {
		return 0
	}
	return o.m.Size()
}

func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}

func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Len())
	for _, v := range o.All() {
		values = append(values, v)
	}
	return values
}

// All yields the entries in insertion order.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if o.m == nil {
			return
		}
		it := o.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}

// MoveToEnd moves key to the end of the order.
func (o *OrderedMap[K, V]) MoveToEnd(key K) bool {
	v, ok := o.Get(key)
	if !ok {
		return false
	}
	o.m.Remove(key)
	o.m.Put(key, v)
	return true
}

// PopFirst removes and returns the oldest entry.
func (o *OrderedMap[K, V]) PopFirst() (K, V, bool) {
	return o.pop(func(it *linkedhashmap.Iterator) bool { return it.First() })
}

// PopLast removes and returns the newest entry.
func (o *OrderedMap[K, V]) PopLast() (K, V, bool) {
	return o.pop(func(it *linkedhashmap.Iterator) bool { return it.Last() })
}

func (o *OrderedMap[K, V]) pop(seek func(*linkedhashmap.Iterator) bool) (K, V, bool) {
	var (
		k K
		v V
	)
	if o.Len() == 0 {
		return k, v, false
	}
	it := o.m.Iterator()
	if !seek(&it) {
		return k, v, false
	}
	k, v = it.Key().(K), it.Value().(V)
	o.m.Remove(k)
	return k, v, true
}

func (o *OrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("OrderedMap[")
	first := true
	for k, v := range o.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the map as a JSON object whose members follow the
// insertion order. Keys must be strings or implement encoding.TextMarshaler.
func (o *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}
	for k, v := range o.All() {
		name, err := encodeKey(k)
		if err != nil {
			return nil, err
		}
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return nil, err
		}
		if err := json.MarshalEncode(enc, v); err != nil {
			return nil, fmt.Errorf("mapsutil: encoding value for key %q: %w", name, err)
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON replaces the contents of the map with the members of a JSON
// object, in document order. A JSON null leaves the map unchanged.
func (o *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		return nil
	case '{':
	default:
		return fmt.Errorf("mapsutil: cannot unmarshal JSON %v into OrderedMap", tok.Kind())
	}

	m := linkedhashmap.New()
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return err
		}
		var k K
		if err := decodeKey(name.String(), &k); err != nil {
			return err
		}
		var v V
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return fmt.Errorf("mapsutil: decoding value for key %q: %w", name.String(), err)
		}
		m.Put(k, v)
	}
	if _, err := dec.ReadToken(); err != nil {
		return err
	}
	o.m = m
	return nil
}

func encodeKey[K any](k K) (string, error) {
	switch v := any(k).(type) {
	case string:
		return v, nil
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		return string(b), err
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, k)
}

func decodeKey[K any](name string, k *K) error {
	switch p := any(k).(type) {
	case *string:
		*p = name
		return nil
	case encoding.TextUnmarshaler:
		return p.UnmarshalText([]byte(name))
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedKey, *k)
}
