package mapsutil_test

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"cookbook/mapsutil"
)

func newFooBar() *mapsutil.OrderedMap[string, int] {
	d := mapsutil.NewOrderedMap[string, int]()
	d.Set("foo", 1)
	d.Set("bar", 2)
	d.Set("spam", 3)
	d.Set("grok", 4)
	return d
}

func TestOrderedMap_InsertionOrder(t *testing.T) {
	d := newFooBar()

	require.Equal(t, []string{"foo", "bar", "spam", "grok"}, d.Keys())
	require.Equal(t, []int{1, 2, 3, 4}, d.Values())
	require.Equal(t, 4, d.Len())

	// reassigning keeps the position
	d.Set("foo", 10)
	require.Equal(t, []string{"foo", "bar", "spam", "grok"}, d.Keys())
	v, ok := d.Get("foo")
	require.True(t, ok)
	require.Equal(t, 10, v)

	require.True(t, d.Delete("bar"))
	require.False(t, d.Delete("bar"))
	d.Set("bar", 2)
	require.Equal(t, []string{"foo", "spam", "grok", "bar"}, d.Keys())

	require.True(t, d.MoveToEnd("foo"))
	require.False(t, d.MoveToEnd("missing"))
	require.Equal(t, "OrderedMap[spam:3 grok:4 bar:2 foo:10]", d.String())
}

func TestOrderedMap_Pop(t *testing.T) {
	d := newFooBar()

	k, v, ok := d.PopFirst()
	require.True(t, ok)
	require.Equal(t, "foo", k)
	require.Equal(t, 1, v)

	k, v, ok = d.PopLast()
	require.True(t, ok)
	require.Equal(t, "grok", k)
	require.Equal(t, 4, v)

	require.Equal(t, []string{"bar", "spam"}, d.Keys())

	d.PopFirst()
	d.PopFirst()
	_, _, ok = d.PopLast()
	require.False(t, ok)
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	var d mapsutil.OrderedMap[string, string]
	require.Zero(t, d.Len())
	require.Empty(t, d.Keys())
	_, ok := d.Get("x")
	require.False(t, ok)

	d.Set("x", "y")
	require.Equal(t, []string{"x"}, d.Keys())
}

func TestOrderedMap_All_EarlyStop(t *testing.T) {
	d := newFooBar()
	var seen []string
	for k := range d.All() {
		seen = append(seen, k)
		if k == "bar" {
			break
		}
	}
	require.Equal(t, []string{"foo", "bar"}, seen)
}

func TestOrderedMap_JSON(t *testing.T) {
	d := newFooBar()

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"foo":1,"bar":2,"spam":3,"grok":4}`, string(data))
	require.Equal(t, `{"foo":1,"bar":2,"spam":3,"grok":4}`, string(data), "member order must follow insertion order")

	var back mapsutil.OrderedMap[string, int]
	require.NoError(t, json.Unmarshal([]byte(`{"z": 26, "a": 1, "m": 13}`), &back))
	require.Equal(t, []string{"z", "a", "m"}, back.Keys())
	require.Equal(t, []int{26, 1, 13}, back.Values())

	empty := mapsutil.NewOrderedMap[string, any]()
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestOrderedMap_JSONNested(t *testing.T) {
	inner := mapsutil.NewOrderedMap[string, any]()
	inner.Set("b", []int{1, 2})
	inner.Set("a", "x")

	outer := mapsutil.NewOrderedMap[string, any]()
	outer.Set("inner", inner)
	outer.Set("n", nil)

	data, err := json.Marshal(outer)
	require.NoError(t, err)
	require.Equal(t, `{"inner":{"b":[1,2],"a":"x"},"n":null}`, string(data))
}

func TestOrderedMap_JSONKeys(t *testing.T) {
	addrs := mapsutil.NewOrderedMap[netip.Addr, string]()
	addrs.Set(netip.MustParseAddr("10.0.0.2"), "b")
	addrs.Set(netip.MustParseAddr("10.0.0.1"), "a")

	data, err := json.Marshal(addrs)
	require.NoError(t, err)
	require.Equal(t, `{"10.0.0.2":"b","10.0.0.1":"a"}`, string(data))

	var back mapsutil.OrderedMap[netip.Addr, string]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, addrs.Keys(), back.Keys())

	ints := mapsutil.NewOrderedMap[int, string]()
	ints.Set(1, "one")
	_, err = json.Marshal(ints)
	require.ErrorIs(t, err, mapsutil.ErrUnsupportedKey)
}

func TestOrderedMap_UnmarshalErrors(t *testing.T) {
	var d mapsutil.OrderedMap[string, int]
	require.Error(t, json.Unmarshal([]byte(`[1, 2]`), &d))
	require.Error(t, json.Unmarshal([]byte(`{"a": "not a number"}`), &d))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	require.Zero(t, d.Len())
}
