package records_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"cookbook/records"
)

func TestSchema_New(t *testing.T) {
	subscriber := records.MustSchema("Subscriber", "addr", "joined")
	sub, err := subscriber.New("jonesy@example.com", "2021-10-19")
	require.NoError(t, err)

	v, ok := sub.Get("addr")
	require.True(t, ok)
	require.Equal(t, "jonesy@example.com", v)
	require.Equal(t, "2021-10-19", sub.At(1))
	require.Equal(t, 2, sub.Len())
	require.Equal(t, `Subscriber(addr="jonesy@example.com", joined="2021-10-19")`, sub.String())

	var addr, joined string
	require.NoError(t, sub.Unpack(&addr, &joined))
	require.Equal(t, "jonesy@example.com", addr)
	require.Equal(t, "2021-10-19", joined)

	_, ok = sub.Get("email")
	require.False(t, ok)

	_, err = subscriber.New("only-one")
	require.ErrorIs(t, err, records.ErrArity)
}

func TestNewSchema_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"EmptyField", []string{"a", ""}},
		{"Duplicate", []string{"name", "shares", "name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := records.NewSchema("Stock", tt.fields...)
			require.ErrorIs(t, err, records.ErrInvalidField)
		})
	}

	_, err := records.NewSchema("", "a")
	require.ErrorIs(t, err, records.ErrInvalidField)

	require.Panics(t, func() { records.MustSchema("Stock", "x", "x") })
}

func TestRecord_Unpack(t *testing.T) {
	stock := records.MustSchema("Stock", "name", "shares", "price")
	s, err := stock.New("ACME", 100, 123.45)
	require.NoError(t, err)

	var (
		name   string
		shares int
		price  float64
	)
	require.NoError(t, s.Unpack(&name, &shares, &price))
	require.Equal(t, "ACME", name)
	require.Equal(t, 100, shares)
	require.InDelta(t, 123.45, price, 1e-9)

	require.ErrorIs(t, s.Unpack(&name, &shares), records.ErrArity)
	require.Error(t, s.Unpack(&name, &name, &price), "int is not assignable to string")
	require.Error(t, s.Unpack(name, &shares, &price), "targets must be pointers")

	var anything any = "untouched"
	z := stock.Zero()
	require.NoError(t, z.Unpack(&name, &shares, &anything))
	require.Empty(t, name)
	require.Zero(t, shares)
	require.Nil(t, anything)
}

func TestRecord_Replace(t *testing.T) {
	stock := records.MustSchema("Stock", "name", "shares", "price")
	s, err := stock.New("ACME", 100, 123.45)
	require.NoError(t, err)
	require.Equal(t, `Stock(name="ACME", shares=100, price=123.45)`, s.String())

	s2, err := s.Replace(map[string]any{"shares": 75})
	require.NoError(t, err)
	require.Equal(t, `Stock(name="ACME", shares=75, price=123.45)`, s2.String())
	require.Equal(t, 100, s.At(1), "the original record is unchanged")

	_, err = s.Replace(map[string]any{"owner": "me"})
	require.ErrorIs(t, err, records.ErrUnknownField)
}

func TestRecord_ReplaceDeepCopies(t *testing.T) {
	order := records.MustSchema("Order", "id", "items")
	tags := []string{"a", "b"}
	o, err := order.New(1, tags)
	require.NoError(t, err)

	o2, err := o.Replace(map[string]any{"id": 2})
	require.NoError(t, err)

	o2.At(1).([]string)[0] = "changed"
	require.Equal(t, []string{"a", "b"}, o.At(1))
	require.Equal(t, []string{"a", "b"}, tags)

	extra := map[string]int{"x": 1}
	o3, err := o.Replace(map[string]any{"items": extra})
	require.NoError(t, err)
	extra["x"] = 99
	require.Equal(t, map[string]int{"x": 1}, o3.At(1))
}

func TestSchema_FromMap(t *testing.T) {
	stock := records.MustSchema("Stock", "name", "shares", "price", "date", "time")

	a, err := stock.FromMap(map[string]any{"name": "ACME", "shares": 100, "price": 123.45})
	require.NoError(t, err)
	require.Equal(t, `Stock(name="ACME", shares=100, price=123.45, date=nil, time=nil)`, a.String())

	b, err := stock.FromMap(map[string]any{
		"name": "ACME", "shares": 100, "price": 123.45, "date": "12/17/2012",
	})
	require.NoError(t, err)
	require.Equal(t, `Stock(name="ACME", shares=100, price=123.45, date="12/17/2012", time=nil)`, b.String())

	_, err = stock.FromMap(map[string]any{"ticker": "ACME"})
	require.ErrorIs(t, err, records.ErrUnknownField)
}

func TestRecord_AsMap(t *testing.T) {
	stock := records.MustSchema("Stock", "name", "shares", "price")
	s, err := stock.New("ACME", 100, 123.45)
	require.NoError(t, err)

	m := s.AsMap()
	require.Equal(t, []string{"name", "shares", "price"}, m.Keys())
	v, ok := m.Get("shares")
	require.True(t, ok)
	require.Equal(t, 100, v)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"ACME","shares":100,"price":123.45}`, string(data))
	require.Equal(t, `{"name":"ACME","shares":100,"price":123.45}`, string(data), "fields keep their order")
}

func TestRecord_Values(t *testing.T) {
	point := records.MustSchema("Point", "x", "y")
	p, err := point.New(1, 2)
	require.NoError(t, err)

	vals := p.Values()
	vals[0] = 100
	require.Equal(t, 1, p.At(0))
	require.Equal(t, []string{"x", "y"}, point.Fields())
	require.True(t, point.HasField("x", "y"))
	require.False(t, point.HasField("x", "z"))
	require.Equal(t, "Point", p.Schema().Name())
}
