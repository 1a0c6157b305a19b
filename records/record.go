// Package records provides tuples whose positions can also be read by name.
package records

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/scylladb/go-set/strset"
	"github.com/tiendc/go-deepcopy"

	"cookbook/mapsutil"
)

var (
	ErrInvalidField = errors.New("invalid field name")
	ErrUnknownField = errors.New("unknown field")
	ErrArity        = errors.New("wrong number of values")
)

// Schema names the fields of a record type.
type Schema struct {
	name   string
	fields []string
	index  map[string]int
	names  *strset.Set
}

// NewSchema returns a schema with the given type name and field names.
// Field names must be non-empty and distinct.
func NewSchema(name string, fields ...string) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidField)
	}
	s := &Schema{
		name:   name,
		fields: append([]string(nil), fields...),
		index:  make(map[string]int, len(fields)),
		names:  strset.NewWithSize(len(fields)),
	}
	for i, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: field %d is empty", ErrInvalidField, i)
		}
		if s.names.Has(f) {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidField, f)
		}
		s.names.Add(f)
		s.index[f] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(name string, fields ...string) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.fields...)
}

// HasField reports whether every one of fields belongs to the schema.
func (s *Schema) HasField(fields ...string) bool {
	return s.names.Has(fields...)
}

// New returns a record holding values, one per field.
func (s *Schema) New(values ...any) (Record, error) {
	if len(values) != len(s.fields) {
		return Record{}, fmt.Errorf("%w: %s takes %d values, got %d", ErrArity, s.name, len(s.fields), len(values))
	}
	return Record{schema: s, values: append([]any(nil), values...)}, nil
}

// FromMap builds a record from m. Fields missing from m are nil.
func (s *Schema) FromMap(m map[string]any) (Record, error) {
	return s.Zero().Replace(m)
}

// Zero returns the record with every field set to nil.
func (s *Schema) Zero() Record {
	return Record{schema: s, values: make([]any, len(s.fields))}
}

// Record is an immutable tuple of values described by a Schema.
type Record struct {
	schema *Schema
	values []any
}

func (r Record) Schema() *Schema { return r.schema }

// Get returns the value of field.
func (r Record) Get(field string) (any, bool) {
	if r.schema == nil {
		return nil, false
	}
	i, ok := r.schema.index[field]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// At returns the value at position i. It panics if i is out of range.
func (r Record) At(i int) any {
	return r.values[i]
}

func (r Record) Len() int { return len(r.values) }

// Values returns a copy of the values in field order.
func (r Record) Values() []any {
	return append([]any(nil), r.values...)
}

// Unpack stores the values into dst, which must hold one pointer per field.
// Each value must be assignable to the pointer's element type; nil values
// store the zero value.
func (r Record) Unpack(dst ...any) error {
	if len(dst) != len(r.values) {
		return fmt.Errorf("%w: expected %d targets, got %d", ErrArity, len(r.values), len(dst))
	}
	for i, d := range dst {
		rv := reflect.ValueOf(d)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("records: target %d is not a non-nil pointer", i)
		}
		elem := rv.Elem()
		if r.values[i] == nil {
			elem.SetZero()
			continue
		}
		v := reflect.ValueOf(r.values[i])
		if !v.Type().AssignableTo(elem.Type()) {
			return fmt.Errorf("records: field %s: cannot assign %s to %s", r.schema.fields[i], v.Type(), elem.Type())
		}
		elem.Set(v)
	}
	return nil
}

// Replace returns a new record with the fields in changes set to new values.
// The values of the new record are deep copies, so mutating them never
// reaches r or changes.
func (r Record) Replace(changes map[string]any) (Record, error) {
	values := r.Values()
	for field, v := range changes {
		i, ok := r.schema.index[field]
		if !ok {
			return Record{}, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, r.schema.name, field)
		}
		values[i] = v
	}

	var cloned []any
	if err := deepcopy.Copy(&cloned, values); err != nil {
		return Record{}, fmt.Errorf("records: copy values: %w", err)
	}
	return Record{schema: r.schema, values: cloned}, nil
}

// AsMap returns the fields and their values in field order.
func (r Record) AsMap() *mapsutil.OrderedMap[string, any] {
	m := mapsutil.NewOrderedMap[string, any]()
	for i, f := range r.schema.fields {
		m.Set(f, r.values[i])
	}
	return m
}

// MarshalJSON encodes the record as an object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	return r.AsMap().MarshalJSON()
}

// String renders the record as Name(field=value, ...).
func (r Record) String() string {
	if r.schema == nil {
		return "Record()"
	}
	var b strings.Builder
	b.WriteString(r.schema.name)
	b.WriteByte('(')
	for i, f := range r.schema.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f)
		b.WriteByte('=')
		b.WriteString(formatValue(r.values[i]))
	}
	b.WriteByte(')')
	return b.String()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
