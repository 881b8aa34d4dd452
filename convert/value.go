// Package convert coerces loosely-typed runtime values into canonical Go
// types. Values are held in a tagged union with one coercion method per
// target type; combinations that don't make sense return an explicit error
// rather than a zero value.
package convert

import (
	"time"

	"github.com/pkg/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Binary
	Time
	List
	Assoc
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Binary:
		return "binary"
	case Time:
		return "time"
	case List:
		return "list"
	case Assoc:
		return "assoc"
	}
	return "unknown"
}

// Value is a loosely-typed runtime value, one of the Kind variants.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	bin   []byte
	t     time.Time
	list  []Value
	assoc []Pair
}

// Pair is one key/value entry of an association.
type Pair struct {
	Key   string
	Value Value
}

func NullValue() Value            { return Value{kind: Null} }
func BoolValue(b bool) Value      { return Value{kind: Bool, b: b} }
func IntValue(i int64) Value      { return Value{kind: Int, i: i} }
func FloatValue(f float64) Value  { return Value{kind: Float, f: f} }
func StringValue(s string) Value  { return Value{kind: String, s: s} }
func BinaryValue(b []byte) Value  { return Value{kind: Binary, bin: b} }
func TimeValue(t time.Time) Value { return Value{kind: Time, t: t} }
func ListValue(vs ...Value) Value { return Value{kind: List, list: vs} }
func AssocValue(ps ...Pair) Value { return Value{kind: Assoc, assoc: ps} }

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// From builds a Value from a plain Go value as produced by decoders like
// encoding/json. Unsupported types return an error.
func From(x interface{}) (Value, error) {
	switch x := x.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case float64:
		return FloatValue(x), nil
	case string:
		return StringValue(x), nil
	case []byte:
		return BinaryValue(x), nil
	case time.Time:
		return TimeValue(x), nil
	case []interface{}:
		list := make([]Value, 0, len(x))
		for _, e := range x {
			v, err := From(e)
			if err != nil {
				return Value{}, err
			}
			list = append(list, v)
		}
		return ListValue(list...), nil
	case map[string]interface{}:
		assoc := make([]Pair, 0, len(x))
		for k, e := range x {
			v, err := From(e)
			if err != nil {
				return Value{}, err
			}
			assoc = append(assoc, Pair{Key: k, Value: v})
		}
		return AssocValue(assoc...), nil
	}
	return Value{}, errors.Errorf("unsupported type %T", x)
}
