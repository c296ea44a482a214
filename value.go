package streamjson

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ErrType is returned when a Value is cast to the wrong accessor
// (teacher's own sentinel, generalized to the expanded Type set below).
var ErrType = errors.New("streamjson: type error")

// Type is the type of a parsed JSON value. It generalizes the teacher's
// enum with the two escalation types spec §4.7 introduces: BigInteger
// and BigDecimal, produced when a number's magnitude or precision
// exceeds native int64/float64 limits (spec Invariant N1), or for every
// number under the BigDec option.
type Type int

const (
	Null Type = iota
	Integer
	Number
	BigInteger
	BigDecimal
	String
	Boolean
	Array
	Object
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<integer>",
	"<number>",
	"<big integer>",
	"<big decimal>",
	"<string>",
	"<boolean>",
	"<array>",
	"<object>",
}

// String returns a human-readable name for t.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// Value is a structured JSON value, the tree the default Handler builds.
type Value struct {
	typ    Type
	i      int64
	f      float64
	bigI   *big.Int
	bigF   *big.Float
	s      string
	b      bool
	arr    []*Value
	obj    []pair
}

type pair struct {
	key string
	val *Value
}

// Type reports v's type.
func (v *Value) Type() Type {
	if v == nil {
		return typeUnknown
	}
	if v.typ >= 0 && v.typ < numTypes {
		return v.typ
	}
	return typeUnknown
}

// AsNull extracts a null value. Returns ErrType if v is not null.
func (v *Value) AsNull() (struct{}, error) {
	if v.Type() == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("%w: value not null %v", ErrType, v)
}

// AsNumber extracts a float64, widening Integer/Number/BigInteger/
// BigDecimal as needed. For exact big values, use AsBigInt/AsBigDecimal
// instead. Returns ErrType if v is not numeric.
func (v *Value) AsNumber() (float64, error) {
	switch v.Type() {
	case Integer:
		return float64(v.i), nil
	case Number:
		return v.f, nil
	case BigInteger:
		f := new(big.Float).SetInt(v.bigI)
		r, _ := f.Float64()
		return r, nil
	case BigDecimal:
		r, _ := v.bigF.Float64()
		return r, nil
	default:
		return 0, fmt.Errorf("%w: value not a valid number %v", ErrType, v)
	}
}

// AsInteger extracts a native int64. Does not widen from Number or
// BigInteger; use AsNumber/AsBigInt for those. Returns ErrType otherwise.
func (v *Value) AsInteger() (int64, error) {
	if v.Type() == Integer {
		return v.i, nil
	}
	return 0, fmt.Errorf("%w: value not a valid integer %v", ErrType, v)
}

// AsBigInt extracts the arbitrary-precision integer produced when a
// whole number escalated past native precision (spec §4.7). Returns
// ErrType if v is not a BigInteger.
func (v *Value) AsBigInt() (*big.Int, error) {
	if v.Type() == BigInteger {
		return v.bigI, nil
	}
	return nil, fmt.Errorf("%w: value not a valid big integer %v", ErrType, v)
}

// AsBigDecimal extracts the arbitrary-precision decimal produced when a
// decimal escalated past native precision (or any decimal under the
// BigDec option); the FloatDec option yields a Number instead (spec
// §4.7, §6.3). Returns ErrType if v is not a BigDecimal.
func (v *Value) AsBigDecimal() (*big.Float, error) {
	if v.Type() == BigDecimal {
		return v.bigF, nil
	}
	return nil, fmt.Errorf("%w: value not a valid big decimal %v", ErrType, v)
}

// AsString extracts a string value. Returns ErrType if v is not a string.
func (v *Value) AsString() (string, error) {
	if v.Type() == String {
		return v.s, nil
	}
	return "", fmt.Errorf("%w: value not a valid string %v", ErrType, v)
}

// AsBoolean extracts a boolean value. Returns ErrType if v is not boolean.
func (v *Value) AsBoolean() (bool, error) {
	if v.Type() == Boolean {
		return v.b, nil
	}
	return false, fmt.Errorf("%w: value not a valid boolean %v", ErrType, v)
}

// AsArray extracts an array value. Returns ErrType if v is not an array.
func (v *Value) AsArray() ([]*Value, error) {
	if v.Type() == Array {
		return v.arr, nil
	}
	return nil, fmt.Errorf("%w: value not a valid array %v", ErrType, v)
}

// AsObject extracts an object value as a map, discarding key order.
// Use Pairs to preserve document order. Returns ErrType if v is not an
// object.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.Type() != Object {
		return nil, fmt.Errorf("%w: value not a valid object %v", ErrType, v)
	}
	m := map[string]*Value{}
	for _, p := range v.obj {
		m[p.key] = p.val
	}
	return m, nil
}

// Pairs returns an object's (key, value) pairs in document order.
// Returns ErrType if v is not an object.
func (v *Value) Pairs() ([]struct {
	Key string
	Val *Value
}, error) {
	if v.Type() != Object {
		return nil, fmt.Errorf("%w: value not a valid object %v", ErrType, v)
	}
	out := make([]struct {
		Key string
		Val *Value
	}, len(v.obj))
	for i, p := range v.obj {
		out[i] = struct {
			Key string
			Val *Value
		}{p.key, p.val}
	}
	return out, nil
}

// String renders a debugging representation. NOT guaranteed valid JSON
// for non-finite numbers (Infinity/NaN have no JSON literal); use
// Encode for a strict round-trippable rendering of finite documents.
func (v *Value) String() string {
	switch v.Type() {
	case Null:
		return "null"
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Number:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case BigInteger:
		return v.bigI.String()
	case BigDecimal:
		return v.bigF.Text('g', -1)
	case String:
		return strconv.Quote(v.s)
	case Boolean:
		if v.b {
			return "true"
		}
		return "false"
	case Array:
		s := "["
		for i, e := range v.arr {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	case Object:
		s := "{"
		for i, p := range v.obj {
			if i > 0 {
				s += ", "
			}
			s += strconv.Quote(p.key) + ": " + p.val.String()
		}
		return s + "}"
	}
	return "<unknown>"
}

// Index fluently accesses an array member, returning an empty Value
// instead of an error when v is not an array or the index is out of
// range.
func (v *Value) Index(i int) *Value {
	if v.Type() != Array || i < 0 || i >= len(v.arr) {
		return &Value{}
	}
	return v.arr[i]
}

// Key fluently accesses an object member, returning an empty Value
// instead of an error when v is not an object or has no such key.
func (v *Value) Key(k string) *Value {
	if v.Type() != Object {
		return &Value{}
	}
	for _, p := range v.obj {
		if p.key == k {
			return p.val
		}
	}
	return &Value{}
}
