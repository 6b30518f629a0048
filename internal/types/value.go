// Package types defines runtime value types for ucore.
package types

import "strconv"

// Kind represents the type of a CORE value.
type Kind uint8

const (
	KindNull Kind = iota // Declared but never assigned
	KindInt              // Integer value
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Value represents a CORE runtime value: either null (uninitialized)
// or a fixed-width signed integer. Values are passed by value.
type Value struct {
	kind Kind
	num  int64
}

// Null returns a null (uninitialized) value.
func Null() Value {
	return Value{kind: KindNull}
}

// Int creates an integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Int returns the integer content; 0 for null values.
func (v Value) Int() int64 {
	return v.num
}

// String returns "null" or the decimal rendering of the integer.
func (v Value) String() string {
	if v.kind == KindNull {
		return "null"
	}
	return strconv.FormatInt(v.num, 10)
}
