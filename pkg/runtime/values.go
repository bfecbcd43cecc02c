// Package runtime defines SimpleScript runtime values and the variable
// environment they live in.
package runtime

import (
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
)

// String returns the language-level type name, as reported by typeof.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is the shared behaviour for all runtime values. Values are plain
// data with copy semantics; the language has no mutable compound types.
type Value interface {
	Kind() Kind
	Display() string
}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// Display renders the string verbatim, without quotes.
func (v StringValue) Display() string { return v.Val }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

// Display renders integral numbers without a decimal point and everything
// else as the shortest decimal that round-trips. Integral values outside the
// int64 range take the decimal path: Go's out-of-range float→int conversion
// is implementation-dependent and must not be reached.
func (v NumberValue) Display() string {
	switch {
	case math.IsInf(v.Val, 1):
		return "inf"
	case math.IsInf(v.Val, -1):
		return "-inf"
	case v.Val == math.Trunc(v.Val) && math.Abs(v.Val) < 1<<63:
		return strconv.FormatInt(int64(v.Val), 10)
	}
	return strconv.FormatFloat(v.Val, 'f', -1, 64)
}

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBoolean }

func (v BoolValue) Display() string {
	if v.Val {
		return "true"
	}
	return "false"
}

// NullValue is the result of void-returning builtins.
type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

func (NullValue) Display() string { return "null" }
