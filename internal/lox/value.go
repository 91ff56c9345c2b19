package lox

import (
	"math"
	"strconv"
)

// Value is the interpreter's runtime tagged union (§3). Grounded on the
// teacher's object.go (LoxNil/LoxBool/LoxNumber/LoxString/LoxFunction),
// renamed to Value to keep clear of Go's own `interface{}`/`any`.
type Value interface {
	isValue()
	String() string
}

type NilValue struct{}

func (NilValue) isValue()      {}
func (NilValue) String() string { return "nil" }

type BoolValue bool

func (BoolValue) isValue() {}
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

type NumberValue float64

func (NumberValue) isValue() {}
func (n NumberValue) String() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	if f == math.Trunc(f) {
		if math.Signbit(f) {
			return "-" + strconv.FormatFloat(-f, 'f', -1, 64)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type StringValue string

func (StringValue) isValue()        {}
func (s StringValue) String() string { return string(s) }

// NewNil, NewBool, NewNumber, NewString mirror the teacher's object.go
// constructor-function naming.
func NewNil() Value              { return NilValue{} }
func NewBool(b bool) Value       { return BoolValue(b) }
func NewNumber(n float64) Value  { return NumberValue(n) }
func NewString(s string) Value   { return StringValue(s) }

// IsTruthy implements §4.4.1: everything is truthy except Nil and false.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(val)
	default:
		return true
	}
}

// valuesEqual implements the cross-variant equality rule of §4.4.1.
// NaN != NaN falls straight out of float64 comparison.
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	default:
		// Function values are compared by identity; two distinct
		// function values are never equal even with the same name.
		return a == b
	}
}

// literalValue converts a scanned Number/String/keyword literal token
// into the Value it denotes (§4.4.2 "Literal(v) | yield v").
func literalValue(tok Token) Value {
	switch tok.Type {
	case True:
		return NewBool(true)
	case False:
		return NewBool(false)
	case Nil:
		return NewNil()
	case Number:
		return NewNumber(tok.Literal.Number)
	case String:
		return NewString(tok.Literal.Str)
	default:
		return NewNil()
	}
}
