package main

import (
	"math"
	"strconv"
	"strings"
)

// Type names the variant of a Value.
type Type uint8

// Value types; TypeNumber only ever appears as the expected side of a
// type mismatch.
const (
	TypeInt Type = iota + 1
	TypeFloat
	TypeString
	TypeBool
	TypeNumber
)

var typeNames = [...]string{"<invalid>", "int", "float", "string", "bool", "number"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Value is a datum on the stack or in the variable store: one of Int, Float,
// Str or Bool. Values are immutable; copying one never aliases another.
type Value interface {
	Type() Type

	// String returns the display form used by the output word.
	String() string
}

// Int is a signed 64-bit integer value.
type Int int64

// Float is a 64-bit floating point value.
type Float float64

// Str is a UTF-8 string value.
type Str string

// Bool is a boolean value.
type Bool bool

func (Int) Type() Type   { return TypeInt }
func (Float) Type() Type { return TypeFloat }
func (Str) Type() Type   { return TypeString }
func (Bool) Type() Type  { return TypeBool }

func (i Int) String() string  { return strconv.FormatInt(int64(i), 10) }
func (s Str) String() string  { return string(s) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String renders the shortest decimal form that round-trips, never using an
// exponent: 2.0 renders as "2" and 1e21 as "1000000000000000000000".
func (f Float) String() string {
	switch x := float64(f); {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
}

// Repr renders v as it appears in a stack listing: like String, except that
// strings are shown in double quotes.
func Repr(v Value) string {
	if s, ok := v.(Str); ok {
		return `"` + string(s) + `"`
	}
	return v.String()
}

// FormatStack renders a stack listing like `Stack: [1, 2.5, "a", true]`.
func FormatStack(stack []Value) string {
	var sb strings.Builder
	sb.WriteString("Stack: [")
	for i, v := range stack {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Repr(v))
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal compares values structurally: same-typed values by native equality,
// Int against Float numerically, any other pairing is unequal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x == y
		case Float:
			return float64(x) == float64(y)
		}
	case Float:
		switch y := b.(type) {
		case Float:
			return x == y
		case Int:
			return float64(x) == float64(y)
		}
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	}
	return false
}

// number returns v widened to float64, and whether it was an integer.
func number(v Value) (f float64, isInt, ok bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true, true
	case Float:
		return float64(n), false, true
	}
	return 0, false, false
}

// truncInt converts f to an integer, truncating toward zero and saturating
// at the int64 bounds; NaN converts to 0. Integer division by zero relies on
// this: 1 0 / is the maximum int64, -1 0 / the minimum, 0 0 / is 0.
func truncInt(f float64) Int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return Int(f)
}
