package ast

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Value is the constant carried by a Literal expression.
type Value interface {
	// TypeName returns the name of the value's type, e.g. "int".
	TypeName() string
	// Truthy reports whether the value counts as true in a condition.
	Truthy() bool
	// String returns the display form of the value.
	String() string
	// literal returns the value as source text.
	literal() string
}

type (
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Null  struct{}
)

func (v Int) TypeName() string   { return "int" }
func (v Float) TypeName() string { return "float" }
func (v Bool) TypeName() string  { return "bool" }
func (v Str) TypeName() string   { return "string" }
func (v Null) TypeName() string  { return "null" }

func (v Int) Truthy() bool   { return v != 0 }
func (v Float) Truthy() bool { return v != 0 }
func (v Bool) Truthy() bool  { return bool(v) }
func (v Str) Truthy() bool   { return v != "" }
func (v Null) Truthy() bool  { return false }

func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Bool) String() string  { return strconv.FormatBool(bool(v)) }
func (v Str) String() string   { return string(v) }
func (v Null) String() string  { return "null" }

func (v Int) literal() string  { return v.String() }
func (v Bool) literal() string { return v.String() }
func (v Null) literal() string { return "null" }

// Float literals always contain a period.
func (v Float) literal() string {
	s := v.String()
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

func (v Str) literal() string {
	return `"` + strings.ReplaceAll(string(v), `"`, `\"`) + `"`
}

// ToInt converts a value to an integer. Floats are truncated and strings
// are parsed. Null has no integer form.
func ToInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case Int:
		return int64(v), true
	case Float:
		return int64(v), true
	case Bool:
		if v {
			return 1, true
		}
		return 0, true
	case Str:
		i, err := strconv.ParseInt(string(v), 10, 64)
		return i, err == nil
	}
	return 0, false
}

// ToFloat converts a value to a float. Strings are parsed. Null has no
// float form.
func ToFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	case Bool:
		if v {
			return 1, true
		}
		return 0, true
	case Str:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	}
	return 0, false
}

// numeric returns both operands as floats when both are numbers. ints
// reports whether both are ints.
func numeric(a, b Value) (x, y float64, ints bool, ok bool) {
	_, aInt := a.(Int)
	_, bInt := b.(Int)
	_, aFloat := a.(Float)
	_, bFloat := b.(Float)
	if !(aInt || aFloat) || !(bInt || bFloat) {
		return 0, 0, false, false
	}
	x, _ = ToFloat(a)
	y, _ = ToFloat(b)
	return x, y, aInt && bInt, true
}

// AddValues returns a + b for numbers and the concatenation for strings.
func AddValues(a, b Value) (Value, error) {
	if as, ok := a.(Str); ok {
		if bs, ok := b.(Str); ok {
			return as + bs, nil
		}
	}
	x, y, ints, ok := numeric(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot add %s and %s", a.TypeName(), b.TypeName())
	}
	if ints {
		return a.(Int) + b.(Int), nil
	}
	return Float(x + y), nil
}

// SubValues returns a - b.
func SubValues(a, b Value) (Value, error) {
	x, y, ints, ok := numeric(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot subtract %s from %s", b.TypeName(), a.TypeName())
	}
	if ints {
		return a.(Int) - b.(Int), nil
	}
	return Float(x - y), nil
}

// MulValues returns a * b.
func MulValues(a, b Value) (Value, error) {
	x, y, ints, ok := numeric(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot multiply %s and %s", a.TypeName(), b.TypeName())
	}
	if ints {
		return a.(Int) * b.(Int), nil
	}
	return Float(x * y), nil
}

// DivValues returns a / b. Dividing two ints yields an Int when the division is
// exact and a Float otherwise.
func DivValues(a, b Value) (Value, error) {
	x, y, ints, ok := numeric(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot divide %s by %s", a.TypeName(), b.TypeName())
	}
	if y == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	if ints {
		ai, bi := a.(Int), b.(Int)
		if ai%bi == 0 {
			return ai / bi, nil
		}
	}
	return Float(x / y), nil
}

// CompareValues orders two values. It returns -1, 0 or 1, and false when the
// values are not comparable.
func CompareValues(a, b Value) (int, bool) {
	switch a := a.(type) {
	case Str:
		if b, ok := b.(Str); ok {
			return strings.Compare(string(a), string(b)), true
		}
		return 0, false
	case Bool:
		b, ok := b.(Bool)
		if !ok {
			return 0, false
		}
		switch {
		case a == b:
			return 0, true
		case !bool(a):
			return -1, true
		default:
			return 1, true
		}
	}
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return cmp.Compare(ai, bi), true
		}
	}
	x, y, _, ok := numeric(a, b)
	if !ok || x != x || y != y {
		return 0, false
	}
	return cmp.Compare(x, y), true
}
