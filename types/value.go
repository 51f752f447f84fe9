package types

import (
	"strconv"
	"strings"
)

// Value is a runtime value. The set of variants is closed: Nil, Boolean,
// Number, String, Callable and NoValue.
type Value interface {
	is_Value()
	String() string
}

type Nil struct{}

func (v Nil) is_Value() {}

func (v Nil) String() string { return "nil" }

type Boolean bool

func (v Boolean) is_Value() {}

func (v Boolean) String() string {
	if v {
		return "true"
	}
	return "false"
}

type Number float64

func (v Number) is_Value() {}

// String renders six fixed decimals and trims trailing zeros, then a
// trailing decimal point, so 3 prints as "3" and 2.5 as "2.5".
func (v Number) String() string {
	s := strconv.FormatFloat(float64(v), 'f', 6, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

type String string

func (v String) is_Value() {}

func (v String) String() string { return string(v) }

// Callable is reserved for functions and classes. Nothing in the
// interpreter produces one yet.
type Callable interface {
	Value
	Arity() int
	Call(arguments []Value) (Value, error)
}

// NoValue is what statements evaluate to.
type NoValue struct{}

func (v NoValue) is_Value() {}

func (v NoValue) String() string { return "" }

// Equal reports whether a and b are the same variant holding the same
// content. Nil only equals Nil.
func Equal(a, b Value) bool {
	switch l := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		r, ok := b.(Boolean)
		return ok && l == r
	case Number:
		r, ok := b.(Number)
		return ok && l == r
	case String:
		r, ok := b.(String)
		return ok && l == r
	case NoValue:
		_, ok := b.(NoValue)
		return ok
	case Callable:
		r, ok := b.(Callable)
		return ok && l == r
	}
	return false
}

// Truthy is false for nil and false, true for everything else.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}

// TypeName is used in diagnostics and the REPL.
func TypeName(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Callable:
		return "callable"
	case NoValue:
		return "void"
	}
	return "unknown"
}
