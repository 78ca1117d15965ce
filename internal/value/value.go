// Package value defines runtime value types for Lox.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Kind represents the type of a Lox value.
type Kind uint8

const (
	KindNil  Kind = iota // nil value
	KindNum              // Numeric value (IEEE double)
	KindStr              // String value
	KindBool             // Boolean value
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value represents a Lox runtime value.
// Uses tagged union pattern for type safety; values are passed by value.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Constructors

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Num creates a numeric value.
func Num(n float64) Value {
	return Value{kind: KindNum, num: n}
}

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// From converts a literal stored in a token (float64, string, bool, or nil)
// into a Value.
func From(lit any) Value {
	switch v := lit.(type) {
	case nil:
		return Nil()
	case float64:
		return Num(v)
	case string:
		return Str(v)
	case bool:
		return Bool(v)
	default:
		panic(fmt.Sprintf("value: unsupported literal type %T", lit))
	}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil returns true if the value is nil.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// IsNum returns true if the value is a number.
func (v Value) IsNum() bool {
	return v.kind == KindNum
}

// IsStr returns true if the value is a string.
func (v Value) IsStr() bool {
	return v.kind == KindStr
}

// IsBool returns true if the value is a boolean.
func (v Value) IsBool() bool {
	return v.kind == KindBool
}

// AsNum returns the numeric payload. Only meaningful when IsNum is true.
func (v Value) AsNum() float64 {
	return v.num
}

// AsStr returns the string payload. Only meaningful when IsStr is true.
func (v Value) AsStr() string {
	return v.str
}

// AsBool returns the boolean payload. Only meaningful when IsBool is true.
func (v Value) AsBool() bool {
	return v.b
}

// Truthy returns the boolean interpretation of the value.
// Lox follows Ruby: nil and false are falsey, everything else is truthy
// (including 0 and the empty string).
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	default:
		return true
	}
}

// Equal reports structural equality between two values.
// There is no coercion: values of different kinds are simply unequal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindNum:
		return a.num == b.num
	case KindStr:
		return a.str == b.str
	default:
		return a.b == b.b
	}
}

// Stringify renders the value for print output.
// nil renders as "nil"; numbers with zero fractional part drop the decimal
// point; other numbers use the default decimal form; booleans render bare;
// strings render quoted.
func (v Value) Stringify() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNum:
		return FormatNum(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return strconv.Quote(v.str)
	}
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNum:
		return fmt.Sprintf("Num(%s)", FormatNum(v.num))
	case KindStr:
		return fmt.Sprintf("Str(%q)", v.str)
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	default:
		return "Nil()"
	}
}

// FormatNum formats a number for display.
// Integral values format without a decimal point. Division is not guarded
// against zero, so infinities and NaN can reach here.
func FormatNum(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == float64(int64(n)):
		return strconv.FormatInt(int64(n), 10)
	default:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
}
