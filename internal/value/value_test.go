package value

import (
	"math"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"nil", Nil(), KindNil},
		{"num", Num(1.5), KindNum},
		{"str", Str("x"), KindStr},
		{"bool", Bool(true), KindBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	if v := From(nil); !v.IsNil() {
		t.Errorf("From(nil) = %v, want nil", v)
	}
	if v := From(2.5); !v.IsNum() || v.AsNum() != 2.5 {
		t.Errorf("From(2.5) = %v, want Num(2.5)", v)
	}
	if v := From("hi"); !v.IsStr() || v.AsStr() != "hi" {
		t.Errorf("From(\"hi\") = %v, want Str", v)
	}
	if v := From(true); !v.IsBool() || !v.AsBool() {
		t.Errorf("From(true) = %v, want Bool(true)", v)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsey", Nil(), false},
		{"false is falsey", Bool(false), false},
		{"true is truthy", Bool(true), true},
		{"zero is truthy", Num(0), true},
		{"number is truthy", Num(1), true},
		{"empty string is truthy", Str(""), true},
		{"string is truthy", Str("x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil == nil", Nil(), Nil(), true},
		{"num == num", Num(1), Num(1), true},
		{"num != num", Num(1), Num(2), false},
		{"str == str", Str("a"), Str("a"), true},
		{"str != str", Str("a"), Str("b"), false},
		{"bool == bool", Bool(true), Bool(true), true},
		{"no numeric coercion", Num(1), Str("1"), false},
		{"nil != false", Nil(), Bool(false), false},
		{"nil != zero", Nil(), Num(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil(), "nil"},
		{"integral number", Num(3.0), "3"},
		{"fractional number", Num(3.5), "3.5"},
		{"negative integral", Num(-7), "-7"},
		{"zero", Num(0), "0"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"string quoted", Str("hi"), `"hi"`},
		{"infinity", Num(math.Inf(1)), "Infinity"},
		{"nan", Num(math.NaN()), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Stringify(); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}
