// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

import "math"

// promote returns a, b as float64 when both are numeric (Int or Float);
// bothFloat reports whether at least one of them was Float. ok is false if
// either operand is not numeric.
func promote(a, b Value) (af, bf float64, bothFloat, ok bool) {
	switch {
	case a.kind == Int && b.kind == Int:
		return float64(a.i), float64(b.i), false, true
	case a.kind == Float && b.kind == Float:
		return a.f, b.f, true, true
	case a.kind == Int && b.kind == Float:
		return float64(a.i), b.f, true, true
	case a.kind == Float && b.kind == Int:
		return a.f, float64(b.i), true, true
	default:
		return 0, 0, false, false
	}
}

// Add implements the binary + operator.
func Add(a, b Value) (Value, error) {
	if a.kind == Int && b.kind == Int {
		return NewInt(a.i + b.i), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("+", a, b)
	}
	return NewFloat(af + bf), nil
}

// Sub implements the binary - operator.
func Sub(a, b Value) (Value, error) {
	if a.kind == Int && b.kind == Int {
		return NewInt(a.i - b.i), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("-", a, b)
	}
	return NewFloat(af - bf), nil
}

// Mul implements the binary * operator.
func Mul(a, b Value) (Value, error) {
	if a.kind == Int && b.kind == Int {
		return NewInt(a.i * b.i), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("*", a, b)
	}
	return NewFloat(af * bf), nil
}

// Div implements the binary / operator. Int/Int division truncates toward
// zero (Go's native integer division already does this). Division by zero
// is an error in both the integer and float paths.
func Div(a, b Value) (Value, error) {
	if a.kind == Int && b.kind == Int {
		if b.i == 0 {
			return Value{}, &DivideByZeroError{Op: "division"}
		}
		return NewInt(a.i / b.i), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("/", a, b)
	}
	if bf == 0 {
		return Value{}, &DivideByZeroError{Op: "division"}
	}
	return NewFloat(af / bf), nil
}

// Mod implements the binary % operator. Int%Int takes the sign of the
// dividend (Go's native % already does this); the mixed/float path uses
// math.Mod, which also takes the sign of the dividend.
func Mod(a, b Value) (Value, error) {
	if a.kind == Int && b.kind == Int {
		if b.i == 0 {
			return Value{}, &DivideByZeroError{Op: "modulo"}
		}
		return NewInt(a.i % b.i), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("%", a, b)
	}
	if bf == 0 {
		return Value{}, &DivideByZeroError{Op: "modulo"}
	}
	return NewFloat(math.Mod(af, bf)), nil
}

func numericPair(a, b Value) (af, bf float64, ok bool) {
	af, bf, _, ok = promote(a, b)
	return
}

// Negate implements unary -.
func Negate(a Value) (Value, error) {
	switch a.kind {
	case Int:
		return NewInt(-a.i), nil
	case Float:
		return NewFloat(-a.f), nil
	default:
		return Value{}, errorf("unary - not defined for %s", a.kind)
	}
}

// Equal implements ==. Same-variant pairs compare directly; Int/Float
// promotes before comparing. Every other cross-variant pair is false.
func Equal(a, b Value) Value {
	if a.kind == b.kind {
		switch a.kind {
		case Int:
			return NewBool(a.i == b.i)
		case Float:
			return NewBool(a.f == b.f)
		case Bool:
			return NewBool(a.b == b.b)
		case Str:
			return NewBool(a.s == b.s)
		case Null:
			return NewBool(true)
		}
	}
	if af, bf, _, ok := promote(a, b); ok {
		return NewBool(af == bf)
	}
	return NewBool(false)
}

// NotEqual implements !=, the logical complement of Equal.
func NotEqual(a, b Value) Value {
	return NewBool(!Equal(a, b).b)
}

// Less implements <. Defined for numeric pairs (with promotion) and for
// Str vs Str (lexicographic by byte, i.e. Go's native string <).
func Less(a, b Value) (Value, error) {
	if a.kind == Str && b.kind == Str {
		return NewBool(a.s < b.s), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("<", a, b)
	}
	return NewBool(af < bf), nil
}

// LessEq implements <=.
func LessEq(a, b Value) (Value, error) {
	if a.kind == Str && b.kind == Str {
		return NewBool(a.s <= b.s), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError("<=", a, b)
	}
	return NewBool(af <= bf), nil
}

// Greater implements >.
func Greater(a, b Value) (Value, error) {
	if a.kind == Str && b.kind == Str {
		return NewBool(a.s > b.s), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError(">", a, b)
	}
	return NewBool(af > bf), nil
}

// GreaterEq implements >=.
func GreaterEq(a, b Value) (Value, error) {
	if a.kind == Str && b.kind == Str {
		return NewBool(a.s >= b.s), nil
	}
	af, bf, ok := numericPair(a, b)
	if !ok {
		return Value{}, typeError(">=", a, b)
	}
	return NewBool(af >= bf), nil
}
