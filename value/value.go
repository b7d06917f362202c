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
// Package value implements the dynamically typed value system shared by
// the AST (literal payloads) and the evaluator (expression results and
// context leaves): a five-variant tagged union with numeric promotion,
// truthiness, and the arithmetic/comparison/logical operators defined over
// it. Operator implementations are exhaustive switches over Kind pairs,
// never untyped interface assertions, so an unhandled combination is a
// compile-time-visible gap rather than a silent panic.
package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant of Value is populated.
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	Str
	Null
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Str:
		return "string"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// Value is the engine's dynamic value: exactly one of i, f, b, s is
// meaningful, selected by kind. The zero Value is identical to NewInt(0);
// operations that fail return it alongside their non-nil error.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func NewInt(i int64) Value   { return Value{kind: Int, i: i} }
func NewFloat(f float64) Value { return Value{kind: Float, f: f} }
func NewBool(b bool) Value   { return Value{kind: Bool, b: b} }
func NewStr(s string) Value  { return Value{kind: Str, s: s} }
func NewNull() Value         { return Value{kind: Null} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) Int() int64     { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Bool() bool     { return v.b }
func (v Value) Str() string    { return v.s }

// String renders v for error messages and debug output; it is not used on
// the evaluation hot path.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	case Str:
		return strconv.Quote(v.s)
	case Null:
		return "null"
	default:
		return "<invalid value>"
	}
}

// Truthy implements the engine's truthiness policy (spec's "truthy mode"):
// Int/Float are truthy iff non-zero, Str is truthy iff non-empty, Bool is
// itself, and Null is always falsy. Every Kind has a defined truthiness, so
// this never fails.
func (v Value) Truthy() bool {
	switch v.kind {
	case Int:
		return v.i != 0
	case Float:
		return v.f != 0
	case Bool:
		return v.b
	case Str:
		return v.s != ""
	case Null:
		return false
	default:
		return false
	}
}

// Error is a type error raised by an operator in this package: an operand
// of the wrong kind. It carries no source position of its own; callers in
// eval wrap it with one via reporter.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func typeError(op string, a, b Value) *Error {
	return errorf("operator %s not defined for %s and %s", op, a.kind, b.kind)
}

// DivideByZeroError is raised by Div or Mod when the divisor is zero,
// distinct from Error so callers can tell a zero-division apart from a
// type mismatch without parsing the message.
type DivideByZeroError struct {
	Op string // "division" or "modulo"
}

func (e *DivideByZeroError) Error() string {
	return e.Op + " by zero"
}
