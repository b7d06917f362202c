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
// Package eval walks an ast.Node against a Context and produces a
// value.Value or an error. Every binary node evaluates both operands
// before applying the operator (no short-circuit); this is a deliberate
// simplification that keeps the evaluator's control flow a single
// recursive switch with no hidden branches, at the cost of occasionally
// doing redundant work that a short-circuiting and/or could skip.
package eval

import (
	"errors"

	"github.com/HankBreck/rules-engine/ast"
	"github.com/HankBreck/rules-engine/value"
)

// Mode selects how and/or (and Matches' final coercion) treat non-boolean
// operands. The source test corpus contains two contradictory generations
// of this behavior; Truthy is the later, recommended one.
type Mode int

const (
	// Truthy: and/or accept any operand and combine by truthiness,
	// returning a Bool. This is the default.
	Truthy Mode = iota
	// Strict: and/or require both operands to already be Bool, and error
	// otherwise.
	Strict
)

// Options configures a single Eval/Matches call.
type Options struct {
	Mode Mode
}

// Eval evaluates n against ctx and returns its value. ctx may be nil,
// which is only legal if n references no identifiers; if it does,
// evaluation fails with a symbol-not-found error rather than panicking.
func Eval(n ast.Node, ctx Context, opts Options) (value.Value, error) {
	v, _, isMap, err := evalNode(n, ctx, opts)
	if err != nil {
		return value.Value{}, err
	}
	if isMap {
		return value.Value{}, newError(n.Span(), CategoryTypeMismatch, "expression evaluates to a mapping, not a value")
	}
	return v, nil
}

// Matches evaluates n and reduces the result to a boolean verdict: a Bool
// result is returned as-is; any other result is coerced per opts.Mode
// (Truthy: by truthiness, never fails; Strict: a coercion error).
func Matches(n ast.Node, ctx Context, opts Options) (bool, error) {
	v, err := Eval(n, ctx, opts)
	if err != nil {
		return false, err
	}
	if v.Kind() == value.Bool {
		return v.Bool(), nil
	}
	if opts.Mode == Strict {
		return false, newError(n.Span(), CategoryCoercion, "result of kind %s is not boolean-coercible in strict mode", v.Kind())
	}
	return v.Truthy(), nil
}

// evalNode is the internal recursive walk. It additionally reports whether
// the node evaluated to a nested mapping (isMap) rather than a leaf value,
// which only Ident and Attr nodes can do — a Unary or Binary node always
// produces a leaf Value.
func evalNode(n ast.Node, ctx Context, opts Options) (v value.Value, sub Context, isMap bool, err error) {
	switch n := n.(type) {
	case *ast.Literal:
		return n.Val, nil, false, nil

	case *ast.Ident:
		if ctx == nil {
			return value.Value{}, nil, false, newError(n.Sp, CategorySymbolNotFound, "symbol %q not found", n.Name)
		}
		lv, lsub, lIsMap, ok := ctx.Lookup(n.Name)
		if !ok {
			return value.Value{}, nil, false, newError(n.Sp, CategorySymbolNotFound, "symbol %q not found", n.Name)
		}
		return lv, lsub, lIsMap, nil

	case *ast.Attr:
		_, baseCtx, baseIsMap, err := evalNode(n.Base, ctx, opts)
		if err != nil {
			return value.Value{}, nil, false, err
		}
		if !baseIsMap {
			return value.Value{}, nil, false, newError(n.Sp, CategoryNotMapping, "cannot access attribute %q: base is not a mapping", n.Field)
		}
		lv, lsub, lIsMap, ok := baseCtx.Lookup(n.Field)
		if !ok {
			return value.Value{}, nil, false, newError(n.Sp, CategoryAttrNotFound, "attribute %q not found", n.Field)
		}
		return lv, lsub, lIsMap, nil

	case *ast.Unary:
		v, err := evalUnary(n, ctx, opts)
		return v, nil, false, err

	case *ast.Binary:
		v, err := evalBinary(n, ctx, opts)
		return v, nil, false, err

	default:
		return value.Value{}, nil, false, newError(n.Span(), CategoryTypeMismatch, "unsupported expression node %T", n)
	}
}

func evalUnary(n *ast.Unary, ctx Context, opts Options) (value.Value, error) {
	operand, err := Eval(n.Operand, ctx, opts)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case ast.Neg:
		v, verr := value.Negate(operand)
		if verr != nil {
			return value.Value{}, newError(n.Sp, CategoryTypeMismatch, "%v", verr)
		}
		return v, nil
	case ast.Not:
		if opts.Mode == Strict && operand.Kind() != value.Bool {
			return value.Value{}, newError(n.Sp, CategoryLogicalType, "operand of 'not' is %s, not bool, in strict mode", operand.Kind())
		}
		return value.NewBool(!operand.Truthy()), nil
	default:
		return value.Value{}, newError(n.Sp, CategoryTypeMismatch, "unsupported unary operator %s", n.Op)
	}
}

func evalBinary(n *ast.Binary, ctx Context, opts Options) (value.Value, error) {
	left, err := Eval(n.Left, ctx, opts)
	if err != nil {
		return value.Value{}, err
	}
	right, err := Eval(n.Right, ctx, opts)
	if err != nil {
		return value.Value{}, err
	}

	var v value.Value
	var verr error
	switch n.Op {
	case ast.Add:
		v, verr = value.Add(left, right)
	case ast.Sub:
		v, verr = value.Sub(left, right)
	case ast.Mul:
		v, verr = value.Mul(left, right)
	case ast.Div:
		v, verr = value.Div(left, right)
	case ast.Mod:
		v, verr = value.Mod(left, right)
	case ast.Eq:
		return value.Equal(left, right), nil
	case ast.Neq:
		return value.NotEqual(left, right), nil
	case ast.Lt:
		v, verr = value.Less(left, right)
	case ast.Lte:
		v, verr = value.LessEq(left, right)
	case ast.Gt:
		v, verr = value.Greater(left, right)
	case ast.Gte:
		v, verr = value.GreaterEq(left, right)
	case ast.And:
		return evalLogical(n, left, right, opts, false)
	case ast.Or:
		return evalLogical(n, left, right, opts, true)
	default:
		return value.Value{}, newError(n.Sp, CategoryTypeMismatch, "unsupported binary operator %s", n.Op)
	}

	if verr != nil {
		category := CategoryTypeMismatch
		var dbz *value.DivideByZeroError
		if errors.As(verr, &dbz) {
			category = CategoryDivByZero
		}
		return value.Value{}, newError(n.Sp, category, "%v", verr)
	}
	return v, nil
}

// evalLogical implements and (isOr == false) / or (isOr == true) over
// already-evaluated operands.
func evalLogical(n *ast.Binary, left, right value.Value, opts Options, isOr bool) (value.Value, error) {
	if opts.Mode == Strict {
		if left.Kind() != value.Bool || right.Kind() != value.Bool {
			op := "and"
			if isOr {
				op = "or"
			}
			return value.Value{}, newError(n.Sp, CategoryLogicalType, "operands of %q must be bool in strict mode, got %s and %s", op, left.Kind(), right.Kind())
		}
	}
	if isOr {
		return value.NewBool(left.Truthy() || right.Truthy()), nil
	}
	return value.NewBool(left.Truthy() && right.Truthy()), nil
}
