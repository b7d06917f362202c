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
// Package ast defines the expression tree produced by the parser and
// walked by the evaluator. Every node owns its children exclusively (a
// tree, never a DAG); the tree is built once during parsing and never
// mutated afterward, which is what lets a compiled Rule be shared freely
// across goroutines.
package ast

import (
	"github.com/HankBreck/rules-engine/reporter"
	"github.com/HankBreck/rules-engine/value"
)

// Node is implemented by every AST node. Span reports the source range the
// node came from, for error messages.
type Node interface {
	Span() reporter.Span
}

// Literal is a constant value parsed directly from source: an int, float,
// string, bool, or null token.
type Literal struct {
	Val value.Value
	Sp  reporter.Span
}

func (n *Literal) Span() reporter.Span { return n.Sp }

// Ident is a top-level symbol resolved against the context at evaluation
// time.
type Ident struct {
	Name string
	Sp   reporter.Span
}

func (n *Ident) Span() reporter.Span { return n.Sp }

// Attr is left-associative attribute access: Base.Field. Base may itself
// be any expression (commonly another Ident or Attr), so "l1.l2.l3" parses
// as Attr{Attr{Ident(l1), "l2"}, "l3"}.
type Attr struct {
	Base  Node
	Field string
	Sp    reporter.Span
}

func (n *Attr) Span() reporter.Span { return n.Sp }

// UnaryOp identifies the operator of a Unary node.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "not"
	default:
		return "?"
	}
}

// Unary applies a prefix operator to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Node
	Sp      reporter.Span
}

func (n *Unary) Span() reporter.Span { return n.Sp }

// BinaryOp identifies the operator of a Binary node.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	And
	Or
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return "?"
	}
}

// Binary applies an infix operator to two operands. Parenthesized groups
// are not kept as a separate node kind: "(expr)" folds into expr itself
// during parsing, since parenthesization only ever affects precedence, not
// the value the group carries.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
	Sp    reporter.Span
}

func (n *Binary) Span() reporter.Span { return n.Sp }
