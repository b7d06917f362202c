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
// Package parser implements the recursive-descent parser that turns a
// token stream into an ast.Node. Precedence from loosest to tightest binding
// is: or, and, not, comparisons (==, !=, <, <=, >, >=), +/-, *//, unary -,
// attribute access (.), primary. Each precedence level is one function that
// calls the next-tighter level for its operands, the standard
// precedence-climbing shape.
package parser

import (
	"github.com/HankBreck/rules-engine/ast"
	"github.com/HankBreck/rules-engine/lexer"
	"github.com/HankBreck/rules-engine/reporter"
	"github.com/HankBreck/rules-engine/token"
	"github.com/HankBreck/rules-engine/value"
)

// Parser consumes a fixed token slice produced by the lexer.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a Parser over toks, which must end in a token.EOF.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse lexes and parses src into a complete expression tree. It fails if
// any tokens remain after the expression (trailing garbage).
func Parse(src string) (ast.Node, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := New(toks)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		return nil, newError(p.cur().Span, CategoryTrailingTokens, "unexpected %s after end of expression", p.cur())
	}
	return expr, nil
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OR {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: ast.Or, Left: left, Right: right, Sp: reporter.Join(left.Span(), right.Span())}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.AND {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: ast.And, Left: left, Right: right, Sp: reporter.Join(left.Span(), right.Span())}
	}
	return left, nil
}

// parseNot is a right-associative unary prefix operator: "not" binds
// looser than comparisons, so "not a == b" parses as "not (a == b)".
func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Kind == token.NOT {
		notTok := p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Not, Operand: operand, Sp: reporter.Join(notTok.Span, operand.Span())}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[token.Kind]ast.BinaryOp{
	token.EQ:  ast.Eq,
	token.NEQ: ast.Neq,
	token.LT:  ast.Lt,
	token.LTE: ast.Lte,
	token.GT:  ast.Gt,
	token.GTE: ast.Gte,
}

// parseComparison is left-associative and does not special-case chained
// comparisons: "a < b < c" parses as "(a < b) < c", a Binary whose left
// operand is itself a Binary, exactly like +/-.
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.cur().Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right, Sp: reporter.Join(left.Span(), right.Span())}
	}
}

func (p *Parser) parseAddSub() (ast.Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right, Sp: reporter.Join(left.Span(), right.Span())}
	}
}

func (p *Parser) parseMulDiv() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.PERCENT:
			op = ast.Mod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right, Sp: reporter.Join(left.Span(), right.Span())}
	}
}

// parseUnary is a right-associative prefix operator binding tighter than
// any binary arithmetic operator: "-1 - 1" parses as "(-1) - 1".
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.cur().Kind == token.MINUS {
		minusTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Neg, Operand: operand, Sp: reporter.Join(minusTok.Span, operand.Span())}, nil
	}
	return p.parseAttr()
}

// parseAttr is left-associative: "l1.l2.l3" parses as Attr{Attr{l1,l2},l3}.
// The right-hand side of '.' must be an identifier; anything else
// (including another '.', or a token that starts with a digit) is a parse
// error.
func (p *Parser) parseAttr() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.DOT {
		p.advance()
		if p.cur().Kind != token.IDENT {
			return nil, newError(p.cur().Span, CategoryInvalidAttrName, "expected identifier after '.', got %s", p.cur())
		}
		fieldTok := p.advance()
		left = &ast.Attr{Base: left, Field: fieldTok.Str, Sp: reporter.Join(left.Span(), fieldTok.Span)}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	t := p.cur()
	switch t.Kind {
	case token.INT:
		p.advance()
		return &ast.Literal{Val: value.NewInt(t.Int), Sp: t.Span}, nil
	case token.FLOAT:
		p.advance()
		return &ast.Literal{Val: value.NewFloat(t.Float), Sp: t.Span}, nil
	case token.STRING:
		p.advance()
		return &ast.Literal{Val: value.NewStr(t.Str), Sp: t.Span}, nil
	case token.TRUE:
		p.advance()
		return &ast.Literal{Val: value.NewBool(true), Sp: t.Span}, nil
	case token.FALSE:
		p.advance()
		return &ast.Literal{Val: value.NewBool(false), Sp: t.Span}, nil
	case token.NULL:
		p.advance()
		return &ast.Literal{Val: value.NewNull(), Sp: t.Span}, nil
	case token.IDENT:
		p.advance()
		return &ast.Ident{Name: t.Str, Sp: t.Span}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RPAREN {
			return nil, newError(p.cur().Span, CategoryMissingRParen, "expected ')', got %s", p.cur())
		}
		p.advance()
		return inner, nil
	default:
		return nil, newError(t.Span, CategoryUnexpectedToken, "unexpected %s, expected an expression", t)
	}
}
