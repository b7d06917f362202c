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
// Package token defines the lexical token kinds produced by the lexer and
// consumed by the parser.
package token

import "github.com/HankBreck/rules-engine/reporter"

// Kind enumerates every lexeme the grammar recognizes.
type Kind int

const (
	EOF Kind = iota
	INT
	FLOAT
	STRING
	TRUE
	FALSE
	NULL
	IDENT
	DOT
	LPAREN
	RPAREN
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQ
	NEQ
	LT
	LTE
	GT
	GTE
	AND
	OR
	NOT
)

var kindNames = [...]string{
	EOF:     "EOF",
	INT:     "INT",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	TRUE:    "true",
	FALSE:   "false",
	NULL:    "null",
	IDENT:   "identifier",
	DOT:     ".",
	LPAREN:  "(",
	RPAREN:  ")",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	EQ:      "==",
	NEQ:     "!=",
	LT:      "<",
	LTE:     "<=",
	GT:      ">",
	GTE:     ">=",
	AND:     "and",
	OR:      "or",
	NOT:     "not",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is a single lexeme: its kind, the span of source it came from, and
// (for literal kinds) its decoded payload. At most one payload field is
// set: Int for INT, Float for FLOAT, Str for STRING, IDENT and keywords.
type Token struct {
	Kind  Kind
	Span  reporter.Span
	Int   int64
	Float float64
	Str   string // decoded STRING payload, or the raw text for IDENT and keyword tokens
}

func (t Token) String() string {
	switch t.Kind {
	case INT:
		return t.Kind.String()
	case FLOAT:
		return t.Kind.String()
	case STRING:
		return t.Kind.String()
	case IDENT:
		return t.Str
	default:
		return t.Kind.String()
	}
}
