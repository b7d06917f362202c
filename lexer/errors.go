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

package lexer

import "github.com/HankBreck/rules-engine/reporter"

// Category constants for Error, mirroring the parser/eval packages'
// category taxonomy so a host can switch on a small closed set of causes
// instead of parsing error strings.
const (
	CategoryInvalidChar       = "invalid_char"
	CategoryUnterminatedString = "unterminated_string"
	CategoryIntOverflow       = "int_overflow"
)

// Error is a lex-time failure: an invalid character, an unterminated
// string literal, or integer literal overflow. It always carries the span
// of source responsible.
type Error struct {
	reporter.ErrorWithPos
	Category string
}

func (e *Error) isLexError() {}

func newError(span reporter.Span, category string, format string, args ...interface{}) *Error {
	return &Error{
		ErrorWithPos: reporter.Errorf(span, format, args...),
		Category:     category,
	}
}
