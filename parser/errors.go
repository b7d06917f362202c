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

package parser

import "github.com/HankBreck/rules-engine/reporter"

// Category constants for Error.
const (
	CategoryUnexpectedToken = "unexpected_token"
	CategoryMissingRParen   = "missing_rparen"
	CategoryInvalidAttrName = "invalid_attr_name"
	CategoryTrailingTokens  = "trailing_tokens"
)

// Error is a parse-time failure: an unexpected token, a missing closing
// parenthesis, an invalid identifier where one was required (an attribute
// name, or the start of a primary expression), or trailing tokens after an
// otherwise complete expression.
type Error struct {
	reporter.ErrorWithPos
	Category string
}

func (e *Error) isParseError() {}

func newError(span reporter.Span, category string, format string, args ...interface{}) *Error {
	return &Error{
		ErrorWithPos: reporter.Errorf(span, format, args...),
		Category:     category,
	}
}
