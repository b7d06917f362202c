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

package reporter

import "fmt"

// ErrorWithPos is an error about rule source that adds information about
// the span in the source that caused it. The lexer, parser, and evaluator
// packages each define their own concrete error type satisfying this
// interface (lexer.Error, parser.Error, eval.Error), so callers can type
// switch on the concrete type to recover a category, while anyone who just
// wants err != nil can treat it as a plain error.
type ErrorWithPos interface {
	error
	Position() Span
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source span.
func Error(span Span, err error) ErrorWithPos {
	return errorWithPos{span: span, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(span Span, format string, args ...interface{}) ErrorWithPos {
	return errorWithPos{span: span, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	span       Span
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.span, e.underlying)
}

func (e errorWithPos) Position() Span {
	return e.span
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
