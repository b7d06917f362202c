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

package eval

import "github.com/HankBreck/rules-engine/reporter"

// Category constants for Error.
const (
	CategorySymbolNotFound = "symbol_not_found"
	CategoryAttrNotFound   = "attr_not_found"
	CategoryNotMapping     = "not_a_mapping"
	CategoryTypeMismatch   = "type_mismatch"
	CategoryDivByZero      = "div_by_zero"
	CategoryLogicalType    = "logical_type"
	CategoryCoercion       = "coercion_failure"
)

// Error is an evaluation-time failure: a missing symbol or attribute,
// attribute access on a non-mapping value, an operator type mismatch,
// division or modulo by zero, a non-boolean operand to and/or in strict
// mode, or a boolean-coercion failure in Matches.
//
// Evaluation errors abort a single Evaluate/Matches call; they never
// invalidate the Rule, which remains usable for the next call.
type Error struct {
	reporter.ErrorWithPos
	Category string
}

func (e *Error) isEvalError() {}

func newError(span reporter.Span, category string, format string, args ...interface{}) *Error {
	return &Error{
		ErrorWithPos: reporter.Errorf(span, format, args...),
		Category:     category,
	}
}
