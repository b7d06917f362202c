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

package ast

import (
	"strconv"
	"strings"

	"github.com/HankBreck/rules-engine/value"
)

// Pretty renders n as a fully parenthesized expression that the parser can
// re-parse into an equivalent tree: every Binary and Unary node is wrapped
// in its own parentheses, so the printed form carries no implicit
// precedence of its own. It exists to support the parser round-trip
// property (spec's "any AST pretty-printed with full parentheses re-parses
// to an equivalent AST"), not as a general-purpose formatter.
func Pretty(n Node) string {
	var b strings.Builder
	writePretty(&b, n)
	return b.String()
}

func writePretty(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(prettyLiteral(n))
	case *Ident:
		b.WriteString(n.Name)
	case *Attr:
		b.WriteByte('(')
		writePretty(b, n.Base)
		b.WriteByte('.')
		b.WriteString(n.Field)
		b.WriteByte(')')
	case *Unary:
		b.WriteByte('(')
		if n.Op == Not {
			b.WriteString("not ")
		} else {
			b.WriteString(n.Op.String())
		}
		writePretty(b, n.Operand)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		writePretty(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		writePretty(b, n.Right)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}

func prettyLiteral(n *Literal) string {
	switch n.Val.Kind() {
	case value.Int:
		return strconv.FormatInt(n.Val.Int(), 10)
	case value.Float:
		s := strconv.FormatFloat(n.Val.Float(), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case value.Bool:
		return strconv.FormatBool(n.Val.Bool())
	case value.Str:
		return "\"" + n.Val.Str() + "\""
	default: // value.Null
		return "null"
	}
}
