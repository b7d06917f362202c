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

// Package rulesengine compiles a small expression language into a Rule that
// can be evaluated, or matched to a boolean verdict, against a host-supplied
// Context. A Rule parses its source exactly once; every subsequent
// Evaluate/Matches call walks the same immutable tree and performs no I/O,
// so a single Rule is safe to share across goroutines evaluating it
// concurrently against independent contexts.
package rulesengine

import (
	"log/slog"

	"github.com/HankBreck/rules-engine/ast"
	"github.com/HankBreck/rules-engine/eval"
	"github.com/HankBreck/rules-engine/parser"
	"github.com/HankBreck/rules-engine/value"
)

// Context is the read-only mapping a Rule consults for identifiers and
// attributes during evaluation. See eval.Context for the full contract.
type Context = eval.Context

// FromMap adapts a plain Go map into a Context, recursively wrapping any
// nested map[string]any values.
func FromMap(m map[string]any) Context { return eval.FromMap(m) }

// Value is the dynamically typed result of evaluating a Rule.
type Value = value.Value

// Rule is a parsed expression, immutable once built by New. The zero Rule
// is not usable; always construct one with New.
type Rule struct {
	source string
	root   ast.Node
	opts   eval.Options
}

// Option configures a Rule at construction time.
type Option func(*ruleConfig)

type ruleConfig struct {
	mode   eval.Mode
	logger *slog.Logger
}

// WithTruthyLogicalOperators makes and/or accept any operand kind and
// combine by truthiness, coercing the result to Bool. This is the default.
func WithTruthyLogicalOperators() Option {
	return func(c *ruleConfig) { c.mode = eval.Truthy }
}

// WithStrictLogicalOperators makes and/or require both operands to already
// be Bool, failing evaluation otherwise instead of coercing by truthiness.
func WithStrictLogicalOperators() Option {
	return func(c *ruleConfig) { c.mode = eval.Strict }
}

// WithLogger attaches a logger that New uses to report a single debug line
// when the rule's source parses to a constant expression referencing no
// identifiers at all — not an error, but almost always a copy-paste mistake
// by the caller, since such a rule can never consult its context. A nil
// logger (the default) disables this diagnostic.
func WithLogger(logger *slog.Logger) Option {
	return func(c *ruleConfig) { c.logger = logger }
}

// New parses source into a Rule. Parsing reports a *lexer.Error or
// *parser.Error on malformed source; it never evaluates the expression or
// touches a Context.
func New(source string, opts ...Option) (*Rule, error) {
	cfg := ruleConfig{mode: eval.Truthy}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	if cfg.logger != nil && isClosedLiteral(root) {
		cfg.logger.Debug("rule references no identifiers and will always evaluate to the same value", "source", source)
	}

	return &Rule{
		source: source,
		root:   root,
		opts:   eval.Options{Mode: cfg.mode},
	}, nil
}

// Source returns the expression text the Rule was built from.
func (r *Rule) Source() string { return r.source }

// Evaluate walks the Rule against ctx and returns its value. ctx may be nil
// only if the Rule references no identifiers; otherwise a missing symbol
// fails evaluation rather than panicking. Evaluate performs no I/O and
// spawns no goroutines, so concurrent calls against independent contexts
// are safe.
func (r *Rule) Evaluate(ctx Context) (Value, error) {
	return eval.Eval(r.root, ctx, r.opts)
}

// Matches evaluates the Rule and reduces the result to a boolean verdict: a
// Bool result is returned as-is, any other result is coerced per the Rule's
// logical-operator policy (truthy by default, or a coercion error in strict
// mode).
func (r *Rule) Matches(ctx Context) (bool, error) {
	return eval.Matches(r.root, ctx, r.opts)
}

// isClosedLiteral reports whether n is built only from literals and
// operators, with no identifier or attribute anywhere in the tree, i.e. an
// expression that can never consult a Context.
func isClosedLiteral(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Literal:
		return true
	case *ast.Unary:
		return isClosedLiteral(n.Operand)
	case *ast.Binary:
		return isClosedLiteral(n.Left) && isClosedLiteral(n.Right)
	default:
		return false
	}
}
