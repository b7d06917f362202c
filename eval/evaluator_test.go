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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HankBreck/rules-engine/eval"
	"github.com/HankBreck/rules-engine/parser"
	"github.com/HankBreck/rules-engine/value"
)

func evalSrc(t *testing.T, src string, ctx eval.Context, opts eval.Options) (value.Value, error) {
	t.Helper()
	n, err := parser.Parse(src)
	require.NoError(t, err)
	return eval.Eval(n, ctx, opts)
}

func TestEndToEndScenarios(t *testing.T) {
	t.Parallel()

	t.Run("and/or with null context", func(t *testing.T) {
		v, err := evalSrc(t, "1 == 1 and 2 == 2", nil, eval.Options{})
		require.NoError(t, err)
		assert.True(t, v.Bool())

		v, err = evalSrc(t, "1 == 1 and 2 == 3", nil, eval.Options{})
		require.NoError(t, err)
		assert.False(t, v.Bool())
	})

	t.Run("comparisons against a flat context", func(t *testing.T) {
		ctx := eval.FromMap(map[string]any{"num1": 1, "num2": 2, "num3": 3, "num4": 4})
		n, err := parser.Parse("num1 > num2 or num3 < num4")
		require.NoError(t, err)
		ok, err := eval.Matches(n, ctx, eval.Options{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("string comparison is case sensitive", func(t *testing.T) {
		ctx := eval.FromMap(map[string]any{"name": "hank"})
		v, err := evalSrc(t, `name == "Hank"`, ctx, eval.Options{})
		require.NoError(t, err)
		assert.False(t, v.Bool())
	})

	t.Run("integer division truncates", func(t *testing.T) {
		ctx := eval.FromMap(map[string]any{"age": 1})
		v, err := evalSrc(t, "(age + 3) / 2", ctx, eval.Options{})
		require.NoError(t, err)
		assert.Equal(t, value.Int, v.Kind())
		assert.Equal(t, int64(2), v.Int())
	})

	t.Run("mixed division promotes to float", func(t *testing.T) {
		v, err := evalSrc(t, "1 / 2.5", nil, eval.Options{})
		require.NoError(t, err)
		assert.Equal(t, value.Float, v.Kind())
		assert.InDelta(t, 0.4, v.Float(), 1e-9)
	})

	t.Run("parse error on leading dot", func(t *testing.T) {
		_, err := parser.Parse(".identifier == 1")
		assert.Error(t, err)
	})

	t.Run("symbol not found is an evaluation error", func(t *testing.T) {
		ctx := eval.FromMap(map[string]any{"name": "Hank"})
		_, err := evalSrc(t, "1 == age", ctx, eval.Options{})
		assert.Error(t, err)
	})

	t.Run("division by zero is an evaluation error", func(t *testing.T) {
		_, err := evalSrc(t, "255 / 0", nil, eval.Options{})
		assert.Error(t, err)
	})
}

func TestTruthyModeLogicalOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{"1 and 2", true},
		{"1 and 0", false},
		{"0 and 1", false},
		{"0 and 0", false},
		{"1 or 2", true},
		{"1 or 0", true},
		{"0 or 1", true},
		{"0 or 0", false},
		{`"foo" or false`, true},
		{`false or 'foo'`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			v, err := evalSrc(t, tt.src, nil, eval.Options{Mode: eval.Truthy})
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Bool())
		})
	}
}

func TestStrictModeRejectsNonBooleanLogicalOperands(t *testing.T) {
	t.Parallel()

	srcs := []string{
		`"foo" and "bar"`,
		"1 and 2",
		"1.2345 and 2.3456",
		`true and "false"`,
		`"foo" or "bar"`,
		"1 or 2",
	}
	for _, src := range srcs {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			_, err := evalSrc(t, src, nil, eval.Options{Mode: eval.Strict})
			assert.Error(t, err)
		})
	}
}

func TestAttributeResolution(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{
		"person": map[string]any{"age": 1, "name": "Hank"},
	})

	v, err := evalSrc(t, "person.age == 1", ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = evalSrc(t, `person.name == "hank"`, ctx, eval.Options{})
	require.NoError(t, err)
	assert.False(t, v.Bool())

	_, err = evalSrc(t, "1 == person.missing", ctx, eval.Options{})
	assert.Error(t, err)

	_, err = evalSrc(t, "person.age.nested == 1", ctx, eval.Options{})
	assert.Error(t, err)
}

func TestDeeplyNestedAttributeResolution(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{
		"l1": map[string]any{
			"l2": map[string]any{
				"l3": map[string]any{
					"l4": map[string]any{
						"l5": map[string]any{
							"l6": 1,
						},
					},
				},
			},
		},
	})

	v, err := evalSrc(t, "l1.l2.l3.l4.l5.l6 == 1", ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestCrossVariantEquality(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{"age": 1})
	v, err := evalSrc(t, "age == 1.0", ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = evalSrc(t, "23482.324123512 == true", nil, eval.Options{})
	require.NoError(t, err)
	assert.False(t, v.Bool())
}

func TestFloatIntCrossComparison(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{"age": 1.0})
	v, err := evalSrc(t, "age > 0", ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	v, err = evalSrc(t, "1 >= age", ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, v.Bool())

	ctx = eval.FromMap(map[string]any{"age": -0.001})
	v, err = evalSrc(t, "0 <= age", ctx, eval.Options{})
	require.NoError(t, err)
	assert.False(t, v.Bool())
}

func TestNullContextLegalWithoutIdentifiers(t *testing.T) {
	t.Parallel()

	v, err := evalSrc(t, "1 + 1", nil, eval.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int())
}
