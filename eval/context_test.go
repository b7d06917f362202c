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

func TestFromMapFlatLookup(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{
		"age":    30,
		"weight": 72.5,
		"active": true,
		"name":   "Hank",
		"spouse": nil,
	})

	cases := []struct {
		name string
		kind value.Kind
	}{
		{"age", value.Int},
		{"weight", value.Float},
		{"active", value.Bool},
		{"name", value.Str},
		{"spouse", value.Null},
	}
	for _, c := range cases {
		v, sub, isMap, ok := ctx.Lookup(c.name)
		require.True(t, ok, c.name)
		assert.False(t, isMap)
		assert.Nil(t, sub)
		assert.Equal(t, c.kind, v.Kind())
	}

	_, _, _, ok := ctx.Lookup("missing")
	assert.False(t, ok)
}

func TestFromMapNestedLookup(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{
		"person": map[string]any{
			"age": 30,
			"address": map[string]any{
				"city": "Austin",
			},
		},
	})

	_, sub, isMap, ok := ctx.Lookup("person")
	require.True(t, ok)
	require.True(t, isMap)
	require.NotNil(t, sub)

	v, _, isMap, ok := sub.Lookup("age")
	require.True(t, ok)
	assert.False(t, isMap)
	assert.Equal(t, int64(30), v.Int())

	_, addrCtx, isMap, ok := sub.Lookup("address")
	require.True(t, ok)
	require.True(t, isMap)

	v, _, _, ok = addrCtx.Lookup("city")
	require.True(t, ok)
	assert.Equal(t, "Austin", v.Str())
}

func TestFromMapRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(map[string]any{"bad": struct{}{}})
	assert.Panics(t, func() {
		ctx.Lookup("bad")
	})
}

// wideFields builds n numbered int fields, e.g. wideFields("f", 100) gives
// f00..f99, two digits with the ones digit first (field 12 is "f21"). This mirrors a many-field host record: a flat dict plus a couple
// of equally wide nested sub-dicts, the shape a benchmark comparing against
// a dict-based reference implementation used to measure lookup cost when a
// rule only ever touches a handful of the fields present in a much larger
// context.
func wideFields(prefix string, n int) map[string]any {
	m := make(map[string]any, n)
	for i := 0; i < n; i++ {
		m[prefix+string(rune('0'+i%10))+string(rune('0'+(i/10)%10))] = i
	}
	return m
}

// wideContext reproduces the 100-key flat dict plus two 100-key nested
// sub-dicts fixture, with num1..num4 layered in so that
// "num1 > num2 or num3 < num4" is a representative query against it.
func wideContext() map[string]any {
	m := wideFields("f", 100)
	m["num1"] = 1
	m["num2"] = 2
	m["num3"] = 3
	m["num4"] = 4
	m["sub1"] = wideFields("s1", 100)
	m["sub2"] = wideFields("s2", 100)
	return m
}

func TestFromMapWideContext(t *testing.T) {
	t.Parallel()

	ctx := eval.FromMap(wideContext())

	v, _, isMap, ok := ctx.Lookup("num1")
	require.True(t, ok)
	assert.False(t, isMap)
	assert.Equal(t, int64(1), v.Int())

	_, sub, isMap, ok := ctx.Lookup("sub1")
	require.True(t, ok)
	require.True(t, isMap)
	v, _, isMap, ok = sub.Lookup("s100")
	require.True(t, ok)
	assert.False(t, isMap)
	assert.Equal(t, int64(0), v.Int())

	n, err := parser.Parse("num1 > num2 or num3 < num4")
	require.NoError(t, err)
	matched, err := eval.Matches(n, ctx, eval.Options{})
	require.NoError(t, err)
	assert.True(t, matched)
}
