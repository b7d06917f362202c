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

import "github.com/HankBreck/rules-engine/value"

// Context is the read-only recursive mapping an evaluation consults for
// identifiers and attributes. A host binding that owns a native
// associative array adapts it behind this interface; FromMap does that
// adaptation for a plain Go map.
type Context interface {
	// Lookup returns the binding for name. ok is false if name is absent.
	// A binding is either a leaf value.Value (isMap == false) or a nested
	// Context (isMap == true); at most one of the two return slots is
	// meaningful, selected by isMap.
	Lookup(name string) (v value.Value, sub Context, isMap bool, ok bool)
}

// MapContext adapts a plain Go map into a Context. Supported leaf types
// for host values follow their natural Go mapping: int and int64 become
// value.Int, float64 becomes value.Float, bool becomes value.Bool, string
// becomes value.Str, nil becomes value.Null. A nested map[string]any
// becomes a nested Context; any other type makes Lookup panic.
type MapContext map[string]any

// FromMap builds a Context from a native Go map. Values are converted
// lazily: a nested map[string]any is wrapped when it is looked up, and
// Lookup panics when it reaches a value of a type this package doesn't know
// how to represent — that is a host binding bug, not a rule-evaluation
// error. FromMap itself never inspects or rejects the values in m.
func FromMap(m map[string]any) Context {
	return MapContext(m)
}

func (m MapContext) Lookup(name string) (value.Value, Context, bool, bool) {
	raw, ok := m[name]
	if !ok {
		return value.Value{}, nil, false, false
	}
	v, sub, isMap := wrap(raw)
	return v, sub, isMap, true
}

func wrap(raw any) (value.Value, Context, bool) {
	switch x := raw.(type) {
	case map[string]any:
		return value.Value{}, MapContext(x), true
	case value.Value:
		return x, nil, false
	case int:
		return value.NewInt(int64(x)), nil, false
	case int64:
		return value.NewInt(x), nil, false
	case float64:
		return value.NewFloat(x), nil, false
	case bool:
		return value.NewBool(x), nil, false
	case string:
		return value.NewStr(x), nil, false
	case nil:
		return value.NewNull(), nil, false
	default:
		panic("eval: unsupported context value type")
	}
}
