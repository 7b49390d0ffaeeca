package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, catalog *Catalog, raw string) *CompiledSchema {
	t.Helper()
	cs, err := NewCompiler(catalog).Compile([]byte(raw), "")
	require.NoError(t, err)
	return cs
}

func TestEvaluateBasicTypeAndRequired(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"type": "object",
		"properties": {"name": {"type": "string"}, "age": {"type": "integer", "minimum": 0}},
		"required": ["name"]
	}`)

	root := Evaluate(cs, map[string]any{"name": "Ada", "age": 30.0})
	assert.True(t, root.State == StatePassed)

	root = Evaluate(cs, map[string]any{"age": -1.0})
	assert.Equal(t, StateFailed, root.State)
}

func TestEvaluateAllOfAnyOfOneOfNot(t *testing.T) {
	catalog := Builtin2020()

	allOf := mustCompile(t, catalog, `{"allOf": [{"type": "number"}, {"minimum": 0}]}`)
	assert.Equal(t, StatePassed, Evaluate(allOf, 5.0).State)
	assert.Equal(t, StateFailed, Evaluate(allOf, -5.0).State)

	anyOf := mustCompile(t, catalog, `{"anyOf": [{"type": "string"}, {"type": "number"}]}`)
	assert.Equal(t, StatePassed, Evaluate(anyOf, "x").State)
	assert.Equal(t, StateFailed, Evaluate(anyOf, true).State)

	oneOf := mustCompile(t, catalog, `{"oneOf": [{"multipleOf": 2}, {"multipleOf": 3}]}`)
	assert.Equal(t, StatePassed, Evaluate(oneOf, 4.0).State)  // only multiple of 2
	assert.Equal(t, StateFailed, Evaluate(oneOf, 6.0).State)  // multiple of both: oneOf violated
	assert.Equal(t, StateFailed, Evaluate(oneOf, 5.0).State)  // neither

	not := mustCompile(t, catalog, `{"not": {"type": "string"}}`)
	assert.Equal(t, StatePassed, Evaluate(not, 1.0).State)
	assert.Equal(t, StateFailed, Evaluate(not, "x").State)
}

func TestEvaluateConditional(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"if": {"properties": {"kind": {"const": "circle"}}},
		"then": {"required": ["radius"]},
		"else": {"required": ["width", "height"]}
	}`)

	assert.Equal(t, StatePassed, Evaluate(cs, map[string]any{"kind": "circle", "radius": 2.0}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, map[string]any{"kind": "circle"}).State)
	assert.Equal(t, StatePassed, Evaluate(cs, map[string]any{"kind": "square", "width": 1.0, "height": 1.0}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, map[string]any{"kind": "square"}).State)
}

func TestEvaluateContains(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"contains": {"type": "number"}, "minContains": 2, "maxContains": 3}`)

	assert.Equal(t, StatePassed, Evaluate(cs, []any{1.0, "x", 2.0}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, []any{1.0, "x", "y"}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, []any{1.0, 2.0, 3.0, 4.0}).State)
}

func TestEvaluateUnevaluatedProperties(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"allOf": [{"properties": {"a": {"type": "string"}}}],
		"properties": {"b": {"type": "number"}},
		"unevaluatedProperties": false
	}`)

	assert.Equal(t, StatePassed, Evaluate(cs, map[string]any{"a": "x", "b": 1.0}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, map[string]any{"a": "x", "c": true}).State)
}

func TestEvaluateUnevaluatedItems(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"prefixItems": [{"type": "string"}],
		"unevaluatedItems": false
	}`)

	assert.Equal(t, StatePassed, Evaluate(cs, []any{"x"}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, []any{"x", 1.0}).State)
}

func TestEvaluateRef(t *testing.T) {
	catalog := Builtin2020()
	_ = mustCompile(t, catalog, `{"$id": "http://example.com/base", "type": "object", "properties": {"age": {"type": "integer"}}}`)
	cs := mustCompile(t, catalog, `{
		"$id": "http://example.com/outer",
		"properties": {"person": {"$ref": "http://example.com/base"}}
	}`)

	assert.Equal(t, StatePassed, Evaluate(cs, map[string]any{"person": map[string]any{"age": 5.0}}).State)
	assert.Equal(t, StateFailed, Evaluate(cs, map[string]any{"person": map[string]any{"age": "old"}}).State)
}

func TestEvaluateRefUnresolved(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"$ref": "http://example.com/does-not-exist"}`)
	root := Evaluate(cs, 1.0)
	assert.Equal(t, StateFailed, root.State)
}

func TestEvaluateDynamicRefExtension(t *testing.T) {
	catalog := Builtin2020()
	_ = mustCompile(t, catalog, `{
		"$id": "http://example.com/tree",
		"$dynamicAnchor": "node",
		"properties": {
			"data": true,
			"children": {"type": "array", "items": {"$dynamicRef": "#node"}}
		}
	}`)
	cs := mustCompile(t, catalog, `{
		"$id": "http://example.com/strict-tree",
		"$ref": "http://example.com/tree",
		"$dynamicAnchor": "node",
		"properties": {
			"data": true,
			"children": {"type": "array", "items": {"$dynamicRef": "#node"}}
		},
		"unevaluatedProperties": false
	}`)

	good := map[string]any{
		"data":     "root",
		"children": []any{map[string]any{"data": "leaf"}},
	}
	assert.Equal(t, StatePassed, Evaluate(cs, good).State)

	bad := map[string]any{
		"data":     "root",
		"children": []any{map[string]any{"data": "leaf", "extra": true}},
	}
	assert.Equal(t, StateFailed, Evaluate(cs, bad).State)
}

func TestEvaluateContentDecoding(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"type": "string",
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "object", "required": ["ok"]}
	}`)

	assert.Equal(t, StatePassed, Evaluate(cs, "eyJvayI6dHJ1ZX0=").State) // {"ok":true}
	assert.Equal(t, StateFailed, Evaluate(cs, "bm90LWpzb24=").State)     // "not-json"
}
