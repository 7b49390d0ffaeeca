package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile2020(t *testing.T, raw string) *CompiledSchema {
	t.Helper()
	c := NewCompiler(Builtin2020())
	cs, err := c.Compile([]byte(raw), "")
	require.NoError(t, err)
	return cs
}

func TestCompileWithID(t *testing.T) {
	cs := compile2020(t, `{"$id": "http://example.com/schema", "type": "object"}`)
	assert.Equal(t, "http://example.com/schema", cs.URI)
}

func TestCompileGeneratesMemURIWhenAbsent(t *testing.T) {
	cs := compile2020(t, `{"type": "string"}`)
	assert.Contains(t, cs.URI, "mem:")
}

func TestCompileCachesByURI(t *testing.T) {
	catalog := Builtin2020()
	c := NewCompiler(catalog)
	_, err := c.Compile([]byte(`{"$id": "http://example.com/schema", "type": "object"}`), "")
	require.NoError(t, err)

	cached, err := catalog.GetSchema("http://example.com/schema", defaultSession)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/schema", cached.URI)
}

func TestCompileRejectsMixedItemsShape(t *testing.T) {
	c := NewCompiler(Builtin2020())
	_, err := c.Compile([]byte(`{"prefixItems": [{"type": "string"}], "items": [{"type": "number"}]}`), "")
	assert.ErrorIs(t, err, ErrMixedItemsShape)
}

func TestCompileRejectsUnknownMetaschema(t *testing.T) {
	c := NewCompiler(Builtin2020())
	_, err := c.Compile([]byte(`{"$schema": "https://example.com/no-such-dialect"}`), "")
	assert.ErrorIs(t, err, ErrUnknownVocabulary)
}

func TestCompileNormalizesDefinitionsToDefs(t *testing.T) {
	cs := compile2020(t, `{"definitions": {"pos": {"type": "integer", "minimum": 0}}}`)
	ck, ok := cs.Keyword("$defs")
	require.True(t, ok)
	_, ok = ck.Map["pos"]
	assert.True(t, ok)
}

func TestCompileRegistersNestedIdSubschemas(t *testing.T) {
	catalog := Builtin2020()
	c := NewCompiler(catalog)
	cs, err := c.Compile([]byte(`{
		"$id": "http://example.com/root",
		"$defs": {
			"A": {"$id": "http://example.com/nested.json", "type": "string"}
		},
		"allOf": [{"$ref": "http://example.com/nested.json"}]
	}`), "")
	require.NoError(t, err)

	nested, err := catalog.GetSchema("http://example.com/nested.json", defaultSession)
	require.NoError(t, err, "a subschema with its own $id must be registered in the catalog even when nested under $defs")
	assert.Equal(t, "http://example.com/nested.json", nested.URI)

	assert.Equal(t, StatePassed, Evaluate(cs, "hello").State)
	assert.Equal(t, StateFailed, Evaluate(cs, 1.0).State)
}

func TestCompileRejectsShapeMismatch(t *testing.T) {
	c := NewCompiler(Builtin2020())
	_, err := c.Compile([]byte(`{"required": "oops"}`), "")
	assert.ErrorIs(t, err, ErrInvalidSchema, "\"required\" must be an array of strings, not a bare string")

	_, err = c.Compile([]byte(`{"maximum": "oops"}`), "")
	assert.ErrorIs(t, err, ErrInvalidSchema, "\"maximum\" must be a number")

	_, err = c.Compile([]byte(`{"properties": {"x": 5}}`), "")
	assert.ErrorIs(t, err, ErrInvalidSchema, "each value of \"properties\" must be a schema")

	cs, err := c.Compile([]byte(`{"required": ["a", "b"]}`), "")
	require.NoError(t, err, "a well-shaped \"required\" must still compile")
	assert.Equal(t, StatePassed, Evaluate(cs, map[string]any{"a": 1.0, "b": 2.0}).State)
}

func TestEnterSessionIsolatesCache(t *testing.T) {
	catalog := Builtin2020()
	sess, err := catalog.EnterSession("")
	require.NoError(t, err)
	defer sess.Close()

	c := NewCompiler(catalog).WithSession(sess.ID())
	_, err = c.Compile([]byte(`{"$id": "http://example.com/scoped", "type": "string"}`), "")
	require.NoError(t, err)

	_, err = catalog.GetSchema("http://example.com/scoped", defaultSession)
	assert.ErrorIs(t, err, ErrUnknownUri)

	found, err := catalog.GetSchema("http://example.com/scoped", sess.ID())
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/scoped", found.URI)
}
