package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstTypedEquality(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"const": 1}`)

	assert.Equal(t, StatePassed, Evaluate(cs, 1.0).State)
	assert.Equal(t, StateFailed, Evaluate(cs, true).State, "true must not satisfy const: 1")
}

func TestEnumTypedEquality(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"enum": [0, false, "x"]}`)

	assert.Equal(t, StatePassed, Evaluate(cs, 0.0).State)
	assert.Equal(t, StatePassed, Evaluate(cs, false).State)
	assert.Equal(t, StatePassed, Evaluate(cs, "x").State)
	assert.Equal(t, StateFailed, Evaluate(cs, "y").State)
}

func TestUniqueItemsTypedEquality(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"uniqueItems": true}`)

	assert.Equal(t, StatePassed, Evaluate(cs, []any{1.0, true, "1"}).State, "1, true, and \"1\" are all distinct under typed equality")
	assert.Equal(t, StateFailed, Evaluate(cs, []any{1.0, 1.0}).State)
	assert.Equal(t, StatePassed, Evaluate(cs, []any{0.0, false}).State, "0 and false are distinct under typed equality")
}
