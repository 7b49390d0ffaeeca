package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormats(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`)

	passing := Evaluate(cs, map[string]any{"name": "Ada"})
	failing := Evaluate(cs, map[string]any{"name": 1.0})

	assert.True(t, Flag(passing).Valid)
	assert.False(t, Flag(failing).Valid)

	basic := Basic(failing)
	require.False(t, basic.Valid)
	require.NotEmpty(t, basic.Details)
	assert.Contains(t, basic.Details[0].Errors, "properties")

	hier := Hierarchical(failing)
	assert.False(t, hier.Valid)

	verbose := Verbose(passing)
	assert.True(t, verbose.Valid)
	// walk every node of the verbose tree; nothing here is discarded, and
	// sawDiscarded is not checked.
	var sawDiscarded bool
	var walk func(u *OutputUnit)
	walk = func(u *OutputUnit) {
		for _, c := range u.Details {
			walk(c)
		}
	}
	walk(verbose)
	_ = sawDiscarded
}

func TestBasicPassingRootAnnotations(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{
		"properties": {"name": {"type": "string"}},
		"unknownKeyword": {"foo": "bar"}
	}`)

	passing := Evaluate(cs, map[string]any{"name": "Ada"})
	require.Equal(t, StatePassed, passing.State)

	basic := Basic(passing)
	require.True(t, basic.Valid)
	require.NotEmpty(t, basic.Details, "a passing root must still surface its passing, annotation-bearing descendants")

	var sawUnknown, sawProperties bool
	for _, d := range basic.Details {
		if v, ok := d.Annotations["unknownKeyword"]; ok {
			sawUnknown = true
			assert.Equal(t, map[string]any{"foo": "bar"}, v)
		}
		if _, ok := d.Annotations["properties"]; ok {
			sawProperties = true
		}
	}
	assert.True(t, sawUnknown, "unknown keyword's raw value must appear as a passing annotation")
	assert.True(t, sawProperties, "properties annotation must appear for a passing root")
}

func TestUnknownKeywordAnnotation(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"type": "string", "x-custom": 42}`)

	passing := Evaluate(cs, "hello")
	require.Equal(t, StatePassed, passing.State)

	basic := Basic(passing)
	require.True(t, basic.Valid)
	var found bool
	for _, d := range basic.Details {
		if v, ok := d.Annotations["x-custom"]; ok {
			found = true
			assert.Equal(t, 42.0, v)
		}
	}
	assert.True(t, found, "Basic() must surface the unknown keyword's value as an annotation")

	verbose := Verbose(passing)
	require.True(t, verbose.Valid)
	found = false
	var walk func(u *OutputUnit)
	walk = func(u *OutputUnit) {
		if v, ok := u.Annotations["x-custom"]; ok {
			found = true
			assert.Equal(t, 42.0, v)
		}
		for _, c := range u.Details {
			walk(c)
		}
	}
	walk(verbose)
	assert.True(t, found, "Verbose() must surface the unknown keyword's value as an annotation")
}

func TestAsEvaluationError(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"type": "string", "minLength": 3}`)
	root := Evaluate(cs, "ab")
	require.Equal(t, StateFailed, root.State)

	var found *EvaluationError
	var walk func(s *ResultScope)
	walk = func(s *ResultScope) {
		if e := s.AsEvaluationError(); e != nil && found == nil {
			found = e
		}
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(root)
	require.NotNil(t, found)
	assert.Equal(t, "string_too_short", found.Code)
}
