package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAnnotationOnlyByDefault(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"type": "string", "format": "email"}`)

	// format assertion is off by default: an invalid email still passes.
	assert.Equal(t, StatePassed, Evaluate(cs, "not-an-email").State)
}

func TestFormatAssertionWhenEnabled(t *testing.T) {
	catalog := Builtin2020()
	require.NoError(t, catalog.EnableFormat("email"))
	cs := mustCompile(t, catalog, `{"type": "string", "format": "email"}`)

	assert.Equal(t, StatePassed, Evaluate(cs, "ada@example.com").State)
	assert.Equal(t, StateFailed, Evaluate(cs, "not-an-email").State)
}

func TestFormatAssertionGloballyEnabled(t *testing.T) {
	catalog := Builtin2020()
	catalog.SetAssertFormat(true)
	cs := mustCompile(t, catalog, `{"type": "string", "format": "uuid"}`)

	assert.Equal(t, StatePassed, Evaluate(cs, "123e4567-e89b-12d3-a456-426614174000").State)
	assert.Equal(t, StateFailed, Evaluate(cs, "nope").State)
}

func TestFormatUnknownIsAnnotationOnlyUnlessAssertive(t *testing.T) {
	catalog := Builtin2020()
	cs := mustCompile(t, catalog, `{"format": "x-made-up"}`)
	assert.Equal(t, StatePassed, Evaluate(cs, "anything").State)

	catalog.SetAssertFormat(true)
	cs2 := mustCompile(t, catalog, `{"format": "x-made-up"}`)
	assert.Equal(t, StateFailed, Evaluate(cs2, "anything").State)
}

func TestEnableFormatUnknownNameErrors(t *testing.T) {
	catalog := Builtin2020()
	err := catalog.EnableFormat("not-registered")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
