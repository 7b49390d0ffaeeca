package jsonschema

import "testing"

func TestValuesEqualBooleanNeverEqualsNumber(t *testing.T) {
	if valuesEqual(true, 1.0) {
		t.Fatal("true must not equal 1 under typed equality")
	}
	if valuesEqual(false, 0.0) {
		t.Fatal("false must not equal 0 under typed equality")
	}
}

func TestValuesEqualNumericCrossRepresentation(t *testing.T) {
	if !valuesEqual(1.0, int64(1)) {
		t.Fatal("1.0 and int64(1) should compare equal arithmetically")
	}
	if !valuesEqual(2.0, 2.0) {
		t.Fatal("identical floats should compare equal")
	}
}

func TestValuesEqualObjectsIgnoreKeyOrder(t *testing.T) {
	a := map[string]any{"x": 1.0, "y": 2.0}
	b := map[string]any{"y": 2.0, "x": 1.0}
	if !valuesEqual(a, b) {
		t.Fatal("objects with the same key/value pairs must compare equal regardless of iteration order")
	}
}

func TestCanonicalKeyMatchesValuesEqual(t *testing.T) {
	a := []any{1.0, "x", map[string]any{"a": true}}
	b := []any{1.0, "x", map[string]any{"a": true}}
	if canonicalKey(a) != canonicalKey(b) {
		t.Fatal("canonicalKey must agree with valuesEqual for equal composite values")
	}
	if canonicalKey(true) == canonicalKey(1.0) {
		t.Fatal("canonicalKey must distinguish true from 1 the same way valuesEqual does")
	}
}
