package jsonschema

// shapeValidators checks a recognized keyword's raw JSON value against its
// keyword class's expected shape (string, number, array-of-schemas, and so
// on) before compileValue calls the keyword class's Build — the compile
// algorithm's step 7 resolution (SPEC_FULL.md §5): "each known keyword's
// raw JSON value is checked against its keyword class's expected JSON
// shape... and fails compilation otherwise." Keywords whose Build already
// performs an equivalent structural check via compileValue's own
// bool-or-object decoding (the schema/list/map applicators) are included
// here too, for a single place that documents every keyword's expected
// shape; keywords absent from this map are unchecked (const accepts any
// JSON value; $id and $schema are handled directly by compileValue, not
// through this dispatch).
var shapeValidators = map[string]func(any) bool{
	"type": func(v any) bool { return isString(v) || isStringArray(v) },
	"enum": isArray,

	"multipleOf":       isPositiveNumber,
	"maximum":          isNumber,
	"minimum":          isNumber,
	"exclusiveMaximum": isNumber,
	"exclusiveMinimum": isNumber,

	"maxLength":     isNonNegativeInteger,
	"minLength":     isNonNegativeInteger,
	"pattern":       isString,
	"format":        isString,
	"contentEncoding": isString,
	"contentMediaType": isString,
	"contentSchema": isSchema,

	"maxItems":     isNonNegativeInteger,
	"minItems":     isNonNegativeInteger,
	"uniqueItems":  isBool,
	"maxContains":  isNonNegativeInteger,
	"minContains":  isNonNegativeInteger,
	"prefixItems":  isSchemaArray,
	"items":        isSchema,
	"contains":     isSchema,

	"maxProperties":         isNonNegativeInteger,
	"minProperties":         isNonNegativeInteger,
	"required":              isStringArray,
	"dependentRequired":     isStringArrayObject,
	"properties":            isSchemaObject,
	"patternProperties":     isSchemaObject,
	"additionalProperties":  isSchema,
	"propertyNames":         isSchema,
	"unevaluatedItems":      isSchema,
	"unevaluatedProperties": isSchema,
	"dependentSchemas":      isSchemaObject,

	"allOf": isSchemaArray,
	"anyOf": isSchemaArray,
	"oneOf": isSchemaArray,
	"not":   isSchema,
	"if":    isSchema,
	"then":  isSchema,
	"else":  isSchema,

	"$ref":             isString,
	"$recursiveRef":    isString,
	"$dynamicRef":      isString,
	"$anchor":          isString,
	"$dynamicAnchor":   isString,
	"$recursiveAnchor": isBool,
	"$comment":         isString,
	"$vocabulary":      isStringToBoolObject,
	"$defs":            isSchemaObject,
}

func isString(v any) bool { _, ok := v.(string); return ok }
func isBool(v any) bool   { _, ok := v.(bool); return ok }
func isArray(v any) bool  { _, ok := v.([]any); return ok }

// isSchema reports whether v is a valid schema value: a JSON object or a
// boolean (the two forms a schema document can take).
func isSchema(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	_, ok := v.(map[string]any)
	return ok
}

func isStringArray(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range arr {
		if !isString(e) {
			return false
		}
	}
	return true
}

func isSchemaArray(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range arr {
		if !isSchema(e) {
			return false
		}
	}
	return true
}

func isSchemaObject(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, e := range obj {
		if !isSchema(e) {
			return false
		}
	}
	return true
}

func isStringArrayObject(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, e := range obj {
		if !isStringArray(e) {
			return false
		}
	}
	return true
}

func isStringToBoolObject(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, e := range obj {
		if !isBool(e) {
			return false
		}
	}
	return true
}

// isNumber reports whether v is any of the JSON-decoded numeric
// representations this module accepts (see value.go's isNumeric).
func isNumber(v any) bool { return isNumeric(v) }

// isNonNegativeInteger reports whether v is a whole number >= 0, using the
// same exact-decimal Rat conversion as multipleOf/maximum/minimum so that
// numeric strings and big.Rat values (not just float64) are accepted.
func isNonNegativeInteger(v any) bool {
	r, err := NewRat(v)
	if err != nil {
		return false
	}
	return r.IsInt() && r.Sign() >= 0
}

// isPositiveNumber reports whether v is a number strictly greater than
// zero, as "multipleOf" requires.
func isPositiveNumber(v any) bool {
	r, err := NewRat(v)
	if err != nil {
		return false
	}
	return r.Sign() > 0
}
