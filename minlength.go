package jsonschema

import "unicode/utf8"

// minLengthKeywordClass implements "minLength": a string instance's
// length, counted in Unicode code points, must be at least the given
// value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minlength
var minLengthKeywordClass = &KeywordClass{
	Name:          "minLength",
	InstanceTypes: []string{"string"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		s, _ := scope.Instance.Value.(string)
		length := utf8.RuneCountInString(s)
		if length < int(limit) {
			scope.Fail("string_too_short", "value should be at least {min_length} characters", map[string]any{
				"min_length": int(limit),
				"length":     length,
			})
			return
		}
		scope.Pass()
	},
}

func init() { minLengthKeywordClass.Build = buildLeaf(minLengthKeywordClass) }
