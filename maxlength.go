package jsonschema

import "unicode/utf8"

// maxLengthKeywordClass implements "maxLength": a string instance's
// length, counted in Unicode code points, must be at most the given value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxlength
var maxLengthKeywordClass = &KeywordClass{
	Name:          "maxLength",
	InstanceTypes: []string{"string"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		s, _ := scope.Instance.Value.(string)
		length := utf8.RuneCountInString(s)
		if length > int(limit) {
			scope.Fail("string_too_long", "value should be at most {max_length} characters", map[string]any{
				"max_length": int(limit),
				"length":     length,
			})
			return
		}
		scope.Pass()
	},
}

func init() { maxLengthKeywordClass.Build = buildLeaf(maxLengthKeywordClass) }
