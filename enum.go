package jsonschema

// enumKeywordClass implements "enum": the instance is valid iff it is
// typed-equal (valuesEqual, value.go) to at least one of the listed values.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
var enumKeywordClass = &KeywordClass{
	Name: "enum",
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		values, _ := ck.Value.([]any)
		for _, v := range values {
			if valuesEqual(scope.Instance.Value, v) {
				scope.Pass()
				return
			}
		}
		scope.Fail("enum_mismatch", "value must be one of the enumerated values", nil)
	},
}

func init() { enumKeywordClass.Build = buildLeaf(enumKeywordClass) }
