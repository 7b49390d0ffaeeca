package jsonschema

// constKeywordClass implements "const": the instance must be typed-equal
// (valuesEqual) to the keyword's value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-const
var constKeywordClass = &KeywordClass{
	Name: "const",
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		if valuesEqual(scope.Instance.Value, ck.Value) {
			scope.Pass()
			return
		}
		scope.Fail("const_mismatch", "value must equal the constant value", nil)
	},
}

func init() { constKeywordClass.Build = buildLeaf(constKeywordClass) }
