package jsonschema

// maximumKeywordClass implements "maximum": the numeric instance must be
// less than or equal to the given value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maximum
var maximumKeywordClass = &KeywordClass{
	Name:          "maximum",
	InstanceTypes: []string{"number"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, err := NewRat(ck.Value)
		if err != nil {
			scope.Discard()
			return
		}
		value, err := NewRat(scope.Instance.Value)
		if err != nil {
			scope.Discard()
			return
		}
		if value.Cmp(limit.Rat) > 0 {
			scope.Fail("value_above_maximum", "{value} should be at most {maximum}", map[string]any{
				"value":   FormatRat(value),
				"maximum": FormatRat(limit),
			})
			return
		}
		scope.Pass()
	},
}

func init() { maximumKeywordClass.Build = buildLeaf(maximumKeywordClass) }
