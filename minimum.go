package jsonschema

// minimumKeywordClass implements "minimum": the numeric instance must be
// greater than or equal to the given value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minimum
var minimumKeywordClass = &KeywordClass{
	Name:          "minimum",
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
		if value.Cmp(limit.Rat) < 0 {
			scope.Fail("value_below_minimum", "{value} should be at least {minimum}", map[string]any{
				"value":   FormatRat(value),
				"minimum": FormatRat(limit),
			})
			return
		}
		scope.Pass()
	},
}

func init() { minimumKeywordClass.Build = buildLeaf(minimumKeywordClass) }
