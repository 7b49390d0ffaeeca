package jsonschema

// exclusiveMaximumKeywordClass implements "exclusiveMaximum": the numeric
// instance must be strictly less than the given value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusivemaximum
var exclusiveMaximumKeywordClass = &KeywordClass{
	Name:          "exclusiveMaximum",
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
		if value.Cmp(limit.Rat) >= 0 {
			scope.Fail("exclusive_maximum_mismatch", "{value} should be less than {exclusive_maximum}", map[string]any{
				"exclusive_maximum": FormatRat(limit),
				"value":             FormatRat(value),
			})
			return
		}
		scope.Pass()
	},
}

func init() { exclusiveMaximumKeywordClass.Build = buildLeaf(exclusiveMaximumKeywordClass) }
