package jsonschema

// exclusiveMinimumKeywordClass implements "exclusiveMinimum": the numeric
// instance must be strictly greater than the given value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusiveminimum
var exclusiveMinimumKeywordClass = &KeywordClass{
	Name:          "exclusiveMinimum",
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
		if value.Cmp(limit.Rat) <= 0 {
			scope.Fail("exclusive_minimum_mismatch", "{value} should be greater than {exclusive_minimum}", map[string]any{
				"exclusive_minimum": FormatRat(limit),
				"value":             FormatRat(value),
			})
			return
		}
		scope.Pass()
	},
}

func init() { exclusiveMinimumKeywordClass.Build = buildLeaf(exclusiveMinimumKeywordClass) }
