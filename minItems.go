package jsonschema

// minItemsKeywordClass implements "minItems": an array instance must have
// at least the given number of elements.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minitems
var minItemsKeywordClass = &KeywordClass{
	Name:          "minItems",
	InstanceTypes: []string{"array"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		arr, _ := scope.Instance.Value.([]any)
		if float64(len(arr)) < limit {
			scope.Fail("items_too_short", "value should have at least {min_items} items", map[string]any{
				"min_items": int(limit),
				"count":     len(arr),
			})
			return
		}
		scope.Pass()
	},
}

func init() { minItemsKeywordClass.Build = buildLeaf(minItemsKeywordClass) }
