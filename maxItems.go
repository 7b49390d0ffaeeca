package jsonschema

// maxItemsKeywordClass implements "maxItems": an array instance must have
// at most the given number of elements.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxitems
var maxItemsKeywordClass = &KeywordClass{
	Name:          "maxItems",
	InstanceTypes: []string{"array"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		arr, _ := scope.Instance.Value.([]any)
		if float64(len(arr)) > limit {
			scope.Fail("items_too_long", "value should have at most {max_items} items", map[string]any{
				"max_items": int(limit),
				"count":     len(arr),
			})
			return
		}
		scope.Pass()
	},
}

func init() { maxItemsKeywordClass.Build = buildLeaf(maxItemsKeywordClass) }
