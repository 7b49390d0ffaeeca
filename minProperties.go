package jsonschema

// minPropertiesKeywordClass implements "minProperties": an object
// instance must have at least the given number of properties.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minproperties
var minPropertiesKeywordClass = &KeywordClass{
	Name:          "minProperties",
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		obj, _ := scope.Instance.Value.(map[string]any)
		if float64(len(obj)) < limit {
			scope.Fail("too_few_properties", "value should have at least {min_properties} properties", map[string]any{
				"min_properties": int(limit),
				"count":          len(obj),
			})
			return
		}
		scope.Pass()
	},
}

func init() { minPropertiesKeywordClass.Build = buildLeaf(minPropertiesKeywordClass) }
