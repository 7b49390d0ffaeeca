package jsonschema

// maxPropertiesKeywordClass implements "maxProperties": an object
// instance must have at most the given number of properties.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxproperties
var maxPropertiesKeywordClass = &KeywordClass{
	Name:          "maxProperties",
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		limit, ok := ck.Value.(float64)
		if !ok {
			scope.Discard()
			return
		}
		obj, _ := scope.Instance.Value.(map[string]any)
		if float64(len(obj)) > limit {
			scope.Fail("too_many_properties", "value should have at most {max_properties} properties", map[string]any{
				"max_properties": int(limit),
				"count":          len(obj),
			})
			return
		}
		scope.Pass()
	},
}

func init() { maxPropertiesKeywordClass.Build = buildLeaf(maxPropertiesKeywordClass) }
