package jsonschema

import "strings"

// requiredKeywordClass implements "required": every listed property name
// must be present on the instance object.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-required
var requiredKeywordClass = &KeywordClass{
	Name:          "required",
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		names, _ := ck.Value.([]any)
		obj, _ := scope.Instance.Value.(map[string]any)

		var missing []string
		for _, n := range names {
			name, _ := n.(string)
			if _, ok := obj[name]; !ok {
				missing = append(missing, name)
			}
		}

		if len(missing) == 0 {
			scope.Pass()
			return
		}
		scope.Fail("missing_required_properties", "required properties {properties} are missing", map[string]any{
			"properties": strings.Join(missing, ", "),
		})
	},
}

func init() { requiredKeywordClass.Build = buildLeaf(requiredKeywordClass) }
