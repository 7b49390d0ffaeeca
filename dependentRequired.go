package jsonschema

import "strings"

// dependentRequiredKeywordClass implements "dependentRequired": for each
// key present in the instance object, every property name listed for that
// key must also be present.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-dependentrequired
var dependentRequiredKeywordClass = &KeywordClass{
	Name:          "dependentRequired",
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		deps, ok := ck.Value.(map[string]any)
		if !ok {
			scope.Pass()
			return
		}
		obj, ok := scope.Instance.Value.(map[string]any)
		if !ok {
			scope.Pass()
			return
		}

		var missing []string
		for key, reqs := range deps {
			if _, present := obj[key]; !present {
				continue
			}
			reqList, _ := reqs.([]any)
			for _, r := range reqList {
				name, _ := r.(string)
				if _, present := obj[name]; !present {
					missing = append(missing, key+"->"+name)
				}
			}
		}

		if len(missing) == 0 {
			scope.Pass()
			return
		}
		scope.Fail("dependent_required_mismatch", "some required property dependencies are missing: {missing}", map[string]any{
			"missing": strings.Join(missing, ", "),
		})
	},
}

func init() { dependentRequiredKeywordClass.Build = buildLeaf(dependentRequiredKeywordClass) }
