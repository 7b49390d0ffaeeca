package jsonschema

import "strings"

// prefixItemsKeywordClass implements "prefixItems": the array element at
// each index must validate against the subschema at the same position in
// the list, for as many positions as both have. Produces the largest
// index validated as its annotation.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-prefixitems
var prefixItemsKeywordClass = &KeywordClass{
	Name:          "prefixItems",
	Applicator:    true,
	InstanceTypes: []string{"array"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		arr, _ := scope.Instance.Value.([]any)

		var failed []string
		lastValidated := -1
		for i, sub := range ck.List {
			if i >= len(arr) {
				break
			}
			edge := itoa(i)
			branch := evaluateSchema(sub, scope.Instance.Child(i, arr[i]), scope.EvaluationPath+"/"+edge, absoluteLocation(sub, ""), dyn)
			branch.Parent = scope
			branch.Keyword = edge
			scope.Children = append(scope.Children, branch)
			if branch.State == StatePassed {
				lastValidated = i
			} else {
				failed = append(failed, edge)
			}
		}

		if len(failed) > 0 {
			scope.Fail("prefix_items_mismatch", "items at index {indexes} do not match the prefixItems schemas", map[string]any{
				"indexes": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(lastValidated)
	},
}

func init() { prefixItemsKeywordClass.Build = buildListApplicator(prefixItemsKeywordClass) }
