package jsonschema

import "strings"

// itemsKeywordClass implements "items" (2020-12 single-schema form): every
// array element at or beyond the length of a sibling "prefixItems" (0 if
// absent) must validate against the given subschema. On success, produces
// a "true" annotation meaning every remaining element was evaluated.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-items
var itemsKeywordClass = &KeywordClass{
	Name:          "items",
	Applicator:    true,
	InstanceTypes: []string{"array"},
	DependsOn:     []string{"prefixItems"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		arr, _ := scope.Instance.Value.([]any)

		startIndex := 0
		if prefix, ok := ck.Schema.Keyword("prefixItems"); ok {
			startIndex = len(prefix.List)
		}

		var failed []string
		for i := startIndex; i < len(arr); i++ {
			edge := itoa(i)
			branch := evaluateSchema(ck.Single, scope.Instance.Child(i, arr[i]), scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
			branch.Parent = scope
			branch.Keyword = edge
			scope.Children = append(scope.Children, branch)
			if branch.State != StatePassed {
				failed = append(failed, edge)
			}
		}

		if len(failed) > 0 {
			scope.Fail("items_mismatch", "items at index {indexes} do not match the schema", map[string]any{
				"indexes": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(true)
	},
}

func init() { itemsKeywordClass.Build = buildSingleApplicator(itemsKeywordClass) }
