package jsonschema

import "strings"

// unevaluatedItemsKeywordClass implements "unevaluatedItems": every array
// element not already accounted for by a sibling "items", "prefixItems",
// "contains", or "unevaluatedItems" annotation (collected through in-place
// applicators: allOf/anyOf/oneOf/if/then/else/$ref/$dynamicRef/
// $recursiveRef) must validate against the given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-unevaluateditems
var unevaluatedItemsKeywordClass = &KeywordClass{
	Name:          "unevaluatedItems",
	Applicator:    true,
	InstanceTypes: []string{"array"},
	DependsOn:     []string{"items", "prefixItems", "contains", "allOf", "anyOf", "oneOf", "if", "then", "else", "$ref", "$dynamicRef", "$recursiveRef"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		arr, _ := scope.Instance.Value.([]any)

		evaluated := collectEvaluatedIndices(scope.Parent, map[string]bool{
			"items": true, "prefixItems": true, "contains": true, "unevaluatedItems": true,
		})
		allEvaluated := evaluated[-1]

		var failed []string
		for i, item := range arr {
			if allEvaluated || evaluated[i] {
				continue
			}
			edge := itoa(i)
			branch := evaluateSchema(ck.Single, scope.Instance.Child(i, item), scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
			branch.Parent = scope
			branch.Keyword = edge
			scope.Children = append(scope.Children, branch)
			if branch.State != StatePassed {
				failed = append(failed, edge)
			}
		}

		if len(failed) > 0 {
			scope.Fail("unevaluated_items_mismatch", "items at indexes {indexes} do not match the unevaluatedItems schema", map[string]any{
				"indexes": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(true)
	},
}

func init() { unevaluatedItemsKeywordClass.Build = buildSingleApplicator(unevaluatedItemsKeywordClass) }
