package jsonschema

// containsKeywordClass implements "contains"/"minContains"/"maxContains":
// at least minContains (default 1) and at most maxContains (default
// unbounded) array elements must validate against the "contains"
// subschema. minContains: 0 makes the keyword vacuously satisfied even
// with zero matches. Produces the set of matching indices as its
// annotation.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-contains
var containsKeywordClass = &KeywordClass{
	Name:          "contains",
	Applicator:    true,
	InstanceTypes: []string{"array"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		arr, _ := scope.Instance.Value.([]any)

		minContains := 1
		if mc, ok := ck.Schema.Keyword("minContains"); ok {
			if n, ok := mc.Value.(float64); ok {
				minContains = int(n)
			}
		}
		var maxContains int
		hasMax := false
		if mc, ok := ck.Schema.Keyword("maxContains"); ok {
			if n, ok := mc.Value.(float64); ok {
				maxContains = int(n)
				hasMax = true
			}
		}

		matched := make(map[int]bool)
		for i, item := range arr {
			edge := itoa(i)
			branch := evaluateSchema(ck.Single, scope.Instance.Child(i, item), scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
			branch.Parent = scope
			branch.Keyword = edge
			scope.Children = append(scope.Children, branch)
			if branch.State == StatePassed {
				matched[i] = true
			}
		}

		count := len(matched)
		if !(minContains == 0 && count == 0) && count < minContains {
			scope.Fail("contains_too_few_items", "value should contain at least {min_contains} matching items", map[string]any{
				"min_contains": minContains,
				"count":        count,
			})
			return
		}
		if hasMax && count > maxContains {
			scope.Fail("contains_too_many_items", "value should contain no more than {max_contains} matching items", map[string]any{
				"max_contains": maxContains,
				"count":        count,
			})
			return
		}
		scope.Pass(matched)
	},
}

// minContainsKeywordClass and maxContainsKeywordClass are compiled but
// never evaluated directly; containsKeywordClass.Evaluate drives them.
var minContainsKeywordClass = &KeywordClass{Name: "minContains", InstanceTypes: []string{"array"}, Static: true}
var maxContainsKeywordClass = &KeywordClass{Name: "maxContains", InstanceTypes: []string{"array"}, Static: true}

func init() {
	containsKeywordClass.Build = buildSingleApplicator(containsKeywordClass)
	minContainsKeywordClass.Build = buildLeaf(minContainsKeywordClass)
	maxContainsKeywordClass.Build = buildLeaf(maxContainsKeywordClass)
}
