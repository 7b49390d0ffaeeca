package jsonschema

import "strings"

// uniqueItemsKeywordClass implements "uniqueItems": when true, every
// element of an array instance must be typed-distinct (canonicalKey,
// value.go) from every other element.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-uniqueitems
var uniqueItemsKeywordClass = &KeywordClass{
	Name:          "uniqueItems",
	InstanceTypes: []string{"array"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		want, _ := ck.Value.(bool)
		if !want {
			scope.Pass()
			return
		}
		arr, _ := scope.Instance.Value.([]any)

		seen := make(map[string][]int)
		for i, item := range arr {
			key := canonicalKey(item)
			seen[key] = append(seen[key], i)
		}

		var duplicates []string
		for _, indices := range seen {
			if len(indices) > 1 {
				parts := make([]string, len(indices))
				for j, idx := range indices {
					parts[j] = itoa(idx)
				}
				duplicates = append(duplicates, "("+strings.Join(parts, ", ")+")")
			}
		}

		if len(duplicates) > 0 {
			scope.Fail("unique_items_mismatch", "found duplicates at the following index groups: {duplicates}", map[string]any{
				"duplicates": strings.Join(duplicates, ", "),
			})
			return
		}
		scope.Pass()
	},
}

func init() { uniqueItemsKeywordClass.Build = buildLeaf(uniqueItemsKeywordClass) }
