package jsonschema

import "strings"

// allOfKeywordClass implements "allOf": the instance must validate against
// every listed subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-allof
var allOfKeywordClass = &KeywordClass{
	Name:       "allOf",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		branches := evaluateListBranches(ck, scope, dyn)
		var failed []string
		for i, b := range branches {
			if b.State != StatePassed {
				failed = append(failed, itoa(i))
			}
		}
		if len(failed) == 0 {
			scope.Pass()
			return
		}
		scope.Fail("all_of_mismatch", "value must validate against every one of the given schemas, failed at index {indexes}", map[string]any{
			"indexes": strings.Join(failed, ", "),
		})
	},
}

func init() { allOfKeywordClass.Build = buildListApplicator(allOfKeywordClass) }
