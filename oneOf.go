package jsonschema

import "strings"

// oneOfKeywordClass implements "oneOf": the instance is valid iff it
// validates against exactly one of the listed subschemas.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-oneof
var oneOfKeywordClass = &KeywordClass{
	Name:       "oneOf",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		branches := evaluateListBranches(ck, scope, dyn)
		var matched []string
		for i, b := range branches {
			if b.State == StatePassed {
				matched = append(matched, itoa(i))
			}
		}
		switch len(matched) {
		case 1:
			scope.Pass()
		case 0:
			scope.Fail("one_of_mismatch", "value must validate against exactly one of the given schemas, but matched none", nil)
		default:
			scope.Fail("one_of_multiple_matches", "value must validate against exactly one of the given schemas, but matched {matches}", map[string]any{
				"matches": strings.Join(matched, ", "),
			})
		}
	},
}

func init() { oneOfKeywordClass.Build = buildListApplicator(oneOfKeywordClass) }
