package jsonschema

// anyOfKeywordClass implements "anyOf": the instance is valid iff it
// validates against at least one of the listed subschemas.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-anyof
var anyOfKeywordClass = &KeywordClass{
	Name:       "anyOf",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		branches := evaluateListBranches(ck, scope, dyn)
		for _, b := range branches {
			if b.State == StatePassed {
				scope.Pass()
				return
			}
		}
		scope.Fail("any_of_mismatch", "value must validate against at least one of the given schemas", nil)
	},
}

func init() { anyOfKeywordClass.Build = buildListApplicator(anyOfKeywordClass) }
