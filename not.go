package jsonschema

// notKeywordClass implements "not": the instance is valid iff it fails to
// validate against the given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-not
var notKeywordClass = &KeywordClass{
	Name:       "not",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		branch := evaluateSchema(ck.Single, scope.Instance, scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
		branch.Parent = scope
		scope.Children = append(scope.Children, branch)

		if branch.State == StatePassed {
			scope.Fail("not_mismatch", "value must not validate against the given schema", nil)
			return
		}
		scope.Pass()
	},
}

func init() { notKeywordClass.Build = buildSingleApplicator(notKeywordClass) }
