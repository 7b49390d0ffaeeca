package jsonschema

import "strings"

// dependentSchemasKeywordClass implements "dependentSchemas": for each
// property present in the instance object, the whole instance must
// validate against the subschema registered under that property name.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dependentschemas
var dependentSchemasKeywordClass = &KeywordClass{
	Name:          "dependentSchemas",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, ok := scope.Instance.Value.(map[string]any)
		if !ok {
			scope.Pass()
			return
		}

		var failed []string
		for _, key := range ck.Keys {
			if _, present := obj[key]; !present {
				continue
			}
			sub := ck.Map[key]
			branch := evaluateSchema(sub, scope.Instance, scope.EvaluationPath+"/"+escapePointerToken(key), absoluteLocation(sub, ""), dyn)
			branch.Parent = scope
			branch.Keyword = key
			scope.Children = append(scope.Children, branch)
			if branch.State != StatePassed {
				failed = append(failed, key)
			}
		}

		if len(failed) == 0 {
			scope.Pass()
			return
		}
		scope.Fail("dependent_schemas_mismatch", "properties {properties} do not meet the schema requirements dependent on them", map[string]any{
			"properties": strings.Join(failed, ", "),
		})
	},
}

func init() { dependentSchemasKeywordClass.Build = buildMapApplicator(dependentSchemasKeywordClass) }
