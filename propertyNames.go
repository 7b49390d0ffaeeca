package jsonschema

import "strings"

// propertyNamesKeywordClass implements "propertyNames": every property
// name of an object instance, evaluated as a string instance, must
// validate against the given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-propertynames
var propertyNamesKeywordClass = &KeywordClass{
	Name:          "propertyNames",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, _ := scope.Instance.Value.(map[string]any)

		var failed []string
		for propName := range obj {
			branch := evaluateSchema(ck.Single, scope.Instance.Child(propName, propName), scope.EvaluationPath+"/"+escapePointerToken(propName), absoluteLocation(ck.Single, ""), dyn)
			branch.Parent = scope
			branch.Keyword = propName
			scope.Children = append(scope.Children, branch)
			if branch.State != StatePassed {
				failed = append(failed, propName)
			}
		}

		if len(failed) > 0 {
			scope.Fail("property_names_mismatch", "property names {properties} do not match the schema", map[string]any{
				"properties": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass()
	},
}

func init() { propertyNamesKeywordClass.Build = buildSingleApplicator(propertyNamesKeywordClass) }
