package jsonschema

import "strings"

// unevaluatedPropertiesKeywordClass implements "unevaluatedProperties":
// every instance property not already accounted for by a sibling
// "properties", "patternProperties", "additionalProperties", or
// "unevaluatedProperties" annotation (collected through in-place
// applicators: allOf/anyOf/oneOf/if/then/else/dependentSchemas/$ref/
// $dynamicRef/$recursiveRef) must validate against the given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-unevaluatedproperties
var unevaluatedPropertiesKeywordClass = &KeywordClass{
	Name:          "unevaluatedProperties",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	DependsOn:     []string{"properties", "patternProperties", "additionalProperties", "allOf", "anyOf", "oneOf", "if", "then", "else", "dependentSchemas", "$ref", "$dynamicRef", "$recursiveRef"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, _ := scope.Instance.Value.(map[string]any)

		evaluated := collectEvaluatedNames(scope.Parent, map[string]bool{
			"properties": true, "patternProperties": true, "additionalProperties": true, "unevaluatedProperties": true,
		})

		var matched []string
		var failed []string
		for propName, value := range obj {
			if evaluated[propName] {
				continue
			}
			matched = append(matched, propName)
			branch := evaluateSchema(ck.Single, scope.Instance.Child(propName, value), scope.EvaluationPath+"/"+escapePointerToken(propName), absoluteLocation(ck.Single, ""), dyn)
			branch.Parent = scope
			branch.Keyword = propName
			scope.Children = append(scope.Children, branch)
			if branch.State != StatePassed {
				failed = append(failed, propName)
			}
		}

		if len(failed) > 0 {
			scope.Fail("unevaluated_properties_mismatch", "properties {properties} do not match the unevaluatedProperties schema", map[string]any{
				"properties": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(matched)
	},
}

func init() {
	unevaluatedPropertiesKeywordClass.Build = buildSingleApplicator(unevaluatedPropertiesKeywordClass)
}
