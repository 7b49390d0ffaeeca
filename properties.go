package jsonschema

import "strings"

// propertiesKeywordClass implements "properties": for every property name
// appearing in both the instance and this keyword's value, the instance's
// value at that name must validate against the corresponding subschema.
// Produces the matched property names as its annotation (for
// additionalProperties/unevaluatedProperties).
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-properties
var propertiesKeywordClass = &KeywordClass{
	Name:          "properties",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, _ := scope.Instance.Value.(map[string]any)

		var matched []string
		var failed []string
		for _, name := range ck.Keys {
			value, exists := obj[name]
			if !exists {
				continue
			}
			sub := ck.Map[name]
			branch := evaluateSchema(sub, scope.Instance.Child(name, value), scope.EvaluationPath+"/"+escapePointerToken(name), absoluteLocation(sub, ""), dyn)
			branch.Parent = scope
			branch.Keyword = name
			scope.Children = append(scope.Children, branch)

			matched = append(matched, name)
			if branch.State != StatePassed {
				failed = append(failed, name)
			}
		}

		if len(failed) > 0 {
			scope.Fail("properties_mismatch", "properties {properties} do not match their schemas", map[string]any{
				"properties": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(matched)
	},
}

func init() { propertiesKeywordClass.Build = buildMapApplicator(propertiesKeywordClass) }
