package jsonschema

import "strings"

// additionalPropertiesKeywordClass implements "additionalProperties":
// every instance property not named by a sibling "properties" or matched
// by a sibling "patternProperties" pattern must validate against the
// given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-additionalproperties
var additionalPropertiesKeywordClass = &KeywordClass{
	Name:          "additionalProperties",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	DependsOn:     []string{"properties", "patternProperties"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, _ := scope.Instance.Value.(map[string]any)

		named := make(map[string]bool)
		if props, ok := ck.Schema.Keyword("properties"); ok {
			for k := range props.Map {
				named[k] = true
			}
		}
		if patterns, ok := ck.Schema.Keyword("patternProperties"); ok {
			for _, pattern := range patterns.Keys {
				re := ck.Schema.compiledPatterns[pattern]
				for propName := range obj {
					if matched, err := re.MatchString(propName); err == nil && matched {
						named[propName] = true
					}
				}
			}
		}

		var matched []string
		var failed []string
		for propName, value := range obj {
			if named[propName] {
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
			scope.Fail("additional_properties_mismatch", "additional properties {properties} do not match the schema", map[string]any{
				"properties": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(matched)
	},
}

func init() { additionalPropertiesKeywordClass.Build = buildSingleApplicator(additionalPropertiesKeywordClass) }
