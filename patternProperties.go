package jsonschema

import (
	"sort"
	"strings"
)

// patternPropertiesKeywordClass implements "patternProperties": every
// instance property whose name matches one of the given ECMA-262 regular
// expressions must validate against the corresponding subschema. A
// property may match more than one pattern, and must satisfy all of them.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-patternproperties
var patternPropertiesKeywordClass = &KeywordClass{
	Name:          "patternProperties",
	Applicator:    true,
	InstanceTypes: []string{"object"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		obj, _ := scope.Instance.Value.(map[string]any)

		var matched []string
		var failed []string
		seenFailed := make(map[string]bool)
		seenMatched := make(map[string]bool)

		for _, pattern := range ck.Keys {
			re := ck.Schema.compiledPatterns[pattern]
			sub := ck.Map[pattern]
			for propName, value := range obj {
				ok, err := re.MatchString(propName)
				if err != nil || !ok {
					continue
				}
				if !seenMatched[propName] {
					seenMatched[propName] = true
					matched = append(matched, propName)
				}
				branch := evaluateSchema(sub, scope.Instance.Child(propName, value), scope.EvaluationPath+"/"+escapePointerToken(propName), absoluteLocation(sub, ""), dyn)
				branch.Parent = scope
				branch.Keyword = propName
				scope.Children = append(scope.Children, branch)
				if branch.State != StatePassed && !seenFailed[propName] {
					seenFailed[propName] = true
					failed = append(failed, propName)
				}
			}
		}

		if len(failed) > 0 {
			sort.Strings(failed)
			scope.Fail("pattern_properties_mismatch", "properties {properties} do not match their pattern schemas", map[string]any{
				"properties": strings.Join(failed, ", "),
			})
			return
		}
		scope.Pass(matched)
	},
}

func init() {
	patternPropertiesKeywordClass.Build = func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidSchema
		}
		ck := &CompiledKeyword{Schema: cs, Name: name, Class: patternPropertiesKeywordClass, Value: raw, Map: make(map[string]*CompiledSchema, len(obj)), Location: cs.Pointer + "/" + name}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, pattern := range keys {
			if _, err := compileCachedPattern(cs, pattern); err != nil {
				return nil, ErrInvalidSchema
			}
			sub, err := c.compileValue(obj[pattern], cs, ck, cs.Pointer+"/"+name+"/"+escapePointerToken(pattern), "", "")
			if err != nil {
				return nil, err
			}
			ck.Map[pattern] = sub
			ck.Keys = append(ck.Keys, pattern)
		}
		return ck, nil
	}
}
