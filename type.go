package jsonschema

import "strings"

// typeKeywordClass implements "type": a string or array of strings naming
// the JSON types ("null", "boolean", "object", "array", "number",
// "integer", "string") the instance must be one of. "number" accepts
// integer-valued instances too.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
var typeKeywordClass = &KeywordClass{
	Name: "type",
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		want := typeValues(ck.Value)
		it := scope.Instance.Type()
		for _, t := range want {
			if matchesInstanceType(it, t) {
				scope.Pass()
				return
			}
		}
		scope.Fail("type_mismatch", "value must be of type {expected}", map[string]any{
			"expected": strings.Join(want, " or "),
			"actual":   it,
		})
	},
}

func init() { typeKeywordClass.Build = buildLeaf(typeKeywordClass) }

func typeValues(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, t := range val {
			if s, ok := t.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
