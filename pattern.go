package jsonschema

import "github.com/dlclark/regexp2"

// patternKeywordClass implements "pattern": a string instance must contain
// a match (not necessarily anchored) for the given ECMA-262 regular
// expression.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-pattern
var patternKeywordClass = &KeywordClass{
	Name:          "pattern",
	InstanceTypes: []string{"string"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		if ck.Pattern == nil {
			scope.Discard()
			return
		}
		s, _ := scope.Instance.Value.(string)
		matched, err := ck.Pattern.MatchString(s)
		if err != nil || !matched {
			scope.Fail("pattern_mismatch", "value does not match the required pattern {pattern}", map[string]any{
				"pattern": ck.Value,
				"value":   s,
			})
			return
		}
		scope.Pass()
	},
}

func init() {
	patternKeywordClass.Build = func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		pattern, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidSchema
		}
		re, err := compileCachedPattern(cs, pattern)
		if err != nil {
			return nil, ErrInvalidSchema
		}
		return &CompiledKeyword{Schema: cs, Name: name, Class: patternKeywordClass, Value: raw, Pattern: re, Location: cs.Pointer + "/" + name}, nil
	}
}

// compileCachedPattern compiles pattern in the ECMAScript dialect,
// caching the result on cs so repeated keywords (pattern,
// patternProperties) referencing the same literal string share one compile.
func compileCachedPattern(cs *CompiledSchema, pattern string) (*regexp2.Regexp, error) {
	if cs.compiledPatterns == nil {
		cs.compiledPatterns = make(map[string]*regexp2.Regexp)
	}
	if re, ok := cs.compiledPatterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	cs.compiledPatterns[pattern] = re
	return re, nil
}
