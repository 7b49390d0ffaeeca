package jsonschema

import "math/big"

// multipleOfKeywordClass implements "multipleOf": the numeric instance
// divided by the given value must be an exact integer.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-multipleof
var multipleOfKeywordClass = &KeywordClass{
	Name:          "multipleOf",
	InstanceTypes: []string{"number"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		divisor, err := NewRat(ck.Value)
		if err != nil || divisor.Sign() <= 0 {
			scope.Fail("invalid_multiple_of", "multipleOf should be greater than 0", nil)
			return
		}
		value, err := NewRat(scope.Instance.Value)
		if err != nil {
			scope.Discard()
			return
		}

		result := new(big.Rat).Quo(value.Rat, divisor.Rat)
		if !result.IsInt() {
			scope.Fail("not_multiple_of", "{value} should be a multiple of {multiple_of}", map[string]any{
				"multiple_of": FormatRat(divisor),
				"value":       FormatRat(value),
			})
			return
		}
		scope.Pass()
	},
}

func init() { multipleOfKeywordClass.Build = buildLeaf(multipleOfKeywordClass) }
