package jsonschema

// formatKeywordClass implements "format": validates the instance against a
// named format validator registered on the schema's Catalog. Unless format
// assertion has been enabled (globally via Catalog.SetAssertFormat, or per
// format via Catalog.EnableFormat), a failed or unknown format only
// withholds the "format" annotation rather than failing the schema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-format
var formatKeywordClass = &KeywordClass{
	Name: "format",
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		name, _ := ck.Value.(string)
		fn, known, assertive := ck.Schema.Catalog.formatValidator(name)

		if !known {
			if assertive {
				scope.Fail("unknown_format", "unknown format '{format}'", map[string]any{"format": name})
				return
			}
			scope.Discard()
			return
		}

		if fn(scope.Instance.Value) {
			scope.Pass(name)
			return
		}

		if assertive {
			scope.Fail("format_mismatch", "value does not match format '{format}'", map[string]any{"format": name})
			return
		}
		scope.Discard()
	},
}

func init() { formatKeywordClass.Build = buildLeaf(formatKeywordClass) }
