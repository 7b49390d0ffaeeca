package jsonschema

// unknownKeywordClass is the compiled form given to any schema property
// name a schema's metaschema does not recognize (neither a known keyword
// nor an unresolved "$" extension some other draft defines): per spec.md
// §4.5, compilation does not reject it, and evaluation does not enforce
// it — its raw JSON value simply passes through as an annotation on a
// scope that always passes, indistinguishable in the output formats from
// any other passing, annotation-bearing keyword.
var unknownKeywordClass = &KeywordClass{
	Name: "<unknown>",
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		scope.Pass(ck.Value)
	},
}
