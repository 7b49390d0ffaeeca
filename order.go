package jsonschema

import "sort"

// orderKeywords computes a dependency-respecting evaluation order for a
// compiled schema's keyword set, per spec.md §4.3: a topological sort over
// each KeywordClass's DependsOn list, falling back to the teacher's
// historical fixed sequence (type, enum/const, applicators, conditional,
// per-type assertions, dependentSchemas, unevaluated*, content) as a
// stable tiebreak so iteration order never depends on Go's randomized map
// order.
func orderKeywords(cs *CompiledSchema) []string {
	present := make(map[string]bool, len(cs.Keywords))
	for name := range cs.Keywords {
		present[name] = true
	}

	visited := make(map[string]int) // 0 unvisited, 1 in-progress, 2 done
	var order []string

	var visit func(name string)
	visit = func(name string) {
		if visited[name] == 2 || !present[name] {
			return
		}
		if visited[name] == 1 {
			return // dependency cycle in a pathological vocabulary: break it rather than loop forever
		}
		visited[name] = 1
		ck := cs.Keywords[name]
		for _, dep := range ck.Class.DependsOn {
			visit(dep)
		}
		visited[name] = 2
		order = append(order, name)
	}

	for _, name := range keywordPriority {
		if present[name] {
			visit(name)
		}
	}
	rest := make([]string, 0, len(present))
	for name := range present {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		visit(name)
	}
	return order
}

// keywordPriority is the teacher's historical fixed evaluation sequence,
// used only to seed a deterministic visitation order for the topological
// sort above; the sort itself (via DependsOn) is what actually enforces
// correctness (e.g. unevaluatedProperties always last).
var keywordPriority = []string{
	"$id", "$schema", "$vocabulary", "$anchor", "$dynamicAnchor", "$recursiveAnchor",
	"$defs", "$comment",
	"$ref", "$recursiveRef", "$dynamicRef",
	"type", "enum", "const",
	"allOf", "anyOf", "oneOf", "not",
	"if", "then", "else",
	"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	"maxLength", "minLength", "pattern", "format", "contentEncoding", "contentMediaType", "contentSchema",
	"maxItems", "minItems", "uniqueItems", "prefixItems", "items", "contains",
	"maxProperties", "minProperties", "required", "dependentRequired",
	"properties", "patternProperties", "additionalProperties", "propertyNames",
	"dependentSchemas",
	"unevaluatedItems", "unevaluatedProperties",
}
