package jsonschema

// Evaluate validates instance against cs, returning the root of the result
// scope tree. Use output.go's formatters (Flag/Basic/Hierarchical/Verbose)
// to render it.
func Evaluate(cs *CompiledSchema, instance any) *ResultScope {
	dyn := newDynamicScope()
	root := evaluateSchema(cs, NewValueTree(instance), "", absoluteLocation(cs, ""), dyn)
	return root
}

// evaluateSchema evaluates cs against instance, building a schema-level
// ResultScope whose children are one per keyword in cs.Order. The returned
// scope has no parent; an applicator that evaluates a subschema branch
// attaches it under its own keyword scope.
func evaluateSchema(cs *CompiledSchema, instance *ValueNode, evalPath string, kwLoc string, dyn *dynamicScope) *ResultScope {
	scope := &ResultScope{SchemaNode: cs, Instance: instance, EvaluationPath: evalPath, KeywordLocation: kwLoc, Assert: true}

	if cs.IsBoolean() {
		if *cs.Boolean {
			scope.State = StatePassed
		} else {
			scope.Fail("schema-false", "the schema \"false\" never validates", nil)
		}
		return scope
	}

	dyn.push(cs)
	defer dyn.pop()

	for _, name := range cs.Order {
		ck := cs.Keywords[name]
		if ck.Class.Static {
			continue // compile-time-only; no result scope of its own
		}
		childPath := evalPath + "/" + name
		childLoc := kwLoc + "/" + name
		child := newResultScope(scope, name, instance, childPath, childLoc)

		if !ck.Class.AppliesTo(instance.Type()) {
			child.Discard()
			continue
		}
		ck.Class.Evaluate(ck, child, dyn)
	}

	return scope.Finalize()
}

// evaluateListBranches evaluates each subschema in ck.List against the same
// instance as scope, attaching one schema-level child scope per index
// (edge label = the index), for allOf/anyOf/oneOf.
func evaluateListBranches(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) []*ResultScope {
	branches := make([]*ResultScope, len(ck.List))
	for i, sub := range ck.List {
		edge := itoa(i)
		branch := evaluateSchema(sub, scope.Instance, scope.EvaluationPath+"/"+edge, absoluteLocation(sub, ""), dyn)
		branch.Parent = scope
		branch.Keyword = edge
		scope.Children = append(scope.Children, branch)
		branches[i] = branch
	}
	return branches
}

// absoluteLocation renders a schema's canonical URI plus an in-document
// pointer suffix as an absolute keyword location, switching base URI at
// $ref/$dynamicRef/$recursiveRef boundaries (those evaluators call
// evaluateSchema with the target schema's own URI as the new kwLoc base).
func absoluteLocation(cs *CompiledSchema, suffix string) string {
	return cs.URI + "#" + suffix
}
