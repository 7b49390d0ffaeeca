package jsonschema

// refKeywordClass implements "$ref": the instance must validate against
// the schema identified by resolving this URI reference against the
// enclosing schema resource's base URI. Resolution is deferred to
// evaluation time (via the catalog) rather than done at compile time,
// since the target may not exist yet when this schema is compiled.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-direct-references-with-ref
var refKeywordClass = &KeywordClass{
	Name:       "$ref",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		target, err := resolveRef(ck)
		if err != nil {
			scope.Fail("reference_unresolved", "could not resolve reference '{ref}'", map[string]any{"ref": ck.Value})
			return
		}
		evaluateRefTarget(target, ck, scope, dyn)
	},
}

// recursiveRefKeywordClass implements "$recursiveRef" (2019-09): like
// $ref, but if the statically resolved target declares
// "$recursiveAnchor": true, the actual target becomes the outermost
// schema resource in the active dynamic scope that also declares
// $recursiveAnchor, allowing a recursive subschema to be "plugged in" by
// whichever resource first referenced it.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#recursiveRef-and-recursiveAnchor
var recursiveRefKeywordClass = &KeywordClass{
	Name:       "$recursiveRef",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		refschema, err := resolveRef(ck)
		if err != nil {
			scope.Fail("reference_unresolved", "could not resolve reference '{ref}'", map[string]any{"ref": ck.Value})
			return
		}
		target := refschema
		if refschema.RecursiveAnchor {
			target = dyn.outermostRecursive(refschema)
		}
		evaluateRefTarget(target, ck, scope, dyn)
	},
}

// dynamicRefKeywordClass implements "$dynamicRef" (2020-12): like $ref,
// but when the reference's fragment names a plain anchor, the active
// dynamic scope is searched outermost-to-innermost for a schema resource
// declaring a matching "$dynamicAnchor" — the earliest such declaration
// wins, falling back to the statically resolved target if none is found.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dynamic-references-with-dyn
var dynamicRefKeywordClass = &KeywordClass{
	Name:       "$dynamicRef",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		refschema, err := resolveRef(ck)
		if err != nil {
			scope.Fail("reference_unresolved", "could not resolve reference '{ref}'", map[string]any{"ref": ck.Value})
			return
		}
		target := refschema
		ref, _ := ck.Value.(string)
		if resolved, rerr := ParseURI(ck.Schema.BaseURI); rerr == nil {
			if abs, aerr := resolved.Resolve(ref); aerr == nil {
				if anchor := abs.Fragment(); anchor != "" && anchor[0] != '/' {
					if found := dyn.outermostDynamicAnchor(anchor); found != nil {
						target = found
					}
				}
			}
		}
		evaluateRefTarget(target, ck, scope, dyn)
	},
}

func init() {
	refKeywordClass.Build = buildLeaf(refKeywordClass)
	recursiveRefKeywordClass.Build = buildLeaf(recursiveRefKeywordClass)
	dynamicRefKeywordClass.Build = buildLeaf(dynamicRefKeywordClass)
}

// resolveRef resolves ck's raw string value against ck.Schema's base URI
// and looks up the result in ck.Schema's catalog/session.
func resolveRef(ck *CompiledKeyword) (*CompiledSchema, error) {
	ref, ok := ck.Value.(string)
	if !ok {
		return nil, ErrInvalidSchema
	}
	base, err := ParseURI(ck.Schema.BaseURI)
	if err != nil {
		return nil, err
	}
	resolved, err := base.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return ck.Schema.Catalog.GetSchema(resolved.String(), ck.Schema.Session)
}

// evaluateRefTarget evaluates target against scope's instance, attaching
// the result as scope's sole child and deriving scope's own state from it.
func evaluateRefTarget(target *CompiledSchema, ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
	branch := evaluateSchema(target, scope.Instance, scope.EvaluationPath+"/"+ck.Name, absoluteLocation(target, ""), dyn)
	branch.Parent = scope
	branch.Keyword = ck.Name
	scope.Children = append(scope.Children, branch)
	if branch.State == StatePassed {
		scope.Pass()
		return
	}
	scope.Fail("reference_mismatch", "value does not match the referenced schema", nil)
}
