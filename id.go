package jsonschema

// anchorKeywordClass implements "$anchor": names this schema resource so
// it can be addressed as "<base-uri>#<name>" instead of by JSON Pointer.
// Compile-time only; no evaluation behavior.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-anchor-keyword
var anchorKeywordClass = &KeywordClass{Name: "$anchor", Static: true}

// dynamicAnchorKeywordClass implements "$dynamicAnchor": like $anchor, but
// also makes this schema resource a candidate target for $dynamicRef's
// outermost-match search over the active dynamic scope.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dynamic-references-with-dyn
var dynamicAnchorKeywordClass = &KeywordClass{Name: "$dynamicAnchor", Static: true}

// recursiveAnchorKeywordClass implements "$recursiveAnchor" (2019-09):
// marks this schema resource as a valid target for $recursiveRef's
// outermost-match search.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#recursiveRef-and-recursiveAnchor
var recursiveAnchorKeywordClass = &KeywordClass{Name: "$recursiveAnchor", Static: true}

// vocabularyKeywordClass implements "$vocabulary": declares which
// vocabularies a metaschema document requires/permits. Stored for
// inspection; actual vocabulary enforcement happens when the metaschema
// is registered with the catalog (see Catalog.RegisterMetaschema).
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-vocabulary-keyword
var vocabularyKeywordClass = &KeywordClass{Name: "$vocabulary", Static: true}

// defsKeywordClass implements "$defs" (and its draft-7 alias
// "definitions", normalized away before compilation reaches this point):
// a map of reusable subschemas, compiled so $ref can address them, but
// never evaluated on their own.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-schema-re-use-with-defs
var defsKeywordClass = &KeywordClass{Name: "$defs", Applicator: true, Static: true}

// commentKeywordClass implements "$comment": an author-facing note with
// no effect on validation.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-comments-with-comment
var commentKeywordClass = &KeywordClass{Name: "$comment", Static: true}

func init() {
	anchorKeywordClass.Build = func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		anchor, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidSchema
		}
		if _, dup := cs.Anchors[anchor]; dup {
			return nil, ErrDuplicateAnchor
		}
		cs.Anchors[anchor] = cs
		return &CompiledKeyword{Schema: cs, Name: name, Class: anchorKeywordClass, Value: raw, Location: cs.Pointer + "/" + name}, nil
	}

	dynamicAnchorKeywordClass.Build = func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		anchor, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidSchema
		}
		cs.DynamicAnchors[anchor] = cs
		if _, dup := cs.Anchors[anchor]; !dup {
			cs.Anchors[anchor] = cs
		}
		return &CompiledKeyword{Schema: cs, Name: name, Class: dynamicAnchorKeywordClass, Value: raw, Location: cs.Pointer + "/" + name}, nil
	}

	recursiveAnchorKeywordClass.Build = func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		if b, ok := raw.(bool); ok && b {
			cs.RecursiveAnchor = true
		}
		return &CompiledKeyword{Schema: cs, Name: name, Class: recursiveAnchorKeywordClass, Value: raw, Location: cs.Pointer + "/" + name}, nil
	}

	vocabularyKeywordClass.Build = buildLeaf(vocabularyKeywordClass)
	defsKeywordClass.Build = buildMapApplicator(defsKeywordClass)
	commentKeywordClass.Build = buildLeaf(commentKeywordClass)
}
