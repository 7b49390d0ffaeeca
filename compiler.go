package jsonschema

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Compiler turns a decoded JSON document into a CompiledSchema, per
// spec.md §4.2's compile algorithm. A Compiler is cheap to create and
// generally short-lived — one per Compile/CompileValue call is typical,
// though nothing prevents reuse.
type Compiler struct {
	catalog *Catalog
	session string

	// DefaultMetaschemaURI is used when a schema document has no "$schema"
	// of its own and no parent to inherit one from. NewCompiler presets it
	// when the catalog has exactly one registered metaschema.
	DefaultMetaschemaURI string
}

// NewCompiler creates a Compiler bound to catalog (used to resolve
// "$schema"/"$vocabulary" and to register compiled (sub)schemas by URI).
func NewCompiler(catalog *Catalog) *Compiler {
	c := &Compiler{catalog: catalog, session: defaultSession}
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	if len(catalog.metaschemas) == 1 {
		for uri := range catalog.metaschemas {
			c.DefaultMetaschemaURI = uri
		}
	}
	return c
}

// WithSession scopes subsequent Compile calls to a session's cache
// partition instead of "default".
func (c *Compiler) WithSession(session string) *Compiler {
	c.session = session
	return c
}

// Compile parses raw as JSON and compiles it into a CompiledSchema, using
// uri as its canonical identity (a "mem:<uuid>" URI is generated if uri is
// empty and the document has no "$id").
func (c *Compiler) Compile(raw []byte, uri string) (*CompiledSchema, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}
	cs, err := c.compileDocument(doc, uri, "")
	if err != nil {
		return nil, err
	}
	c.catalog.AddSchema(c.session, cs.URI, cs)
	return cs, nil
}

// CompileValue compiles an already-decoded document (map[string]any or
// bool), as produced by a Source or a YAML decode helper.
func (c *Compiler) CompileValue(doc any, uri string) (*CompiledSchema, error) {
	cs, err := c.compileDocument(doc, uri, "")
	if err != nil {
		return nil, err
	}
	c.catalog.AddSchema(c.session, cs.URI, cs)
	return cs, nil
}

// compileDocument compiles a schema resource's root document: step 1
// (boolean short-circuit), step 2 (provisional URI), step 3 (metaschema
// determination) and steps 4-6, all performed by compileValue.
func (c *Compiler) compileDocument(doc any, uri string, inheritedMeta string) (*CompiledSchema, error) {
	return c.compileValue(doc, nil, nil, "", uri, inheritedMeta)
}

func (c *Compiler) compileValue(doc any, parent *CompiledSchema, parentKeyword *CompiledKeyword, pointer string, uri string, inheritedMeta string) (*CompiledSchema, error) {
	// Step 1: boolean schema short-circuit.
	if b, ok := doc.(bool); ok {
		return &CompiledSchema{Boolean: &b, Parent: parent, ParentKeyword: parentKeyword, Pointer: pointer, Catalog: c.catalog, URI: uri}, nil
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrInvalidSchema
	}

	// Draft-7 back-compat: normalize "definitions" to "$defs" before
	// anything else sees the document.
	if defs, has := obj["definitions"]; has {
		if _, already := obj["$defs"]; !already {
			obj["$defs"] = defs
		}
		delete(obj, "definitions")
	}

	cs := &CompiledSchema{
		Raw:           obj,
		Parent:        parent,
		ParentKeyword: parentKeyword,
		Pointer:       pointer,
		Catalog:       c.catalog,
		Session:       c.session,
		Keywords:      make(map[string]*CompiledKeyword),
	}

	// Step 2: provisional URI. ownID tracks whether this schema object
	// declared its own "$id" and so is a distinct schema resource in its
	// own right, rather than just inheriting its enclosing resource's base
	// URI — only resources in the former category get registered in the
	// catalog (see the registration call at the end of this function).
	ownID := false
	baseURI := ""
	if parent != nil {
		baseURI = parent.BaseURI
	}
	if idVal, has := obj["$id"]; has {
		idStr, ok := idVal.(string)
		if !ok {
			return nil, ErrInvalidId
		}
		resolved, err := resolveID(idStr, baseURI)
		if err != nil {
			return nil, err
		}
		cs.URI = resolved
		cs.BaseURI = resolved
		ownID = true
	} else if uri != "" {
		cs.URI = uri
		cs.BaseURI = uri
	} else if baseURI != "" {
		cs.URI = baseURI
		cs.BaseURI = baseURI
	} else {
		cs.URI = "mem:" + newSessionID()
		cs.BaseURI = cs.URI
	}

	// Step 3: metaschema determination: embedded "$schema" wins, then the
	// URI the caller supplied, then the parent's metaschema, then the
	// compiler's configured default.
	metaURI := inheritedMeta
	if s, has := obj["$schema"]; has {
		if ss, ok := s.(string); ok {
			metaURI = ss
		}
	} else if parent != nil {
		metaURI = parent.Meta.URI
	} else if metaURI == "" {
		metaURI = c.DefaultMetaschemaURI
	}
	meta, ok := c.catalog.Metaschema(metaURI)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVocabulary, metaURI)
	}
	cs.Meta = meta

	if parent != nil {
		cs.Anchors = parent.Anchors
		cs.DynamicAnchors = parent.DynamicAnchors
	} else {
		cs.Anchors = make(map[string]*CompiledSchema)
		cs.DynamicAnchors = make(map[string]*CompiledSchema)
	}

	if err := rejectMixedItemsShape(obj); err != nil {
		return nil, err
	}

	// Step 4/5: per-property keyword instantiation, including static
	// identity-keyword side effects, executed via each KeywordClass.Build.
	// An unrecognized keyword is neither rejected nor built against a
	// KeywordClass: it is kept as an opaque pass-through whose raw value
	// surfaces as an annotation at evaluation time (unknownKeywordClass,
	// unknown.go), per spec.md §4.5. A recognized keyword whose raw JSON
	// value doesn't match its keyword class's expected shape fails
	// compilation before Build ever runs (shape.go).
	for name, rawVal := range obj {
		kc, known := meta.Keyword(name)
		if !known {
			if name == "$id" || name == "$schema" {
				continue // consumed by steps 2 and 3 above
			}
			cs.Keywords[name] = &CompiledKeyword{Schema: cs, Name: name, Class: unknownKeywordClass, Value: rawVal, Location: cs.Pointer + "/" + name}
			continue
		}
		if validate, hasShape := shapeValidators[name]; hasShape && !validate(rawVal) {
			return nil, ErrInvalidSchema
		}
		ck, err := kc.Build(c, cs, name, rawVal)
		if err != nil {
			return nil, err
		}
		cs.Keywords[name] = ck
	}

	// $anchor/$dynamicAnchor register themselves on cs.Anchors/DynamicAnchors
	// as a side effect of their Build function; $recursiveAnchor sets
	// cs.RecursiveAnchor directly.

	// Step 6: dependency-respecting evaluation order.
	cs.Order = orderKeywords(cs)

	// Register this schema resource in the catalog so $ref/$recursiveRef/
	// $dynamicRef can find it by URI later, applied recursively to every
	// nested "$id" boundary (step 2, per spec.md §4.2) — not just the two
	// document-level entry points (Compile/CompileValue). A subschema that
	// merely inherits its parent's base URI is not a distinct resource and
	// must NOT be registered under that URI, or it would overwrite the
	// parent's own cache entry.
	if ownID || parent == nil {
		c.catalog.AddSchema(c.session, cs.URI, cs)
	}

	return cs, nil
}

func rejectMixedItemsShape(obj map[string]any) error {
	if _, hasPrefix := obj["prefixItems"]; !hasPrefix {
		return nil
	}
	if items, hasItems := obj["items"]; hasItems {
		if _, isArray := items.([]any); isArray {
			return ErrMixedItemsShape
		}
	}
	return nil
}

// resolveID resolves an "$id" value (required absolute-or-relative,
// fragment-free) against baseURI.
func resolveID(idStr, baseURI string) (string, error) {
	u, err := ParseURI(idStr)
	if err != nil || u.Fragment() != "" {
		return "", ErrInvalidId
	}
	if u.HasScheme() {
		return u.String(), nil
	}
	if baseURI == "" {
		return "", ErrInvalidId
	}
	base, err := ParseURI(baseURI)
	if err != nil {
		return "", ErrInvalidId
	}
	resolved, err := base.Resolve(idStr)
	if err != nil {
		return "", ErrInvalidId
	}
	return resolved.String(), nil
}
