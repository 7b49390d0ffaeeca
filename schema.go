package jsonschema

import "github.com/dlclark/regexp2"

// CompiledSchema is the compiler's output: a JSON Schema document (or
// boolean schema) turned into a directly-evaluable keyword set, per
// spec.md §3 "Compiled schema" / §4.2.
type CompiledSchema struct {
	// Boolean is non-nil for a boolean schema (true / false); an empty
	// object {} is compiled as an ordinary object schema. Most other fields
	// are unused in the boolean case.
	Boolean *bool

	Raw     any // the raw decoded schema document (map[string]any), or nil for a boolean schema
	URI     string
	BaseURI string
	Session string // catalog cache partition this schema (and its $ref targets) resolve against
	Meta    *Metaschema
	Catalog *Catalog

	Keywords map[string]*CompiledKeyword
	Order    []string // keyword names, dependency-respecting evaluation order

	Parent        *CompiledSchema
	ParentKeyword *CompiledKeyword
	Pointer       string // JSON Pointer from the root of the document it was compiled from

	Anchors         map[string]*CompiledSchema
	DynamicAnchors  map[string]*CompiledSchema
	RecursiveAnchor bool // this schema resource declares "$recursiveAnchor": true

	compiledPatterns map[string]*regexp2.Regexp
}

// CompiledKeyword is one compiled keyword occurrence within a
// CompiledSchema: its raw value plus, for applicators, the compiled
// subschema(s) it applies.
type CompiledKeyword struct {
	Schema *CompiledSchema
	Name   string
	Class  *KeywordClass
	Value  any // raw JSON value, always populated

	// Exactly one of the following is populated, matching Class.Applicator
	// and the particular applicator shape (single / list / map):
	Single *CompiledSchema
	List   []*CompiledSchema
	Map    map[string]*CompiledSchema
	Keys   []string // Map's keys, in sorted order

	Location string // JSON Pointer to this keyword from its document's root

	Pattern *regexp2.Regexp // precompiled, for the "pattern" keyword
}

// IsBoolean reports whether cs is a boolean schema.
func (cs *CompiledSchema) IsBoolean() bool { return cs.Boolean != nil }

// Keyword looks up a compiled keyword by name.
func (cs *CompiledSchema) Keyword(name string) (*CompiledKeyword, bool) {
	ck, ok := cs.Keywords[name]
	return ck, ok
}

// HasKeyword reports whether the schema declares the named keyword.
func (cs *CompiledSchema) HasKeyword(name string) bool {
	_, ok := cs.Keywords[name]
	return ok
}

// RawString returns cs.Raw[name] as a string, or "" if absent/wrong type.
func (cs *CompiledSchema) RawString(name string) string {
	if cs.Raw == nil {
		return ""
	}
	m, ok := cs.Raw.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[name].(string)
	return s
}
