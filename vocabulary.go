package jsonschema

// KeywordClass is the static metadata describing one keyword a vocabulary
// contributes to schema compilation: its instance-type filter, its
// dependencies on sibling keywords (used to compute evaluation order, see
// order.go), whether it is an applicator (recurses into subschemas), and
// whether it is "static" (a compile-time-only side effect, such as
// $anchor, with no evaluation behavior at all).
type KeywordClass struct {
	// Name is the keyword's JSON property name, e.g. "properties".
	Name string

	// InstanceTypes restricts evaluation to instances of these JSON types
	// ("object", "array", "string", "number", "boolean", "null"); empty
	// means the keyword applies to every instance type. A keyword whose
	// instance does not match is discarded (state Discarded), not failed.
	InstanceTypes []string

	// DependsOn names sibling keywords that must be evaluated, within the
	// same schema object, before this one (e.g. "unevaluatedProperties"
	// depends on "properties", "patternProperties", "additionalProperties",
	// every applicator, and "$ref"/"$dynamicRef"/"$recursiveRef").
	DependsOn []string

	// Applicator marks a keyword that applies one or more subschemas to
	// the instance (or a related instance), producing nested result
	// scopes rather than a single leaf assertion.
	Applicator bool

	// Static marks a keyword with compile-time-only side effects and no
	// runtime evaluation behavior ($anchor, $dynamicAnchor,
	// $recursiveAnchor, $vocabulary, $defs/definitions, $comment). $id and
	// $schema have no keyword class; compileValue consumes them directly.
	Static bool

	// Build compiles the keyword's raw JSON value (cs.Raw[Name]) into a
	// *CompiledKeyword, recursively compiling any subschemas it applies
	// and running any compile-time side effects. Required even for Static
	// keywords (their Build is where the side effect happens).
	Build func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error)

	// Evaluate runs the keyword against an instance, writing into scope
	// (already created as a child of the owning schema-level scope, with
	// Keyword/Instance/paths pre-filled). Nil for Static keywords.
	Evaluate func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope)
}

// AppliesTo reports whether the keyword class applies to an instance of the
// given JSON type.
func (kc *KeywordClass) AppliesTo(instanceType string) bool {
	if len(kc.InstanceTypes) == 0 {
		return true
	}
	for _, t := range kc.InstanceTypes {
		if matchesInstanceType(instanceType, t) {
			return true
		}
	}
	return false
}

// Vocabulary is a named, reusable bundle of keyword classes. Metaschemas
// reference vocabularies by URI to determine which keywords a schema
// document may use.
type Vocabulary struct {
	URI      string
	Keywords map[string]*KeywordClass
}

// NewVocabulary builds a Vocabulary from a set of keyword classes.
func NewVocabulary(uri string, classes ...*KeywordClass) *Vocabulary {
	v := &Vocabulary{URI: uri, Keywords: make(map[string]*KeywordClass, len(classes))}
	for _, kc := range classes {
		v.Keywords[kc.Name] = kc
	}
	return v
}
