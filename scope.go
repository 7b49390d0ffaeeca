package jsonschema

// Validity is the result-scope state machine: every scope starts Unknown,
// and is driven to exactly one of Passed, Failed, or Discarded by the
// keyword (or schema) that owns it.
//
// Reference: spec.md §3 "Result scope".
type Validity uint8

const (
	StateUnknown Validity = iota
	StatePassed
	StateFailed
	StateDiscarded
)

func (v Validity) String() string {
	switch v {
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// ResultScope is one node of the evaluation result tree. A schema-level
// scope (one per schema object visited, including through $ref) has one
// child per keyword it evaluates; an applicator keyword's scope in turn has
// one child per subschema it applies (indexed for array-shaped applicators
// like allOf, keyed for map-shaped applicators like properties).
type ResultScope struct {
	Parent *ResultScope

	// SchemaNode is set only on schema-level scopes (the node representing
	// "this compiled schema evaluated against this instance"), nil on
	// keyword-level scopes.
	SchemaNode *CompiledSchema

	// Keyword is this scope's edge label from its parent: a keyword name
	// on a keyword scope, or an applicator branch label ("0", "1", ... or
	// a property name) on a schema-level scope nested under an applicator.
	Keyword string

	Instance        *ValueNode
	EvaluationPath  string
	KeywordLocation string

	State      Validity
	Assert     bool
	Annotation any
	HasAnnot   bool
	Error      string
	ErrorCode  string
	ErrorArgs  map[string]any

	Children []*ResultScope
}

func newResultScope(parent *ResultScope, keyword string, instance *ValueNode, evalPath, kwLoc string) *ResultScope {
	s := &ResultScope{
		Parent:          parent,
		Keyword:         keyword,
		Instance:        instance,
		EvaluationPath:  evalPath,
		KeywordLocation: kwLoc,
		Assert:          true,
	}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// Pass marks the scope as satisfied, optionally recording an annotation
// value produced by the keyword (only meaningful on a Passed scope).
func (s *ResultScope) Pass(annotation ...any) *ResultScope {
	s.State = StatePassed
	if len(annotation) > 0 {
		s.Annotation = annotation[0]
		s.HasAnnot = true
	}
	return s
}

// Fail marks the scope as violated, recording a human-readable message and
// a stable code for localization/machine matching.
func (s *ResultScope) Fail(code, message string, args map[string]any) *ResultScope {
	s.State = StateFailed
	s.ErrorCode = code
	s.Error = replace(message, args)
	s.ErrorArgs = args
	return s
}

// Discard marks the scope as not applicable to this instance (e.g. a
// string-only keyword scoped against a non-string instance). Discarded
// scopes never contribute to a parent's invalidation, per the aggregation
// rule below.
func (s *ResultScope) Discard() *ResultScope {
	s.State = StateDiscarded
	s.Assert = false
	return s
}

// Valid computes this scope's aggregate validity: Failed scopes are
// invalid; otherwise the scope is valid iff every asserting child is
// Passed or Discarded.
func (s *ResultScope) Valid() bool {
	if s.State == StateFailed {
		return false
	}
	for _, c := range s.Children {
		if c.Assert && !(c.State == StatePassed || c.State == StateDiscarded) {
			return false
		}
	}
	return true
}

// Finalize sets a schema-level (or applicator-branch) scope's own State
// from its children's aggregate validity, once all of its keywords (or
// subschema branches) have been evaluated.
func (s *ResultScope) Finalize() *ResultScope {
	if s.State == StateFailed || s.State == StateDiscarded {
		return s
	}
	if s.Valid() {
		s.State = StatePassed
	} else {
		s.State = StateFailed
	}
	return s
}

// NewChild creates and attaches a schema-level child scope under an
// applicator keyword scope (one per subschema branch).
func (s *ResultScope) NewChild(edge string, instance *ValueNode, evalPath, kwLoc string) *ResultScope {
	return newResultScope(s, edge, instance, evalPath, kwLoc)
}

// inPlaceApplicators names the keywords whose subschema evaluations apply
// to the SAME instance location as their owner (as opposed to e.g.
// "properties", whose branches apply to child instance locations) — these
// are the keywords collectAnnotations recurses through when gathering
// sibling annotations for unevaluatedProperties/unevaluatedItems.
var inPlaceApplicators = map[string]bool{
	"allOf":           true,
	"anyOf":           true,
	"oneOf":           true,
	"if":              true,
	"then":            true,
	"else":            true,
	"not":             false, // not's subschema never contributes annotations (its pass means the inner schema failed)
	"$ref":            true,
	"$recursiveRef":   true,
	"$dynamicRef":     true,
	"dependentSchemas": true,
}

// collectAnnotations gathers annotation values produced by any of
// keywordNames directly under schemaScope, or transitively through any
// passed in-place applicator branch, per spec.md §4.5's annotation
// collection rule: only successful branches contribute.
func collectAnnotations(schemaScope *ResultScope, keywordNames map[string]bool) []any {
	var out []any
	var walk func(s *ResultScope)
	walk = func(s *ResultScope) {
		for _, kw := range s.Children {
			if keywordNames[kw.Keyword] {
				if kw.State == StatePassed && kw.HasAnnot {
					out = append(out, kw.Annotation)
				}
				continue
			}
			if inPlaceApplicators[kw.Keyword] {
				for _, branch := range kw.Children {
					if branch.State == StatePassed {
						walk(branch)
					}
				}
			}
		}
	}
	walk(schemaScope)
	return out
}

// collectEvaluatedNames flattens collectAnnotations results for keywords
// whose annotation is a []string of property names (properties,
// patternProperties, additionalProperties, unevaluatedProperties).
func collectEvaluatedNames(schemaScope *ResultScope, keywordNames map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, ann := range collectAnnotations(schemaScope, keywordNames) {
		switch v := ann.(type) {
		case []string:
			for _, n := range v {
				out[n] = true
			}
		case map[string]bool:
			for n := range v {
				out[n] = true
			}
		}
	}
	return out
}

// collectEvaluatedIndices flattens collectAnnotations results for keywords
// whose annotation is a set of evaluated array indices (items, prefixItems,
// contains, unevaluatedItems).
func collectEvaluatedIndices(schemaScope *ResultScope, keywordNames map[string]bool) map[int]bool {
	out := make(map[int]bool)
	for _, ann := range collectAnnotations(schemaScope, keywordNames) {
		switch v := ann.(type) {
		case int:
			for i := 0; i <= v; i++ {
				out[i] = true
			}
		case map[int]bool:
			for i := range v {
				out[i] = true
			}
		case bool:
			if v {
				out[-1] = true // sentinel: "all indices" (items as a single schema, or unevaluatedItems itself)
			}
		}
	}
	return out
}

// dynamicScope is the stack of schema-level scopes currently being
// evaluated, used to resolve $recursiveRef/$dynamicRef at evaluation time.
// It mirrors the teacher's DynamicScope but walks outermost-to-innermost
// for anchor lookups, per jschon's RecursiveRefKeyword algorithm (the
// earliest/outermost declaring frame wins, not the nearest).
type dynamicScope struct {
	frames []*CompiledSchema
}

func newDynamicScope() *dynamicScope { return &dynamicScope{} }

func (d *dynamicScope) push(cs *CompiledSchema) { d.frames = append(d.frames, cs) }

func (d *dynamicScope) pop() {
	if len(d.frames) > 0 {
		d.frames = d.frames[:len(d.frames)-1]
	}
}

// outermostRecursive returns the outermost frame (closest to the root)
// that declares $recursiveAnchor: true, stopping the search once it
// reaches target itself (matching jschon's "break if base_schema is
// refschema" rule) — used by $recursiveRef.
func (d *dynamicScope) outermostRecursive(target *CompiledSchema) *CompiledSchema {
	for _, frame := range d.frames {
		if frame == target {
			break
		}
		if frame.RecursiveAnchor {
			return frame
		}
	}
	return target
}

// outermostDynamicAnchor returns the outermost frame declaring a
// $dynamicAnchor equal to anchor, or nil if none does — used by
// $dynamicRef.
func (d *dynamicScope) outermostDynamicAnchor(anchor string) *CompiledSchema {
	for _, frame := range d.frames {
		if frame.DynamicAnchors != nil {
			if target, ok := frame.DynamicAnchors[anchor]; ok {
				return target
			}
		}
	}
	return nil
}
