package jsonschema

// FlagOutput is the minimal output format: validity only.
type FlagOutput struct {
	Valid bool `json:"valid"`
}

// OutputUnit is one node of the basic/hierarchical/verbose output formats,
// per spec.md §4.6.
type OutputUnit struct {
	Valid            bool              `json:"valid"`
	EvaluationPath   string            `json:"evaluationPath"`
	SchemaLocation   string            `json:"schemaLocation"`
	InstanceLocation string            `json:"instanceLocation"`
	Annotations      map[string]any    `json:"annotations,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []*OutputUnit     `json:"details,omitempty"`
}

// Flag renders the result scope tree as the "flag" format: validity only.
func Flag(root *ResultScope) *FlagOutput {
	return &FlagOutput{Valid: root.State == StatePassed}
}

// Basic renders the result scope tree as a flat list: every asserting node
// that failed if the root failed, or every annotation-bearing node that
// passed if the root passed, plus the root's overall validity — per
// spec.md §4.6 ("include only passing descendants if root passes; only
// failing if root fails").
func Basic(root *ResultScope) *OutputUnit {
	out := &OutputUnit{
		Valid:            root.State == StatePassed,
		EvaluationPath:   root.EvaluationPath,
		SchemaLocation:   root.KeywordLocation,
		InstanceLocation: instanceLocation(root.Instance),
	}
	var flat []*OutputUnit
	if root.State == StatePassed {
		collectPassingAnnotations(root, &flat)
	} else {
		collectFailures(root, &flat)
	}
	out.Details = flat
	return out
}

func collectFailures(s *ResultScope, out *[]*OutputUnit) {
	for _, c := range s.Children {
		if c.State == StateFailed {
			*out = append(*out, leafUnit(c))
		}
		collectFailures(c, out)
	}
}

func collectPassingAnnotations(s *ResultScope, out *[]*OutputUnit) {
	for _, c := range s.Children {
		if c.State != StatePassed {
			continue
		}
		if c.HasAnnot {
			*out = append(*out, leafUnit(c))
		}
		collectPassingAnnotations(c, out)
	}
}

func leafUnit(s *ResultScope) *OutputUnit {
	u := &OutputUnit{
		Valid:            s.State == StatePassed,
		EvaluationPath:   s.EvaluationPath,
		SchemaLocation:   s.KeywordLocation,
		InstanceLocation: instanceLocation(s.Instance),
	}
	if s.Error != "" {
		u.Errors = map[string]string{s.Keyword: s.Error}
	}
	if s.HasAnnot {
		u.Annotations = map[string]any{s.Keyword: s.Annotation}
	}
	return u
}

// Hierarchical renders the result scope tree as a nested tree mirroring
// the schema/applicator structure, with runs of single-child scopes
// collapsed (a scope contributing no information of its own beyond
// forwarding to its one child is pruned away), per spec.md §4.6.
func Hierarchical(root *ResultScope) *OutputUnit {
	return pruneChain(toUnit(root, false))
}

func toUnit(s *ResultScope, includeDiscarded bool) *OutputUnit {
	u := &OutputUnit{
		Valid:            s.State == StatePassed || s.State == StateDiscarded,
		EvaluationPath:   s.EvaluationPath,
		SchemaLocation:   s.KeywordLocation,
		InstanceLocation: instanceLocation(s.Instance),
	}
	if s.Error != "" {
		u.Errors = map[string]string{s.Keyword: s.Error}
	}
	if s.HasAnnot {
		u.Annotations = map[string]any{s.Keyword: s.Annotation}
	}
	for _, c := range s.Children {
		if !includeDiscarded && c.State == StateDiscarded {
			continue
		}
		u.Details = append(u.Details, toUnit(c, includeDiscarded))
	}
	return u
}

func pruneChain(u *OutputUnit) *OutputUnit {
	for len(u.Details) == 1 && len(u.Errors) == 0 && len(u.Annotations) == 0 {
		child := u.Details[0]
		if child.InstanceLocation != u.InstanceLocation {
			break
		}
		u = child
	}
	for i, c := range u.Details {
		u.Details[i] = pruneChain(c)
	}
	return u
}

// Verbose renders the full, unpruned result scope tree, including
// discarded nodes and annotations from passing nodes, per spec.md §4.6.
func Verbose(root *ResultScope) *OutputUnit {
	return toUnit(root, true)
}

func instanceLocation(n *ValueNode) string {
	if n == nil {
		return ""
	}
	return n.Path()
}
