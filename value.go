package jsonschema

import (
	"fmt"
	"math/big"
	"sort"
)

// ValueNode wraps a raw decoded JSON value (nil, bool, float64,
// string, []any, map[string]any) together with a back-reference to its
// parent node and the key/index it occupies there, so that every keyword
// evaluator can report an instance location without threading a path
// string through every call. Nodes are constructed lazily as the evaluator
// descends into properties and items.
type ValueNode struct {
	Value  any
	Parent *ValueNode
	Key    any // string (object property) or int (array index); nil at root
}

// NewValueTree wraps a decoded JSON document as the root of a value tree.
func NewValueTree(v any) *ValueNode {
	return &ValueNode{Value: v}
}

// Child returns a new node for value v, reached from n via key.
func (n *ValueNode) Child(key any, value any) *ValueNode {
	return &ValueNode{Value: value, Parent: n, Key: key}
}

// Path renders the node's location from the tree root as a JSON Pointer
// string, e.g. "/items/0/name".
func (n *ValueNode) Path() string {
	if n == nil || n.Parent == nil {
		return ""
	}
	return n.Parent.Path() + "/" + escapePointerToken(fmt.Sprint(n.Key))
}

func escapePointerToken(tok string) string {
	out := make([]byte, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, tok[i])
		}
	}
	return string(out)
}

// Type returns the JSON Schema instance type of the node's value: "null",
// "boolean", "object", "array", "number", "integer", or "string".
func (n *ValueNode) Type() string {
	return dataType(n.Value)
}

// dataType sniffs a decoded JSON value's Schema instance type, treating
// integral float64 and *big.Rat values and Go integer kinds as "integer"
// in addition to "number"; any other unrecognized type counts as "number"
// (matching the "integer" type-check rule: a number with a zero fractional
// part counts as an integer).
func dataType(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		if val == float64(int64(val)) {
			return "integer"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case *big.Rat:
		if val.IsInt() {
			return "integer"
		}
		return "number"
	default:
		return "number"
	}
}

// matchesInstanceType reports whether the schema "type" keyword value t is
// satisfied by the instance type it (treating "integer" as a subset of
// "number").
func matchesInstanceType(it, t string) bool {
	if it == t {
		return true
	}
	return it == "integer" && t == "number"
}

// valuesEqual implements the JSON value model's typed-equality relation: two
// values are equal when they have the same JSON type and, recursively, equal
// content; numbers of any representational kind (float64, int, *big.Rat)
// compare by arithmetic value, and booleans never equal numbers even though
// Go's own numeric kinds might otherwise coerce.
//
// This is the canonical-comparison function behind "const", "enum",
// "uniqueItems", and "contains", grounded on the teacher's
// uniqueItems.go normalizeValue typed type-switch.
func valuesEqual(a, b any) bool {
	if isNumeric(a) && isNumeric(b) {
		return numericEqual(a, b)
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !valuesEqual(v, bvv) {
				return false
			}
		}
		return true
	}
	return false
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, *big.Rat:
		return true
	}
	return false
}

func numericEqual(a, b any) bool {
	ra, err := NewRat(a)
	if err != nil {
		return false
	}
	rb, err := NewRat(b)
	if err != nil {
		return false
	}
	return ra.Cmp(rb.Rat) == 0
}

// canonicalKey produces a stable string key for value such that
// canonicalKey(a) == canonicalKey(b) iff valuesEqual(a, b), used to bucket
// candidates for uniqueItems/contains without an O(n^2) pairwise scan.
// Object keys are sorted so property order never affects the key.
func canonicalKey(v any) string {
	switch val := v.(type) {
	case nil:
		return "n"
	case bool:
		if val {
			return "b1"
		}
		return "b0"
	case string:
		return "s" + val
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := "{"
		for i, k := range keys {
			if i > 0 {
				out += ","
			}
			out += fmt.Sprintf("%q:%s", k, canonicalKey(val[k]))
		}
		return out + "}"
	case []any:
		out := "["
		for i, e := range val {
			if i > 0 {
				out += ","
			}
			out += canonicalKey(e)
		}
		return out + "]"
	default:
		if isNumeric(v) {
			if r, err := NewRat(v); err == nil {
				return "#" + FormatRat(r)
			}
		}
		return fmt.Sprintf("?%v", v)
	}
}
