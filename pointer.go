package jsonschema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// Pointer is an immutable JSON Pointer (RFC 6901) token sequence.
//
// Reference: https://www.rfc-editor.org/rfc/rfc6901
type Pointer struct {
	tokens []string
}

// ParsePointer parses a string-form JSON Pointer ("" or "/a/0/b").
func ParsePointer(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return Pointer{}, ErrPointerMalformed
	}
	toks, err := jsonpointer.Parse(s)
	if err != nil {
		return Pointer{}, ErrPointerMalformed
	}
	return Pointer{tokens: toks}, nil
}

// ParsePointerFromFragment parses a URI fragment ("", "#/a/b" without the
// leading '#', or a plain-name fragment used as an anchor — the caller is
// responsible for distinguishing the two).
func ParsePointerFromFragment(fragment string) (Pointer, error) {
	decoded, err := unescapeFragment(fragment)
	if err != nil {
		return Pointer{}, err
	}
	return ParsePointer(decoded)
}

func unescapeFragment(fragment string) (string, error) {
	// URI fragments percent-encode characters that JSON Pointer tokens use
	// literally (e.g. '%' or a space), so this is a thin wrapper kept separate from
	// ParsePointer for callers working directly off a URI's Fragment().
	var sb strings.Builder
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '%' && i+2 < len(fragment) {
			b, ok := hexByte(fragment[i+1], fragment[i+2])
			if ok {
				sb.WriteByte(b)
				i += 2
				continue
			}
		}
		sb.WriteByte(fragment[i])
	}
	return sb.String(), nil
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexVal(hi)
	l, ok2 := hexVal(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Append returns a new Pointer with the given tokens appended.
func (p Pointer) Append(tokens ...string) Pointer {
	out := make([]string, 0, len(p.tokens)+len(tokens))
	out = append(out, p.tokens...)
	out = append(out, tokens...)
	return Pointer{tokens: out}
}

// Tokens returns the pointer's raw tokens.
func (p Pointer) Tokens() []string { return p.tokens }

func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range p.tokens {
		sb.WriteByte('/')
		sb.WriteString(jsonpointer.Escape(t))
	}
	return sb.String()
}

// FragmentString renders the pointer as a URI fragment, e.g. "#/a/0".
func (p Pointer) FragmentString() string {
	return "#" + p.String()
}

// Evaluate walks doc following the pointer's tokens, per RFC 6901 §4.
func (p Pointer) Evaluate(doc any) (any, error) {
	cur := doc
	for _, tok := range p.tokens {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[tok]
			if !ok {
				return nil, ErrPointerReference
			}
			cur = next
		case []any:
			if tok == "-" {
				return nil, ErrPointerReference
			}
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, ErrPointerReference
			}
			cur = v[idx]
		default:
			return nil, ErrPointerReference
		}
	}
	return cur, nil
}

// looksLikeRelativePointer reports whether s looks like a Relative JSON
// Pointer ("<non-negative integer>" optionally followed by "#" or a JSON
// Pointer), per the relative-json-pointer format draft. It is separate from
// the format-validator registry's own IsRelativeJSONPointer (formats.go),
// which the relative-json-pointer format uses; nothing in this package
// calls looksLikeRelativePointer.
func looksLikeRelativePointer(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	rest := s[i:]
	return rest == "" || rest == "#" || strings.HasPrefix(rest, "/")
}
