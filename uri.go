package jsonschema

import (
	"net/url"
	"strings"
)

// URI is an RFC 3986 URI reference, used throughout the catalog and compiler
// to identify schema resources, vocabularies, and metaschemas.
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986
type URI struct {
	u *url.URL
}

// ParseURI parses s as a URI reference (absolute or relative).
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, ErrUriMalformed
	}
	return URI{u: u}, nil
}

// MustParseURI is ParseURI but panics on error; used for built-in constants.
func MustParseURI(s string) URI {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URI) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

// IsZero reports whether u was never assigned.
func (u URI) IsZero() bool { return u.u == nil }

// IsAbsolute reports whether u has a scheme and no fragment, per the
// catalog's "normalized, absolute URI without a fragment" requirement for
// source prefixes and $id values.
func (u URI) IsAbsolute() bool {
	return u.u != nil && u.u.Scheme != "" && u.u.Fragment == ""
}

// HasScheme reports whether u has a non-empty scheme, ignoring fragment.
func (u URI) HasScheme() bool { return u.u != nil && u.u.Scheme != "" }

// Fragment returns the URI's fragment component, without the leading '#'.
func (u URI) Fragment() string {
	if u.u == nil {
		return ""
	}
	return u.u.Fragment
}

// Path returns the URI's path component.
func (u URI) Path() string {
	if u.u == nil {
		return ""
	}
	return u.u.Path
}

// WithFragment returns a copy of u with its fragment replaced.
func (u URI) WithFragment(fragment string) URI {
	cp := *u.u
	cp.Fragment = fragment
	cp.RawFragment = ""
	return URI{u: &cp}
}

// WithoutFragment returns a copy of u with its fragment removed, i.e. the
// URI's base resource identity.
func (u URI) WithoutFragment() URI {
	return u.WithFragment("")
}

// Resolve resolves ref (absolute or relative) against u as a base URI, per
// RFC 3986 §5.
func (u URI) Resolve(ref string) (URI, error) {
	relURI, err := url.Parse(ref)
	if err != nil {
		return URI{}, ErrUriMalformed
	}
	if u.u == nil {
		if relURI.IsAbs() {
			return URI{u: relURI}, nil
		}
		return URI{}, ErrNoBaseURI
	}
	return URI{u: u.u.ResolveReference(relURI)}, nil
}

// EndsWithSlash reports whether the URI's path ends with '/', required of
// registered catalog source prefixes.
func (u URI) EndsWithSlash() bool {
	return u.u != nil && strings.HasSuffix(u.u.Path, "/")
}

// Equal compares two URIs by their String() forms; no further
// normalization (such as case folding) is applied.
func (u URI) Equal(other URI) bool {
	return u.String() == other.String()
}
