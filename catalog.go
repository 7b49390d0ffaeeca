package jsonschema

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

func newSessionID() string { return uuid.NewString() }

// defaultSession is the cache partition used when callers don't specify a
// session id.
const defaultSession = "default"

// metaSession is the partition shared across every session, used for
// metaschemas and other catalog-wide schema resources, per spec.md §4.1.
const metaSession = "__meta__"

// Source loads the raw JSON (or YAML, already decoded) document identified
// by uri — the catalog's only collaborator-supplied extension point for
// resolving a URI into schema content. Registered per URI prefix via
// Catalog.RegisterSource; network/file loading is left to the caller
// (spec.md Non-goals: no built-in HTTP/file loaders).
type Source func(uri string) (any, error)

type sourceEntry struct {
	prefix string
	load   Source
}

// FormatValidator checks an instance value against a "format" attribute,
// returning false if it is invalid.
type FormatValidator func(v any) bool

// ContentDecoder decodes a contentEncoding-encoded string into raw bytes.
type ContentDecoder func(s string) ([]byte, error)

// ContentUnmarshaler parses decoded bytes per a contentMediaType into a
// JSON-model value ready for contentSchema evaluation.
type ContentUnmarshaler func(b []byte) (any, error)

// Catalog is the process-wide registry of vocabularies, metaschemas,
// sources, and format validators, plus the session-partitioned compiled
// schema cache, per spec.md §4.1.
type Catalog struct {
	mu sync.RWMutex

	vocabularies map[string]*Vocabulary
	metaschemas  map[string]*Metaschema
	sources      []sourceEntry
	formats      map[string]FormatValidator
	enabledFmts  map[string]bool
	assertFormat bool

	decoders    map[string]ContentDecoder
	mediaTypes  map[string]ContentUnmarshaler

	cache          map[string]map[string]*CompiledSchema // session -> uri -> schema
	activeSessions map[string]bool
}

// NewCatalog creates an empty catalog. Callers typically follow this with
// RegisterVocabulary/RegisterMetaschema calls for the drafts they need; see
// Builtin2019() / Builtin2020() for ready-made 2019-09/2020-12 setups.
func NewCatalog() *Catalog {
	return &Catalog{
		vocabularies:   make(map[string]*Vocabulary),
		metaschemas:    make(map[string]*Metaschema),
		formats:        make(map[string]FormatValidator),
		enabledFmts:    make(map[string]bool),
		decoders:       make(map[string]ContentDecoder),
		mediaTypes:     make(map[string]ContentUnmarshaler),
		cache:          map[string]map[string]*CompiledSchema{defaultSession: {}},
		activeSessions: map[string]bool{defaultSession: true},
	}
}

// RegisterVocabulary makes a vocabulary available to metaschemas by URI.
func (c *Catalog) RegisterVocabulary(v *Vocabulary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vocabularies[v.URI] = v
}

// Vocabulary looks up a registered vocabulary.
func (c *Catalog) Vocabulary(uri string) (*Vocabulary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vocabularies[uri]
	if !ok {
		return nil, ErrUnknownVocabulary
	}
	return v, nil
}

// RegisterMetaschema registers a metaschema (validated to declare its own
// core vocabulary, per spec.md §4.2's MissingCoreVocabulary error).
func (c *Catalog) RegisterMetaschema(m *Metaschema) error {
	found := false
	for _, v := range m.Vocabularies {
		if v.URI == m.CoreVocabularyURI {
			found = true
			break
		}
	}
	if !found {
		return ErrMissingCoreVocabulary
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metaschemas[m.URI] = m
	return nil
}

// Metaschema looks up a registered metaschema by URI.
func (c *Catalog) Metaschema(uri string) (*Metaschema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.metaschemas[uri]
	return m, ok
}

// RegisterSource registers a Source for every URI beginning with prefix.
// prefix must be a normalized absolute URI without a fragment, ending in
// '/', per spec.md §4.1.
func (c *Catalog) RegisterSource(prefix string, load Source) error {
	u, err := ParseURI(prefix)
	if err != nil || !u.IsAbsolute() || !u.EndsWithSlash() {
		return ErrInvalidSource
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, sourceEntry{prefix: prefix, load: load})
	sort.SliceStable(c.sources, func(i, j int) bool {
		return len(c.sources[i].prefix) > len(c.sources[j].prefix)
	})
	return nil
}

// RegisterFormat registers a format validator, without enabling assertion
// for it (§2.4's "each must be enabled explicitly" rule).
func (c *Catalog) RegisterFormat(name string, fn FormatValidator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formats[name] = fn
}

// EnableFormat turns on assertion (rather than annotation-only behavior)
// for a registered format attribute.
func (c *Catalog) EnableFormat(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.formats[name]; !ok {
		return ErrUnknownFormat
	}
	c.enabledFmts[name] = true
	return nil
}

// SetAssertFormat globally enables/disables format assertion for every
// registered format validator at once.
func (c *Catalog) SetAssertFormat(assert bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assertFormat = assert
}

// RegisterDecoder registers a contentEncoding decoder by name (e.g. "base64").
func (c *Catalog) RegisterDecoder(name string, fn ContentDecoder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[name] = fn
}

// RegisterMediaType registers a contentMediaType unmarshaler by MIME type
// (e.g. "application/json", "application/yaml").
func (c *Catalog) RegisterMediaType(name string, fn ContentUnmarshaler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mediaTypes[name] = fn
}

func (c *Catalog) decoder(name string) (ContentDecoder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.decoders[name]
	return fn, ok
}

func (c *Catalog) mediaType(name string) (ContentUnmarshaler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.mediaTypes[name]
	return fn, ok
}

func (c *Catalog) formatValidator(name string) (FormatValidator, bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.formats[name]
	assertive := c.assertFormat || c.enabledFmts[name]
	return fn, ok, assertive
}

// AddSchema adds a compiled (sub)schema to a session's cache partition.
func (c *Catalog) AddSchema(session, uri string, cs *CompiledSchema) {
	if session == "" {
		session = defaultSession
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache[session] == nil {
		c.cache[session] = make(map[string]*CompiledSchema)
	}
	c.cache[session][uri] = cs
}

// RemoveSchema removes a (sub)schema from a session's cache partition.
func (c *Catalog) RemoveSchema(session, uri string) {
	if session == "" {
		session = defaultSession
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache[session], uri)
}

// GetSchema resolves uri to a compiled schema, following spec.md §4.1's
// four-step algorithm: (1) check the session partition, then the shared
// __meta__ partition, for an exact match; (2) if uri carries a fragment,
// retry both partitions against the fragment-less base URI; (3) if still
// unresolved, load the base URI's document via a registered Source,
// compile it, and cache it; (4) if the original URI had a fragment,
// evaluate it as a JSON Pointer against the newly compiled schema.
func (c *Catalog) GetSchema(uri, session string) (*CompiledSchema, error) {
	if session == "" {
		session = defaultSession
	}
	tryPartitions := []string{metaSession}
	if session != metaSession {
		tryPartitions = []string{session, metaSession}
	}

	u, err := ParseURI(uri)
	if err != nil {
		return nil, ErrUriMalformed
	}

	c.mu.RLock()
	for _, p := range tryPartitions {
		if cs, ok := c.cache[p][uri]; ok {
			c.mu.RUnlock()
			return cs, nil
		}
	}
	c.mu.RUnlock()

	baseURI := u.WithoutFragment().String()
	var base *CompiledSchema

	if u.Fragment() != "" {
		c.mu.RLock()
		for _, p := range tryPartitions {
			if cs, ok := c.cache[p][baseURI]; ok {
				base = cs
				break
			}
		}
		c.mu.RUnlock()
	}

	if base == nil {
		doc, err := c.load(baseURI)
		if err != nil {
			return nil, err
		}
		compiler := NewCompiler(c)
		compiler.session = session
		base, err = compiler.compileDocument(doc, baseURI, "")
		if err != nil {
			return nil, err
		}
		c.AddSchema(session, baseURI, base)
	}

	schema := base
	if frag := u.Fragment(); frag != "" {
		if len(frag) > 0 && frag[0] != '/' {
			// Plain-name fragment: an anchor, not a JSON Pointer.
			anchored, ok := base.Anchors[frag]
			if !ok {
				return nil, ErrUnknownUri
			}
			schema = anchored
		} else {
			ptr, err := ParsePointer(frag)
			if err != nil {
				return nil, ErrPointerMalformed
			}
			found, err := resolveSchemaPointer(base, ptr)
			if err != nil {
				return nil, err
			}
			schema = found
		}
	}

	return schema, nil
}

func (c *Catalog) load(baseURI string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.sources {
		if len(baseURI) >= len(s.prefix) && baseURI[:len(s.prefix)] == s.prefix {
			return s.load(baseURI)
		}
	}
	return nil, ErrUnknownUri
}

// Session is a handle on a partitioned region of the catalog's schema
// cache, dropped in its entirety on Close.
type Session struct {
	id      string
	catalog *Catalog
}

// EnterSession opens a new session partition, defaulting to a
// catalog-generated id via google/uuid if id is empty. Returns
// ErrSessionInUse if id is already active.
func (c *Catalog) EnterSession(id string) (*Session, error) {
	if id == "" {
		id = newSessionID()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeSessions[id] {
		return nil, ErrSessionInUse
	}
	c.activeSessions[id] = true
	if c.cache[id] == nil {
		c.cache[id] = make(map[string]*CompiledSchema)
	}
	return &Session{id: id, catalog: c}, nil
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// Close drops the session's cache partition, making the id reusable.
func (s *Session) Close() {
	s.catalog.mu.Lock()
	defer s.catalog.mu.Unlock()
	delete(s.catalog.cache, s.id)
	delete(s.catalog.activeSessions, s.id)
}

// resolveSchemaPointer walks a JSON Pointer against a compiled schema
// resource, understanding the three applicator shapes a compiled keyword
// may take (single subschema, index-list, or name-map) so that e.g.
// "/properties/foo/items" resolves through the compiled structure rather
// than the raw JSON document.
func resolveSchemaPointer(root *CompiledSchema, ptr Pointer) (*CompiledSchema, error) {
	toks := ptr.Tokens()
	cur := root
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		ck, ok := cur.Keywords[tok]
		if !ok {
			return nil, ErrPointerReference
		}
		switch {
		case ck.Single != nil:
			cur = ck.Single
		case ck.List != nil:
			i++
			if i >= len(toks) {
				return nil, ErrPointerReference
			}
			idx, err := parsePointerIndex(toks[i])
			if err != nil || idx < 0 || idx >= len(ck.List) {
				return nil, ErrPointerReference
			}
			cur = ck.List[idx]
		case ck.Map != nil:
			i++
			if i >= len(toks) {
				return nil, ErrPointerReference
			}
			sub, ok := ck.Map[toks[i]]
			if !ok {
				return nil, ErrPointerReference
			}
			cur = sub
		default:
			return nil, ErrPointerReference
		}
	}
	return cur, nil
}

func parsePointerIndex(tok string) (int, error) {
	n := 0
	if tok == "" {
		return 0, ErrPointerReference
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, ErrPointerReference
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
