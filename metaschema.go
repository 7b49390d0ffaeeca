package jsonschema

// Metaschema records which vocabularies a dialect of JSON Schema enables,
// and precomputes the union of their keyword classes — the set of keywords
// a schema compiled against this metaschema may use.
type Metaschema struct {
	URI               string
	CoreVocabularyURI string
	Vocabularies      []*Vocabulary
	Keywords          map[string]*KeywordClass
}

// NewMetaschema builds a Metaschema from a core vocabulary plus any number
// of additional (default) vocabularies, per spec.md §4.2's metaschema
// resolution step. The core vocabulary must appear in vocabularies too (it
// always contributes its keywords); coreURI simply marks which one is core,
// for MissingCoreVocabulary validation on custom metaschemas.
func NewMetaschema(uri string, coreURI string, vocabularies ...*Vocabulary) *Metaschema {
	m := &Metaschema{
		URI:               uri,
		CoreVocabularyURI: coreURI,
		Vocabularies:      vocabularies,
		Keywords:          make(map[string]*KeywordClass),
	}
	for _, v := range vocabularies {
		for name, kc := range v.Keywords {
			m.Keywords[name] = kc
		}
	}
	return m
}

// Keyword looks up a keyword class by name, or (nil, false) if this
// metaschema's vocabularies don't define it — compileValue then falls back
// to unknownKeywordClass (unknown.go), preserving the keyword as an opaque
// annotation rather than rejecting it, per §4.5.
func (m *Metaschema) Keyword(name string) (*KeywordClass, bool) {
	kc, ok := m.Keywords[name]
	return kc, ok
}
