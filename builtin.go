package jsonschema

import (
	"bytes"
	"encoding/base64"

	jsonexp "github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// Draft metaschema URIs recognized by Builtin2019/Builtin2020.
const (
	Draft2019URI = "https://json-schema.org/draft/2019-09/schema"
	Draft2020URI = "https://json-schema.org/draft/2020-12/schema"
)

// applicatorClasses lists the keyword classes common to every applicator
// vocabulary this module supports: boolean logic, conditionals, and the
// object/array in-place and subschema applicators. items/prefixItems are
// unified to the 2020-12 shape for both drafts (see SPEC_FULL.md §5).
func applicatorClasses() []*KeywordClass {
	return []*KeywordClass{
		allOfKeywordClass, anyOfKeywordClass, oneOfKeywordClass, notKeywordClass,
		ifKeywordClass, thenKeywordClass, elseKeywordClass,
		dependentSchemasKeywordClass,
		prefixItemsKeywordClass, itemsKeywordClass,
		containsKeywordClass, minContainsKeywordClass, maxContainsKeywordClass,
		propertiesKeywordClass, patternPropertiesKeywordClass, additionalPropertiesKeywordClass,
		propertyNamesKeywordClass,
	}
}

func validationClasses() []*KeywordClass {
	return []*KeywordClass{
		typeKeywordClass, enumKeywordClass, constKeywordClass,
		multipleOfKeywordClass, maximumKeywordClass, exclusiveMaximumKeywordClass,
		minimumKeywordClass, exclusiveMinimumKeywordClass,
		maxLengthKeywordClass, minLengthKeywordClass, patternKeywordClass,
		maxItemsKeywordClass, minItemsKeywordClass, uniqueItemsKeywordClass,
		maxPropertiesKeywordClass, minPropertiesKeywordClass,
		requiredKeywordClass, dependentRequiredKeywordClass,
	}
}

func formatClasses() []*KeywordClass { return []*KeywordClass{formatKeywordClass} }

func contentClasses() []*KeywordClass {
	return []*KeywordClass{contentEncodingKeywordClass, contentMediaTypeKeywordClass, contentSchemaKeywordClass}
}

func unevaluatedClasses() []*KeywordClass {
	return []*KeywordClass{unevaluatedItemsKeywordClass, unevaluatedPropertiesKeywordClass}
}

func metaDataClasses() []*KeywordClass { return []*KeywordClass{vocabularyKeywordClass, commentKeywordClass, defsKeywordClass} }

// Builtin2019 returns a catalog pre-registered with the 2019-09
// vocabularies/metaschema, built-in format validators (annotation-only
// until EnableFormat/SetAssertFormat is called, per spec.md §2.4), and
// default content codecs.
func Builtin2019() *Catalog {
	c := NewCatalog()

	core := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/core",
		append([]*KeywordClass{refKeywordClass, recursiveRefKeywordClass, anchorKeywordClass, recursiveAnchorKeywordClass}, metaDataClasses()...)...)
	applicator := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/applicator", applicatorClasses()...)
	validation := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/validation", validationClasses()...)
	format := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/format", formatClasses()...)
	content := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/content", contentClasses()...)
	unevaluated := NewVocabulary("https://json-schema.org/draft/2019-09/vocab/unevaluated", unevaluatedClasses()...)

	for _, v := range []*Vocabulary{core, applicator, validation, format, content, unevaluated} {
		c.RegisterVocabulary(v)
	}

	meta := NewMetaschema(Draft2019URI, core.URI, core, applicator, validation, format, content, unevaluated)
	if err := c.RegisterMetaschema(meta); err != nil {
		panic(err) // built-in metaschema must always declare its own core vocabulary
	}

	registerBuiltinFormats(c)
	registerBuiltinContentCodecs(c)
	return c
}

// Builtin2020 is Builtin2019's 2020-12 counterpart: $recursiveRef/
// $recursiveAnchor are replaced with $dynamicRef/$dynamicAnchor.
func Builtin2020() *Catalog {
	c := NewCatalog()

	core := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/core",
		append([]*KeywordClass{refKeywordClass, dynamicRefKeywordClass, anchorKeywordClass, dynamicAnchorKeywordClass}, metaDataClasses()...)...)
	applicator := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/applicator", applicatorClasses()...)
	validation := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/validation", validationClasses()...)
	format := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/format-annotation", formatClasses()...)
	content := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/content", contentClasses()...)
	unevaluated := NewVocabulary("https://json-schema.org/draft/2020-12/vocab/unevaluated", unevaluatedClasses()...)

	for _, v := range []*Vocabulary{core, applicator, validation, format, content, unevaluated} {
		c.RegisterVocabulary(v)
	}

	meta := NewMetaschema(Draft2020URI, core.URI, core, applicator, validation, format, content, unevaluated)
	if err := c.RegisterMetaschema(meta); err != nil {
		panic(err)
	}

	registerBuiltinFormats(c)
	registerBuiltinContentCodecs(c)
	return c
}

// registerBuiltinFormats wires formats.go's validator table into catalog c,
// leaving assertion disabled (annotation-only) per §2.4 until the caller
// opts in via EnableFormat/SetAssertFormat.
func registerBuiltinFormats(c *Catalog) {
	for name, fn := range Formats {
		c.RegisterFormat(name, fn)
	}
}

// registerBuiltinContentCodecs registers the "base64" contentEncoding and
// the "application/json"/"application/yaml" contentMediaType handlers.
// JSON decoding uses github.com/go-json-experiment/json (the same decoder
// the compiler itself uses for schema documents); YAML decoding uses
// github.com/goccy/go-yaml, letting a contentSchema validate embedded YAML
// configuration blobs the same way the compiler's Source hooks do for
// whole schema documents.
func registerBuiltinContentCodecs(c *Catalog) {
	c.RegisterDecoder("base64", func(s string) ([]byte, error) {
		return base64.StdEncoding.DecodeString(s)
	})
	c.RegisterMediaType("application/json", func(b []byte) (any, error) {
		var v any
		if err := jsonexp.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return v, nil
	})
	c.RegisterMediaType("application/yaml", func(b []byte) (any, error) {
		var v any
		if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
			return nil, err
		}
		return normalizeYAML(v), nil
	})
}

// normalizeYAML recursively converts goccy/go-yaml's decoded map[string]any
// (its default scalar-keyed maps already match JSON's, but nested mapping
// keys can come back as map[any]any in some decode paths) into the
// map[string]any / []any shape the rest of this module assumes for the
// JSON value model.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, _ := k.(string)
			out[ks] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return t
	}
}
