package jsonschema

// contentEncodingKeywordClass implements "contentEncoding": an annotation
// naming how a string instance is encoded (e.g. "base64"); carries no
// assertion of its own.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-contentencoding
var contentEncodingKeywordClass = &KeywordClass{
	Name:          "contentEncoding",
	InstanceTypes: []string{"string"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		scope.Pass(ck.Value)
	},
}

// contentMediaTypeKeywordClass implements "contentMediaType": decodes the
// instance per the sibling "contentEncoding" (if any) and parses it per
// the named media type, failing if either step is unsupported or errors.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-contentmediatype
var contentMediaTypeKeywordClass = &KeywordClass{
	Name:          "contentMediaType",
	InstanceTypes: []string{"string"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		s, _ := scope.Instance.Value.(string)
		_, err := decodeContent(ck.Schema, s)
		if err != nil {
			scope.Fail(err.(*contentError).code, err.Error(), nil)
			return
		}
		scope.Pass(ck.Value)
	},
}

// contentSchemaKeywordClass implements "contentSchema": the decoded,
// media-type-parsed content must validate against the given subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-contentschema
var contentSchemaKeywordClass = &KeywordClass{
	Name:          "contentSchema",
	Applicator:    true,
	InstanceTypes: []string{"string"},
	DependsOn:     []string{"contentMediaType"},
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		s, _ := scope.Instance.Value.(string)
		parsed, err := decodeContent(ck.Schema, s)
		if err != nil {
			scope.Discard() // contentMediaType already reports the decode failure
			return
		}

		branch := evaluateSchema(ck.Single, NewValueTree(parsed), scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
		branch.Parent = scope
		scope.Children = append(scope.Children, branch)

		if branch.State != StatePassed {
			scope.Fail("content_schema_mismatch", "decoded content does not match the content schema", nil)
			return
		}
		scope.Pass()
	},
}

func init() {
	contentEncodingKeywordClass.Build = buildLeaf(contentEncodingKeywordClass)
	contentMediaTypeKeywordClass.Build = buildLeaf(contentMediaTypeKeywordClass)
	contentSchemaKeywordClass.Build = buildSingleApplicator(contentSchemaKeywordClass)
}

type contentError struct {
	code string
	msg  string
}

func (e *contentError) Error() string { return e.msg }

// decodeContent decodes and parses s per cs's own "contentEncoding" and
// "contentMediaType" values, returning the parsed JSON-model value.
func decodeContent(cs *CompiledSchema, s string) (any, error) {
	raw := []byte(s)

	if enc := cs.RawString("contentEncoding"); enc != "" {
		decoder, ok := cs.Catalog.decoder(enc)
		if !ok {
			return nil, &contentError{"unsupported_encoding", "unsupported content encoding '" + enc + "'"}
		}
		decoded, err := decoder(s)
		if err != nil {
			return nil, &contentError{"invalid_encoding", "error decoding content: " + err.Error()}
		}
		raw = decoded
	}

	mt := cs.RawString("contentMediaType")
	if mt == "" {
		return raw, nil
	}
	unmarshal, ok := cs.Catalog.mediaType(mt)
	if !ok {
		return nil, &contentError{"unsupported_media_type", "unsupported content media type '" + mt + "'"}
	}
	parsed, err := unmarshal(raw)
	if err != nil {
		return nil, &contentError{"invalid_media_type", "error parsing content: " + err.Error()}
	}
	return parsed, nil
}
