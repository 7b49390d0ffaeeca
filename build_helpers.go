package jsonschema

import "sort"

// buildLeaf builds a non-applicator keyword's compiled form: just its raw
// JSON value, no subschema compilation.
func buildLeaf(kc *KeywordClass) func(*Compiler, *CompiledSchema, string, any) (*CompiledKeyword, error) {
	return func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		return &CompiledKeyword{Schema: cs, Name: name, Class: kc, Value: raw, Location: cs.Pointer + "/" + name}, nil
	}
}

// buildSingleApplicator compiles raw as one subschema, inheriting cs's base
// URI/metaschema.
func buildSingleApplicator(kc *KeywordClass) func(*Compiler, *CompiledSchema, string, any) (*CompiledKeyword, error) {
	return func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		sub, err := c.compileValue(raw, cs, nil, cs.Pointer+"/"+name, "", "")
		if err != nil {
			return nil, err
		}
		ck := &CompiledKeyword{Schema: cs, Name: name, Class: kc, Value: raw, Single: sub, Location: cs.Pointer + "/" + name}
		sub.ParentKeyword = ck
		return ck, nil
	}
}

// buildListApplicator compiles raw (must be a JSON array) into an
// index-ordered list of subschemas (allOf/anyOf/oneOf/prefixItems).
func buildListApplicator(kc *KeywordClass) func(*Compiler, *CompiledSchema, string, any) (*CompiledKeyword, error) {
	return func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		arr, ok := raw.([]any)
		if !ok {
			return nil, ErrInvalidSchema
		}
		ck := &CompiledKeyword{Schema: cs, Name: name, Class: kc, Value: raw, Location: cs.Pointer + "/" + name}
		for i, item := range arr {
			sub, err := c.compileValue(item, cs, ck, indexPointer(cs.Pointer+"/"+name, i), "", "")
			if err != nil {
				return nil, err
			}
			ck.List = append(ck.List, sub)
		}
		return ck, nil
	}
}

// buildMapApplicator compiles raw (must be a JSON object) into a
// name-keyed map of subschemas (properties/patternProperties/
// dependentSchemas/$defs), with Keys recording a deterministic (sorted)
// iteration order.
func buildMapApplicator(kc *KeywordClass) func(*Compiler, *CompiledSchema, string, any) (*CompiledKeyword, error) {
	return func(c *Compiler, cs *CompiledSchema, name string, raw any) (*CompiledKeyword, error) {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidSchema
		}
		ck := &CompiledKeyword{Schema: cs, Name: name, Class: kc, Value: raw, Map: make(map[string]*CompiledSchema, len(obj)), Location: cs.Pointer + "/" + name}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sub, err := c.compileValue(obj[k], cs, ck, cs.Pointer+"/"+name+"/"+escapePointerToken(k), "", "")
			if err != nil {
				return nil, err
			}
			ck.Map[k] = sub
			ck.Keys = append(ck.Keys, k)
		}
		return ck, nil
	}
}

func indexPointer(base string, i int) string {
	return base + "/" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
