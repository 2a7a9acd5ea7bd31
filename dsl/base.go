package dsl

import (
	json "github.com/goccy/go-json"

	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

// state is the bookkeeping carried by every node. It is never mutated after
// construction; each fluent call derives a new one.
type state struct {
	doc         *js.Schema
	optional    bool
	schemaURI   string
	definitions map[string]*js.Schema
}

// patch describes one copy-with step. A nil field leaves the node unchanged.
type patch struct {
	doc         *js.Schema
	required    *bool
	schemaURI   *string
	definitions map[string]*js.Schema
}

func (st state) document() *js.Schema {
	if st.doc == nil {
		return &js.Schema{}
	}
	return st.doc
}

func (st state) apply(p patch) state {
	out := st
	if p.doc != nil {
		out.doc = st.document().Merge(p.doc)
	}
	if p.required != nil {
		out.optional = !*p.required
	}
	if p.schemaURI != nil {
		out.schemaURI = *p.schemaURI
	}
	if p.definitions != nil {
		out.definitions = p.definitions
	}
	return out
}

type stateSetter interface{ setState(state) }

// build materializes a node of kind S around st.
func build[S any](st state) S {
	var out S
	any(&out).(stateSetter).setState(st)
	return out
}

// Base holds the keywords shared by every node kind. S is the concrete node
// type, so that each method returns the caller's kind and chains keep their
// kind-specific methods.
type Base[S any] struct {
	st state
}

func (b *Base[S]) setState(st state) { b.st = st }

func (b Base[S]) with(p patch) S { return build[S](b.st.apply(p)) }

func (b Base[S]) withDoc(doc *js.Schema) S { return b.with(patch{doc: doc}) }

// replace swaps the whole document, for operations that remove keywords.
func (b Base[S]) replace(doc *js.Schema) S {
	st := b.st
	st.doc = doc
	return build[S](st)
}

// Plain returns the node's own document without $schema and definitions.
// The result is shared and must not be modified.
func (b Base[S]) Plain() *js.Schema { return b.st.document() }

// IsRequired reports whether the node belongs in a parent's required list.
func (b Base[S]) IsRequired() bool { return !b.st.optional }

// ValueOf exports the document with $schema and definitions attached.
func (b Base[S]) ValueOf() *js.Schema {
	out := b.st.document().Clone()
	if b.st.schemaURI != "" {
		out.SchemaURI = b.st.schemaURI
	}
	if len(b.st.definitions) > 0 {
		out.Definitions = b.st.definitions
	}
	return out
}

// Optional marks the node as not required in its parent object.
func (b Base[S]) Optional() S {
	f := false
	return b.with(patch{required: &f})
}

func (b Base[S]) ID(id string) S { return b.withDoc(&js.Schema{ID: id}) }

func (b Base[S]) Ref(ref string) S { return b.withDoc(&js.Schema{Ref: ref}) }

// Schema sets the $schema URI written by ValueOf. An empty uri drops it.
func (b Base[S]) Schema(uri string) S { return b.with(patch{schemaURI: &uri}) }

func (b Base[S]) Title(title string) S { return b.withDoc(&js.Schema{Title: title}) }

func (b Base[S]) Description(text string) S {
	return b.withDoc(&js.Schema{Description: text})
}

// DescriptionObject stores obj as a JSON encoded description. Unless overwrite
// is set, keys of a JSON object already stored as description are kept and
// obj's keys win on conflict.
func (b Base[S]) DescriptionObject(obj map[string]any, overwrite bool) S {
	merged := make(map[string]any, len(obj))
	if !overwrite {
		var prev map[string]any
		if err := json.Unmarshal([]byte(b.st.document().Description), &prev); err == nil {
			for k, v := range prev {
				merged[k] = v
			}
		}
	}
	for k, v := range obj {
		merged[k] = v
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		// unencodable values: keep the node as it is
		return build[S](b.st)
	}
	return b.withDoc(&js.Schema{Description: string(raw)})
}

func (b Base[S]) Examples(values ...any) S {
	return b.withDoc(&js.Schema{Examples: append([]any{}, values...)})
}

// Default sets the "default" keyword. A nil value is written as JSON null.
func (b Base[S]) Default(v any) S {
	if v == nil {
		doc := b.null("default")
		doc.Default = nil
		return b.replace(doc)
	}
	return b.withDoc(&js.Schema{Default: v})
}

func (b Base[S]) Enum(values ...any) S {
	return b.withDoc(&js.Schema{Enum: append([]any{}, values...)})
}

// Const sets the "const" keyword. A nil value is written as JSON null.
func (b Base[S]) Const(v any) S {
	if v == nil {
		doc := b.null("const")
		doc.Const = nil
		return b.replace(doc)
	}
	return b.withDoc(&js.Schema{Const: v})
}

// null returns the document with keyword set to JSON null, which has no
// typed form.
func (b Base[S]) null(keyword string) *js.Schema {
	return b.st.document().Merge(&js.Schema{Extra: map[string]any{keyword: nil}})
}

func (b Base[S]) AnyOf(schemas ...schemez.Schema) S {
	return b.withDoc(&js.Schema{AnyOf: plains(schemas)})
}

func (b Base[S]) AllOf(schemas ...schemez.Schema) S {
	return b.withDoc(&js.Schema{AllOf: plains(schemas)})
}

func (b Base[S]) OneOf(schemas ...schemez.Schema) S {
	return b.withDoc(&js.Schema{OneOf: plains(schemas)})
}

func (b Base[S]) Not(s schemez.Schema) S { return b.withDoc(&js.Schema{Not: s.Plain()}) }

func (b Base[S]) IfThen(cond, then schemez.Schema) S {
	return b.withDoc(&js.Schema{If: cond.Plain(), Then: then.Plain()})
}

func (b Base[S]) IfThenElse(cond, then, otherwise schemez.Schema) S {
	return b.withDoc(&js.Schema{If: cond.Plain(), Then: then.Plain(), Else: otherwise.Plain()})
}

// Custom sets the non-standard "custom" keyword.
func (b Base[S]) Custom(values ...string) S {
	return b.withDoc(&js.Schema{Custom: append([]string{}, values...)})
}

// Definition registers s under name in the definitions exported by ValueOf.
// Reference it with Ref("#/definitions/" + name).
func (b Base[S]) Definition(name string, s schemez.Schema) S {
	defs := make(map[string]*js.Schema, len(b.st.definitions)+1)
	for k, v := range b.st.definitions {
		defs[k] = v
	}
	defs[name] = s.Plain()
	return b.with(patch{definitions: defs})
}

// Raw merges an arbitrary fragment into the document. Known keywords with a
// value of the wrong JSON type are kept verbatim. Raw can overwrite any
// keyword, including type and properties.
func (b Base[S]) Raw(fragment map[string]any) S {
	return b.withDoc(js.Fragment(fragment))
}

func plains(schemas []schemez.Schema) []*js.Schema {
	out := make([]*js.Schema, len(schemas))
	for i, s := range schemas {
		out[i] = s.Plain()
	}
	return out
}
