package dsl

import (
	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

// Partial drops the required list. Nested objects are left untouched.
func (o ObjectSchema) Partial() ObjectSchema {
	doc := o.st.document().Clone()
	doc.Required = nil
	return o.replace(doc)
}

// PartialDeep drops the required list here and in every property whose type
// is "object", at any depth. Combinators and references are not followed.
func (o ObjectSchema) PartialDeep() ObjectSchema {
	return o.replace(partialDeep(o.st.document()))
}

func partialDeep(s *js.Schema) *js.Schema {
	out := s.Clone()
	out.Required = nil
	if s.Properties != nil {
		props := make(map[string]*js.Schema, len(s.Properties))
		for k, p := range s.Properties {
			if p != nil && p.Type == "object" {
				p = partialDeep(p)
			}
			props[k] = p
		}
		out.Properties = props
	}
	return out
}

// Omit removes the named properties and their required entries. The result
// always declares properties, possibly none.
func (o ObjectSchema) Omit(names ...string) ObjectSchema {
	drop := nameSet(names)
	doc := o.st.document().Clone()
	props := make(map[string]*js.Schema, len(doc.Properties))
	for k, v := range doc.Properties {
		if !drop[k] {
			props[k] = v
		}
	}
	doc.Properties = props
	doc.Required = filterNames(doc.Required, func(n string) bool { return !drop[n] })
	return o.replace(doc)
}

// Pick keeps only the named properties and their required entries. Names
// that are not declared are ignored.
func (o ObjectSchema) Pick(names ...string) ObjectSchema {
	keep := nameSet(names)
	doc := o.st.document().Clone()
	if doc.Properties != nil {
		props := make(map[string]*js.Schema, len(names))
		for _, n := range names {
			if p, ok := doc.Properties[n]; ok {
				props[n] = p
			}
		}
		doc.Properties = props
	}
	doc.Required = filterNames(doc.Required, func(n string) bool { return keep[n] })
	return o.replace(doc)
}

// And intersects two objects into one. Properties of other win over
// properties of o with the same name. The required list holds other's names
// first, then the names only o requires. additionalProperties is set to
// additional; other keywords of other are not carried over.
func (o ObjectSchema) And(other ObjectSchema, additional bool) ObjectSchema {
	base := o.AdditionalProperties(additional)
	doc := base.st.document().Clone()
	od := other.st.document()

	props := copyProps(doc.Properties, len(od.Properties))
	for k, v := range od.Properties {
		props[k] = v
	}
	doc.Properties = props
	doc.Required = dedupe(append(append([]string(nil), od.Required...), doc.Required...))
	return base.replace(doc)
}

// AndShape adds every entry of props to o, in sorted name order, and sets
// additionalProperties to additional. Like And, the required list only
// grows: a required entry is appended when absent, and an optional entry
// never releases a name o already requires.
func (o ObjectSchema) AndShape(props map[string]schemez.Schema, additional bool) ObjectSchema {
	base := o.AdditionalProperties(additional)
	doc := base.st.document().Clone()
	merged := copyProps(doc.Properties, len(props))
	required := append([]string(nil), doc.Required...)
	for _, name := range sortedKeys(props) {
		s := props[name]
		merged[name] = s.Plain()
		if s.IsRequired() && !doc.HasRequired(name) {
			required = append(required, name)
		}
	}
	doc.Properties = merged
	doc.Required = dedupe(required)
	return base.replace(doc)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
