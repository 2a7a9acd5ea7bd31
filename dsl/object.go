package dsl

import (
	"fmt"
	"sort"

	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

// ObjectSchema is a node of type "object". Its required list is the single
// source of truth for which properties are required; it never holds
// duplicates.
type ObjectSchema struct{ Base[ObjectSchema] }

// Set stores s under name. A required s adds name to the required list; an
// optional s removes it, so Get(name) reports the flag s was set with.
func (o ObjectSchema) Set(name string, s schemez.Schema) ObjectSchema {
	doc := o.st.document()
	props := copyProps(doc.Properties, 1)
	props[name] = s.Plain()
	p := &js.Schema{Properties: props}
	switch has := doc.HasRequired(name); {
	case s.IsRequired() && !has:
		p.Required = append(append(make([]string, 0, len(doc.Required)+1), doc.Required...), name)
	case !s.IsRequired() && has:
		p.Required = filterNames(doc.Required, func(n string) bool { return n != name })
		if len(p.Required) == 0 {
			out := doc.Merge(p)
			out.Required = nil
			return o.replace(out)
		}
	}
	return o.withDoc(p)
}

// Get returns the property stored under name as a generic node. An unknown
// name yields an empty document. It fails with schemez.ErrNoProperties when
// the object declares no properties at all.
func (o ObjectSchema) Get(name string) (AnySchema, error) {
	doc := o.st.document()
	if doc.Properties == nil {
		return AnySchema{}, fmt.Errorf("%w: %q", schemez.ErrNoProperties, name)
	}
	prop := doc.Properties[name]
	if prop == nil {
		prop = &js.Schema{}
	}
	return build[AnySchema](state{
		doc:       prop,
		optional:  !doc.HasRequired(name),
		schemaURI: o.st.schemaURI,
	}), nil
}

// Properties returns the declared property names in sorted order.
func (o ObjectSchema) Properties() []string {
	return sortedKeys(o.st.document().Properties)
}

// RequiredNames returns a copy of the required list.
func (o ObjectSchema) RequiredNames() []string {
	return append([]string(nil), o.st.document().Required...)
}

// Has reports whether name is a declared property.
func (o ObjectSchema) Has(name string) bool {
	_, ok := o.st.document().Properties[name]
	return ok
}

// Required marks the object node itself as required in its parent.
func (o ObjectSchema) Required() ObjectSchema {
	t := true
	return o.with(patch{required: &t})
}

// RequiredProperties replaces the required list. Repeated names collapse to
// their first occurrence.
func (o ObjectSchema) RequiredProperties(names ...string) ObjectSchema {
	doc := o.st.document().Clone()
	doc.Required = dedupe(names)
	return o.replace(doc)
}

func (o ObjectSchema) AdditionalProperties(allowed bool) ObjectSchema {
	return o.withDoc(&js.Schema{AdditionalProperties: &js.Additional{Allowed: allowed}})
}

// AdditionalPropertiesSchema validates undeclared properties against s.
func (o ObjectSchema) AdditionalPropertiesSchema(s schemez.Schema) ObjectSchema {
	return o.withDoc(&js.Schema{AdditionalProperties: &js.Additional{Schema: s.Plain()}})
}

func (o ObjectSchema) PropertyNames(s StringSchema) ObjectSchema {
	return o.withDoc(&js.Schema{PropertyNames: s.Plain()})
}

func (o ObjectSchema) MinProperties(n int) ObjectSchema {
	return o.withDoc(&js.Schema{MinProperties: &n})
}

func (o ObjectSchema) MaxProperties(n int) ObjectSchema {
	return o.withDoc(&js.Schema{MaxProperties: &n})
}

// Dependencies sets the "dependencies" keyword. Build entries with DependsOn
// and DependsOnSchema.
func (o ObjectSchema) Dependencies(deps map[string]js.Dependency) ObjectSchema {
	out := make(map[string]js.Dependency, len(deps))
	for k, d := range deps {
		out[k] = d
	}
	return o.withDoc(&js.Schema{Dependencies: out})
}

// DependsOn is a property dependency: the listed names must be present.
func DependsOn(names ...string) js.Dependency {
	return js.Dependency{Properties: append([]string{}, names...)}
}

// DependsOnSchema is a schema dependency: the whole object must match s.
func DependsOnSchema(s schemez.Schema) js.Dependency {
	return js.Dependency{Schema: s.Plain()}
}

// PatternProperties validates properties whose name matches a key regex.
func (o ObjectSchema) PatternProperties(props map[string]schemez.Schema) ObjectSchema {
	out := make(map[string]*js.Schema, len(props))
	for k, s := range props {
		out[k] = s.Plain()
	}
	return o.withDoc(&js.Schema{PatternProperties: out})
}

func copyProps(props map[string]*js.Schema, extra int) map[string]*js.Schema {
	out := make(map[string]*js.Schema, len(props)+extra)
	for k, v := range props {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// filterNames keeps the names for which keep returns true, or nil when none.
func filterNames(names []string, keep func(string) bool) []string {
	var out []string
	for _, n := range names {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	return filterNames(names, func(n string) bool {
		if seen[n] {
			return false
		}
		seen[n] = true
		return true
	})
}
