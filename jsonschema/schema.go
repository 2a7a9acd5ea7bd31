package jsonschema

// Draft07 is the meta-schema URI emitted as "$schema" by default.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Schema is a draft-07 JSON Schema document. Well-known keywords have
// dedicated fields; anything else (vendor extensions, raw fragments) lives in
// Extra. A keyword is present when its string field is non-empty or its
// pointer, slice, map or any field is non-nil.
//
// Values reachable from a published Schema are shared between documents and
// must be treated as read-only; use Clone and Merge to derive new documents.
type Schema struct {
	// Core
	Type        string
	ID          string // $id
	Ref         string // $ref
	SchemaURI   string // $schema
	Title       string
	Description string
	Examples    []any
	Default     any
	Definitions map[string]*Schema
	Enum        []any
	Const       any
	OneOf       []*Schema
	AnyOf       []*Schema
	AllOf       []*Schema
	Not         *Schema
	If          *Schema
	Then        *Schema
	Else        *Schema
	Custom      []string

	// String
	MinLength              *int
	MaxLength              *int
	Pattern                string
	Format                 string
	FormatMinimum          string
	FormatMaximum          string
	FormatExclusiveMinimum string
	FormatExclusiveMaximum string
	ContentMediaType       string
	ContentEncoding        string

	// Numeric
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	// Array
	Items           *Items
	AdditionalItems *Additional
	Contains        *Schema
	MinItems        *int
	MaxItems        *int
	UniqueItems     *bool

	// Object
	Properties           map[string]*Schema
	Required             []string
	AdditionalProperties *Additional
	PropertyNames        *Schema
	MinProperties        *int
	MaxProperties        *int
	Dependencies         map[string]Dependency
	PatternProperties    map[string]*Schema

	// Extra holds keywords without a dedicated field.
	Extra map[string]any
}

// Items is the value of the "items" keyword: either one schema applied to
// every element or a tuple of positional schemas.
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

// Additional is the value of "additionalProperties" and "additionalItems":
// a schema when Schema is set, otherwise the boolean Allowed.
type Additional struct {
	Allowed bool
	Schema  *Schema
}

// Dependency is one entry of the "dependencies" keyword: a list of property
// names that must be present, or a schema the whole instance must satisfy.
type Dependency struct {
	Properties []string
	Schema     *Schema
}

// Clone returns a shallow copy of s. Nested values are shared.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return &Schema{}
	}
	out := *s
	return &out
}

// Merge returns a new document where every keyword present in patch replaces
// the same keyword of s. Keywords absent from patch are kept as they are; a
// nested value is replaced as a whole, never merged. Extra keys merge one by
// one, and a typed keyword set by patch evicts a stale Extra entry of the same
// name. Neither s nor patch is modified.
func (s *Schema) Merge(patch *Schema) *Schema {
	out := s.Clone()
	if patch == nil {
		return out
	}
	p := patch

	// core
	if p.Type != "" {
		out.Type = p.Type
	}
	if p.ID != "" {
		out.ID = p.ID
	}
	if p.Ref != "" {
		out.Ref = p.Ref
	}
	if p.SchemaURI != "" {
		out.SchemaURI = p.SchemaURI
	}
	if p.Title != "" {
		out.Title = p.Title
	}
	if p.Description != "" {
		out.Description = p.Description
	}
	if p.Examples != nil {
		out.Examples = p.Examples
	}
	if p.Default != nil {
		out.Default = p.Default
	}
	if p.Definitions != nil {
		out.Definitions = p.Definitions
	}
	if p.Enum != nil {
		out.Enum = p.Enum
	}
	if p.Const != nil {
		out.Const = p.Const
	}
	if p.OneOf != nil {
		out.OneOf = p.OneOf
	}
	if p.AnyOf != nil {
		out.AnyOf = p.AnyOf
	}
	if p.AllOf != nil {
		out.AllOf = p.AllOf
	}
	if p.Not != nil {
		out.Not = p.Not
	}
	if p.If != nil {
		out.If = p.If
	}
	if p.Then != nil {
		out.Then = p.Then
	}
	if p.Else != nil {
		out.Else = p.Else
	}
	if p.Custom != nil {
		out.Custom = p.Custom
	}

	// string
	if p.MinLength != nil {
		out.MinLength = p.MinLength
	}
	if p.MaxLength != nil {
		out.MaxLength = p.MaxLength
	}
	if p.Pattern != "" {
		out.Pattern = p.Pattern
	}
	if p.Format != "" {
		out.Format = p.Format
	}
	if p.FormatMinimum != "" {
		out.FormatMinimum = p.FormatMinimum
	}
	if p.FormatMaximum != "" {
		out.FormatMaximum = p.FormatMaximum
	}
	if p.FormatExclusiveMinimum != "" {
		out.FormatExclusiveMinimum = p.FormatExclusiveMinimum
	}
	if p.FormatExclusiveMaximum != "" {
		out.FormatExclusiveMaximum = p.FormatExclusiveMaximum
	}
	if p.ContentMediaType != "" {
		out.ContentMediaType = p.ContentMediaType
	}
	if p.ContentEncoding != "" {
		out.ContentEncoding = p.ContentEncoding
	}

	// numeric
	if p.Minimum != nil {
		out.Minimum = p.Minimum
	}
	if p.Maximum != nil {
		out.Maximum = p.Maximum
	}
	if p.ExclusiveMinimum != nil {
		out.ExclusiveMinimum = p.ExclusiveMinimum
	}
	if p.ExclusiveMaximum != nil {
		out.ExclusiveMaximum = p.ExclusiveMaximum
	}
	if p.MultipleOf != nil {
		out.MultipleOf = p.MultipleOf
	}

	// array
	if p.Items != nil {
		out.Items = p.Items
	}
	if p.AdditionalItems != nil {
		out.AdditionalItems = p.AdditionalItems
	}
	if p.Contains != nil {
		out.Contains = p.Contains
	}
	if p.MinItems != nil {
		out.MinItems = p.MinItems
	}
	if p.MaxItems != nil {
		out.MaxItems = p.MaxItems
	}
	if p.UniqueItems != nil {
		out.UniqueItems = p.UniqueItems
	}

	// object
	if p.Properties != nil {
		out.Properties = p.Properties
	}
	if p.Required != nil {
		out.Required = p.Required
	}
	if p.AdditionalProperties != nil {
		out.AdditionalProperties = p.AdditionalProperties
	}
	if p.PropertyNames != nil {
		out.PropertyNames = p.PropertyNames
	}
	if p.MinProperties != nil {
		out.MinProperties = p.MinProperties
	}
	if p.MaxProperties != nil {
		out.MaxProperties = p.MaxProperties
	}
	if p.Dependencies != nil {
		out.Dependencies = p.Dependencies
	}
	if p.PatternProperties != nil {
		out.PatternProperties = p.PatternProperties
	}

	if len(s.Extra) > 0 || len(p.Extra) > 0 {
		extra := make(map[string]any, len(s.Extra)+len(p.Extra))
		for k, v := range s.Extra {
			extra[k] = v
		}
		for k := range p.typedMap() {
			delete(extra, k)
		}
		for k, v := range p.Extra {
			extra[k] = v
		}
		out.Extra = nil
		if len(extra) > 0 {
			out.Extra = extra
		}
	}
	return out
}

// HasRequired reports whether name is listed in the "required" keyword.
func (s *Schema) HasRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
