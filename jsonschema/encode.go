package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Map returns s as a plain JSON-like tree (map[string]any, []any and scalar
// leaves) suitable for any encoder. Extra keys are written last and win over
// typed keywords of the same name.
func (s *Schema) Map() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	out := s.typedMap()
	for k, v := range s.Extra {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the document with object keys in sorted order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (any, error) {
	return s.Map(), nil
}

func (s *Schema) typedMap() map[string]any {
	m := make(map[string]any)
	if s == nil {
		return m
	}
	putString(m, "type", s.Type)
	putString(m, "$id", s.ID)
	putString(m, "$ref", s.Ref)
	putString(m, "$schema", s.SchemaURI)
	putString(m, "title", s.Title)
	putString(m, "description", s.Description)
	if s.Examples != nil {
		m["examples"] = s.Examples
	}
	if s.Default != nil {
		m["default"] = s.Default
	}
	putSchemaMap(m, "definitions", s.Definitions)
	if s.Enum != nil {
		m["enum"] = s.Enum
	}
	if s.Const != nil {
		m["const"] = s.Const
	}
	putSchemaList(m, "oneOf", s.OneOf)
	putSchemaList(m, "anyOf", s.AnyOf)
	putSchemaList(m, "allOf", s.AllOf)
	putSchema(m, "not", s.Not)
	putSchema(m, "if", s.If)
	putSchema(m, "then", s.Then)
	putSchema(m, "else", s.Else)
	if s.Custom != nil {
		m["custom"] = stringsToAny(s.Custom)
	}

	putInt(m, "minLength", s.MinLength)
	putInt(m, "maxLength", s.MaxLength)
	putString(m, "pattern", s.Pattern)
	putString(m, "format", s.Format)
	putString(m, "formatMinimum", s.FormatMinimum)
	putString(m, "formatMaximum", s.FormatMaximum)
	putString(m, "formatExclusiveMinimum", s.FormatExclusiveMinimum)
	putString(m, "formatExclusiveMaximum", s.FormatExclusiveMaximum)
	putString(m, "contentMediaType", s.ContentMediaType)
	putString(m, "contentEncoding", s.ContentEncoding)

	putFloat(m, "minimum", s.Minimum)
	putFloat(m, "maximum", s.Maximum)
	putFloat(m, "exclusiveMinimum", s.ExclusiveMinimum)
	putFloat(m, "exclusiveMaximum", s.ExclusiveMaximum)
	putFloat(m, "multipleOf", s.MultipleOf)

	if s.Items != nil {
		if s.Items.Schema != nil {
			m["items"] = s.Items.Schema.Map()
		} else {
			m["items"] = schemaList(s.Items.Tuple)
		}
	}
	putAdditional(m, "additionalItems", s.AdditionalItems)
	putSchema(m, "contains", s.Contains)
	putInt(m, "minItems", s.MinItems)
	putInt(m, "maxItems", s.MaxItems)
	if s.UniqueItems != nil {
		m["uniqueItems"] = *s.UniqueItems
	}

	putSchemaMap(m, "properties", s.Properties)
	if len(s.Required) > 0 {
		m["required"] = stringsToAny(s.Required)
	}
	putAdditional(m, "additionalProperties", s.AdditionalProperties)
	putSchema(m, "propertyNames", s.PropertyNames)
	putInt(m, "minProperties", s.MinProperties)
	putInt(m, "maxProperties", s.MaxProperties)
	if s.Dependencies != nil {
		deps := make(map[string]any, len(s.Dependencies))
		for k, d := range s.Dependencies {
			if d.Schema != nil {
				deps[k] = d.Schema.Map()
				continue
			}
			deps[k] = stringsToAny(d.Properties)
		}
		m["dependencies"] = deps
	}
	putSchemaMap(m, "patternProperties", s.PatternProperties)
	return m
}

func putString(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}

func putInt(m map[string]any, k string, v *int) {
	if v != nil {
		m[k] = *v
	}
}

func putFloat(m map[string]any, k string, v *float64) {
	if v != nil {
		m[k] = *v
	}
}

func putSchema(m map[string]any, k string, v *Schema) {
	if v != nil {
		m[k] = v.Map()
	}
}

func putSchemaList(m map[string]any, k string, v []*Schema) {
	if v != nil {
		m[k] = schemaList(v)
	}
}

func putSchemaMap(m map[string]any, k string, v map[string]*Schema) {
	if v == nil {
		return
	}
	out := make(map[string]any, len(v))
	for name, s := range v {
		out[name] = s.Map()
	}
	m[k] = out
}

func putAdditional(m map[string]any, k string, v *Additional) {
	if v == nil {
		return
	}
	if v.Schema != nil {
		m[k] = v.Schema.Map()
		return
	}
	m[k] = v.Allowed
}

func schemaList(v []*Schema) []any {
	out := make([]any, len(v))
	for i, s := range v {
		out[i] = s.Map()
	}
	return out
}

func stringsToAny(v []string) []any {
	out := make([]any, len(v))
	for i, s := range v {
		out[i] = s
	}
	return out
}
