package jsonschema

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromMap decodes a JSON-like tree into a Schema. Keywords with a dedicated
// field must carry a value of the right JSON type; unknown keywords are kept
// in Extra. Boolean sub-schemas decode to {} (true) and {"not":{}} (false).
func FromMap(m map[string]any) (*Schema, error) {
	d := decoder{strict: true}
	return d.object(m, "")
}

// Fragment decodes m like FromMap but never fails: a known keyword whose
// value does not fit its field is kept verbatim in Extra, so encoding the
// result reproduces the fragment.
func Fragment(m map[string]any) *Schema {
	d := decoder{}
	s, _ := d.object(m, "")
	return s
}

// UnmarshalJSON implements json.Unmarshaler using FromMap.
func (s *Schema) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("jsonschema: decode: %w", err)
	}
	out, err := FromMap(m)
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler using FromMap.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("jsonschema: decode yaml: %w", err)
	}
	m, ok := normalizeYAML(raw).(map[string]any)
	if !ok {
		return fmt.Errorf("jsonschema: decode yaml: expected mapping, got %T", raw)
	}
	out, err := FromMap(m)
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

type decoder struct {
	strict bool
}

func (d decoder) object(m map[string]any, path string) (*Schema, error) {
	s := &Schema{}
	for k, v := range m {
		if err := d.keyword(s, k, v, path+"/"+k); err != nil {
			if d.strict {
				return nil, err
			}
			if s.Extra == nil {
				s.Extra = map[string]any{}
			}
			s.Extra[k] = v
		}
	}
	return s, nil
}

func (d decoder) keyword(s *Schema, k string, v any, path string) error {
	var err error
	switch k {
	case "type":
		if t, ok := v.(string); ok {
			s.Type = t
			return nil
		}
		// type unions ("type": ["string","null"]) have no typed field
		d.extra(s, k, v)
	case "$id":
		s.ID, err = str(v, path)
	case "$ref":
		s.Ref, err = str(v, path)
	case "$schema":
		s.SchemaURI, err = str(v, path)
	case "title":
		s.Title, err = str(v, path)
	case "description":
		s.Description, err = str(v, path)
	case "examples":
		s.Examples, err = list(v, path)
	case "enum":
		s.Enum, err = list(v, path)
	case "default":
		if v == nil {
			d.extra(s, k, v)
			return nil
		}
		s.Default = v
	case "const":
		if v == nil {
			d.extra(s, k, v)
			return nil
		}
		s.Const = v
	case "definitions":
		s.Definitions, err = d.schemaMap(v, path)
	case "properties":
		s.Properties, err = d.schemaMap(v, path)
	case "patternProperties":
		s.PatternProperties, err = d.schemaMap(v, path)
	case "oneOf":
		s.OneOf, err = d.schemaList(v, path)
	case "anyOf":
		s.AnyOf, err = d.schemaList(v, path)
	case "allOf":
		s.AllOf, err = d.schemaList(v, path)
	case "not":
		s.Not, err = d.schema(v, path)
	case "if":
		s.If, err = d.schema(v, path)
	case "then":
		s.Then, err = d.schema(v, path)
	case "else":
		s.Else, err = d.schema(v, path)
	case "contains":
		s.Contains, err = d.schema(v, path)
	case "propertyNames":
		s.PropertyNames, err = d.schema(v, path)
	case "custom":
		s.Custom, err = strs(v, path)
	case "required":
		s.Required, err = strs(v, path)
	case "minLength":
		s.MinLength, err = intPtr(v, path)
	case "maxLength":
		s.MaxLength, err = intPtr(v, path)
	case "minItems":
		s.MinItems, err = intPtr(v, path)
	case "maxItems":
		s.MaxItems, err = intPtr(v, path)
	case "minProperties":
		s.MinProperties, err = intPtr(v, path)
	case "maxProperties":
		s.MaxProperties, err = intPtr(v, path)
	case "pattern":
		s.Pattern, err = str(v, path)
	case "format":
		s.Format, err = str(v, path)
	case "formatMinimum":
		s.FormatMinimum, err = str(v, path)
	case "formatMaximum":
		s.FormatMaximum, err = str(v, path)
	case "formatExclusiveMinimum":
		s.FormatExclusiveMinimum, err = str(v, path)
	case "formatExclusiveMaximum":
		s.FormatExclusiveMaximum, err = str(v, path)
	case "contentMediaType":
		s.ContentMediaType, err = str(v, path)
	case "contentEncoding":
		s.ContentEncoding, err = str(v, path)
	case "minimum":
		s.Minimum, err = floatPtr(v, path)
	case "maximum":
		s.Maximum, err = floatPtr(v, path)
	case "exclusiveMinimum":
		s.ExclusiveMinimum, err = floatPtr(v, path)
	case "exclusiveMaximum":
		s.ExclusiveMaximum, err = floatPtr(v, path)
	case "multipleOf":
		s.MultipleOf, err = floatPtr(v, path)
	case "items":
		s.Items, err = d.items(v, path)
	case "additionalItems":
		s.AdditionalItems, err = d.additional(v, path)
	case "additionalProperties":
		s.AdditionalProperties, err = d.additional(v, path)
	case "uniqueItems":
		b, ok := v.(bool)
		if !ok {
			return typeErr(path, "boolean", v)
		}
		s.UniqueItems = &b
	case "dependencies":
		s.Dependencies, err = d.dependencies(v, path)
	default:
		d.extra(s, k, v)
	}
	return err
}

func (d decoder) extra(s *Schema, k string, v any) {
	if s.Extra == nil {
		s.Extra = map[string]any{}
	}
	s.Extra[k] = v
}

func (d decoder) schema(v any, path string) (*Schema, error) {
	switch t := v.(type) {
	case *Schema:
		return t, nil
	case bool:
		if t {
			return &Schema{}, nil
		}
		return &Schema{Not: &Schema{}}, nil
	case map[string]any:
		return d.object(t, path)
	case map[any]any:
		m, _ := normalizeYAML(t).(map[string]any)
		return d.object(m, path)
	}
	return nil, typeErr(path, "schema", v)
}

func (d decoder) schemaList(v any, path string) ([]*Schema, error) {
	if l, ok := v.([]*Schema); ok {
		return l, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, typeErr(path, "array of schemas", v)
	}
	out := make([]*Schema, len(items))
	for i, it := range items {
		s, err := d.schema(it, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (d decoder) schemaMap(v any, path string) (map[string]*Schema, error) {
	if m, ok := v.(map[string]*Schema); ok {
		return m, nil
	}
	m, ok := normalizeYAML(v).(map[string]any)
	if !ok {
		return nil, typeErr(path, "object of schemas", v)
	}
	out := make(map[string]*Schema, len(m))
	for k, it := range m {
		s, err := d.schema(it, path+"/"+k)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

func (d decoder) items(v any, path string) (*Items, error) {
	switch v.(type) {
	case []any, []*Schema:
		tuple, err := d.schemaList(v, path)
		if err != nil {
			return nil, err
		}
		return &Items{Tuple: tuple}, nil
	}
	s, err := d.schema(v, path)
	if err != nil {
		return nil, err
	}
	return &Items{Schema: s}, nil
}

func (d decoder) additional(v any, path string) (*Additional, error) {
	if b, ok := v.(bool); ok {
		return &Additional{Allowed: b}, nil
	}
	s, err := d.schema(v, path)
	if err != nil {
		return nil, err
	}
	return &Additional{Schema: s}, nil
}

func (d decoder) dependencies(v any, path string) (map[string]Dependency, error) {
	m, ok := normalizeYAML(v).(map[string]any)
	if !ok {
		return nil, typeErr(path, "object", v)
	}
	out := make(map[string]Dependency, len(m))
	for k, it := range m {
		p := path + "/" + k
		switch it.(type) {
		case []any, []string:
			names, err := strs(it, p)
			if err != nil {
				return nil, err
			}
			out[k] = Dependency{Properties: names}
		default:
			s, err := d.schema(it, p)
			if err != nil {
				return nil, err
			}
			out[k] = Dependency{Schema: s}
		}
	}
	return out, nil
}

func str(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeErr(path, "string", v)
	}
	return s, nil
}

func strs(v any, path string) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		out := make([]string, len(t))
		for i, it := range t {
			s, ok := it.(string)
			if !ok {
				return nil, typeErr(fmt.Sprintf("%s/%d", path, i), "string", it)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, typeErr(path, "array of strings", v)
}

func list(v any, path string) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case []string:
		return stringsToAny(t), nil
	}
	return nil, typeErr(path, "array", v)
}

func intPtr(v any, path string) (*int, error) {
	f, ok := number(v)
	if !ok || f != math.Trunc(f) {
		return nil, typeErr(path, "integer", v)
	}
	n := int(f)
	return &n, nil
}

func floatPtr(v any, path string) (*float64, error) {
	f, ok := number(v)
	if !ok {
		return nil, typeErr(path, "number", v)
	}
	return &f, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func typeErr(path, want string, got any) error {
	return fmt.Errorf("jsonschema: %s: expected %s, got %T", path, want, got)
}

// normalizeYAML converts map[any]any produced by some YAML decoders into
// map[string]any recursively. Other values are returned unchanged.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeYAML(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeYAML(vv)
		}
		return out
	}
	return v
}
