package schemez

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/TakitoTech/schemez/jsonschema"
)

// Schema is the read side shared by every node kind.
type Schema interface {
	// Plain returns the node's own document without "$schema" and
	// "definitions". It is shared with the node and must not be modified.
	Plain() *js.Schema
	// IsRequired reports whether the node is listed in the parent object's
	// "required" array when used as a property.
	IsRequired() bool
	// ValueOf returns the exported document: Plain plus "$schema" (when set)
	// plus "definitions" (when any were attached).
	ValueOf() *js.Schema
}

// JSON encodes the exported document of s.
func JSON(s Schema) ([]byte, error) {
	return json.Marshal(s.ValueOf())
}

// JSONIndent is like JSON but indents the output.
func JSONIndent(s Schema, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(s.ValueOf(), prefix, indent)
}

// YAML encodes the exported document of s as YAML.
func YAML(s Schema) ([]byte, error) {
	return yaml.Marshal(s.ValueOf())
}
