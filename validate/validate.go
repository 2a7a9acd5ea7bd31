// Package validate checks instances against exported schemez documents using
// github.com/santhosh-tekuri/jsonschema/v5 as the draft-07 engine.
//
// The builder never validates data on its own; this package is the boundary
// where a document meets a validator.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

const resourceURL = "mem://schemez.json"

// Validator is a compiled document. It is safe for concurrent use.
type Validator struct {
	doc    *js.Schema
	schema *jschema.Schema
}

// Compile compiles the exported document of s.
func Compile(s schemez.Schema) (*Validator, error) {
	return CompileDocument(s.ValueOf())
}

// CompileDocument compiles doc as a draft-07 schema with format assertion
// enabled. A document without $schema is treated as draft-07.
func CompileDocument(doc *js.Schema) (*Validator, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("validate: encode schema: %w", err)
	}
	c := jschema.NewCompiler()
	c.Draft = jschema.Draft7
	c.AssertFormat = true
	if err := c.AddResource(resourceURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("validate: add schema: %w", err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("validate: compile schema: %w", err)
	}
	return &Validator{doc: doc, schema: sch}, nil
}

// Document returns the compiled document.
func (v *Validator) Document() *js.Schema { return v.doc }

// Validate checks instance and returns schemez.Issues when it does not match.
// The instance is normalized through a JSON round trip first, so structs,
// typed slices and Go integer types are accepted.
func (v *Validator) Validate(instance any) error {
	raw, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("validate: encode instance: %w", err)
	}
	return v.ValidateJSON(raw)
}

// ValidateJSON decodes data as JSON and validates it.
func (v *Validator) ValidateJSON(data []byte) error {
	var inst any
	if err := json.Unmarshal(data, &inst); err != nil {
		return fmt.Errorf("validate: decode instance: %w", err)
	}
	return v.validateValue(inst)
}

// Valid reports whether instance matches.
func (v *Validator) Valid(instance any) bool { return v.Validate(instance) == nil }

func (v *Validator) validateValue(inst any) error {
	err := v.schema.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate: %w", err)
	}
	return flatten(nil, ve)
}

// flatten collects the leaves of the cause tree as issues.
func flatten(dst schemez.Issues, ve *jschema.ValidationError) schemez.Issues {
	if len(ve.Causes) == 0 {
		return schemez.AppendIssues(dst, issueOf(ve))
	}
	for _, c := range ve.Causes {
		dst = flatten(dst, c)
	}
	return dst
}

func issueOf(ve *jschema.ValidationError) schemez.Issue {
	path := ve.InstanceLocation
	if path == "" {
		path = "/"
	}
	kw := ve.KeywordLocation
	code := kw
	if i := strings.LastIndex(kw, "/"); i >= 0 {
		code = kw[i+1:]
	}
	return schemez.Issue{Path: path, Keyword: kw, Code: code, Message: ve.Message}
}
