package dsl

import (
	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

// Factory creates nodes. It is a node itself: keywords, $schema, definitions
// and the required flag set on a factory are inherited by every node it
// creates afterwards.
//
//	f := dsl.New().Schema("").Description("internal")
//	s := f.String() // {"type":"string","description":"internal"}
type Factory struct{ Base[Factory] }

// New returns a factory emitting draft-07 documents with required nodes.
func New() Factory {
	return build[Factory](state{doc: &js.Schema{}, schemaURI: js.Draft07})
}

// adopt applies the factory template on top of a freshly created node.
func (f Factory) adopt(st state) state {
	required := !f.st.optional
	uri := f.st.schemaURI
	return st.apply(patch{
		doc:         f.st.doc,
		required:    &required,
		schemaURI:   &uri,
		definitions: f.st.definitions,
	})
}

func typed(t string) state { return state{doc: &js.Schema{Type: t}} }

// Any returns a node without a type.
func (f Factory) Any() AnySchema { return build[AnySchema](f.adopt(state{})) }

func (f Factory) String() StringSchema { return build[StringSchema](f.adopt(typed("string"))) }

func (f Factory) Number() NumericSchema { return build[NumericSchema](f.adopt(typed("number"))) }

func (f Factory) Integer() NumericSchema { return build[NumericSchema](f.adopt(typed("integer"))) }

func (f Factory) Boolean() AnySchema { return build[AnySchema](f.adopt(typed("boolean"))) }

func (f Factory) Null() AnySchema { return build[AnySchema](f.adopt(typed("null"))) }

func (f Factory) Array() ArraySchema { return build[ArraySchema](f.adopt(typed("array"))) }

// List returns an array whose elements all match items.
func (f Factory) List(items schemez.Schema) ArraySchema { return f.Array().Items(items) }

func (f Factory) Object() ObjectSchema { return build[ObjectSchema](f.adopt(typed("object"))) }

// Shape returns an object with every entry of props set in sorted name order
// and additionalProperties set to additional.
func (f Factory) Shape(props map[string]schemez.Schema, additional bool) ObjectSchema {
	return f.Object().AndShape(props, additional)
}

// Package level constructors use a fresh New() factory.

func Any() AnySchema { return New().Any() }

func String() StringSchema { return New().String() }

func Number() NumericSchema { return New().Number() }

func Integer() NumericSchema { return New().Integer() }

func Boolean() AnySchema { return New().Boolean() }

func Null() AnySchema { return New().Null() }

func Array() ArraySchema { return New().Array() }

func List(items schemez.Schema) ArraySchema { return New().List(items) }

func Object() ObjectSchema { return New().Object() }

func Shape(props map[string]schemez.Schema, additional bool) ObjectSchema {
	return New().Shape(props, additional)
}
