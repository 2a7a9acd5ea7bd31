package dsl

import js "github.com/TakitoTech/schemez/jsonschema"

// Of wraps an existing document, such as one decoded from a file, as a
// required node. $schema and definitions move into the node state so that
// ValueOf reproduces them.
func Of(doc *js.Schema) AnySchema { return build[AnySchema](lift(doc)) }

// ObjectOf is Of for documents that describe objects, giving access to
// projection and partialization.
func ObjectOf(doc *js.Schema) ObjectSchema { return build[ObjectSchema](lift(doc)) }

func lift(doc *js.Schema) state {
	d := doc.Clone()
	st := state{doc: d, schemaURI: d.SchemaURI, definitions: d.Definitions}
	d.SchemaURI = ""
	d.Definitions = nil
	return st
}
