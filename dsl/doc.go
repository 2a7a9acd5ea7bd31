// Package dsl provides the fluent builders for schemez documents.
//
// Overview
//   - Nodes: AnySchema, StringSchema, NumericSchema, ArraySchema and ObjectSchema
//     are immutable values. Every method returns a new node; the receiver is
//     never modified, so nodes can be shared and reused freely.
//   - Base[S]: the keywords every kind shares (title, description, enum, const,
//     combinators, definitions, raw fragments) and the required flag.
//   - Objects: Set/Get with required bookkeeping, RequiredProperties, Partial,
//     PartialDeep, Omit, Pick, And and AndShape.
//   - Factory: New() returns a template; keywords set on it flow into every node
//     it creates. Package level String(), Object(), ... use a fresh New().
//   - Export: ValueOf() returns the jsonschema.Schema with $schema and
//     definitions; schemez.JSON/YAML encode it.
//
// Entry points
//   - Any(), String(), Number(), Integer(), Boolean(), Null()
//   - Array(), List(items)
//   - Object(), Shape(props, additional)
//   - Of(doc), ObjectOf(doc): wrap a decoded document.
//
// File layout (roles)
//   - base.go: node state, copy-with and the shared keywords.
//   - string.go/numeric.go/array.go/any.go: kind specific keywords.
//   - object.go: properties, required bookkeeping, object keywords.
//   - object_compose.go: partialization, projection and intersection.
//   - factory.go: Factory and package level constructors.
//   - of_helpers.go: lifting existing documents into nodes.
//
// Example
//
//	user := dsl.Shape(map[string]schemez.Schema{
//	    "id":    dsl.String().Format(dsl.FormatUUID),
//	    "email": dsl.String().Format(dsl.FormatEmail),
//	    "age":   dsl.Integer().Minimum(0).Optional(),
//	}, false)
//
//	patch := user.Omit("id").Partial()
//	b, _ := schemez.JSON(patch)
//	// {"$schema":"http://json-schema.org/draft-07/schema#","additionalProperties":false,
//	//  "properties":{"age":{"minimum":0,"type":"integer"},"email":{"format":"email","type":"string"}},
//	//  "type":"object"}
//	_ = b
//
// Required-ness
//
//	// A node's own flag decides whether Set lists it in the parent's required.
//	o := dsl.Object().
//	    Set("a", dsl.String()).            // required: ["a"]
//	    Set("b", dsl.String().Optional()) // still ["a"]
//	p, _ := o.Get("b")
//	_ = p.IsRequired() // false
package dsl
