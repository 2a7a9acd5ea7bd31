// Package schemez builds JSON Schema (draft-07) documents from small,
// immutable, fluently composed nodes.
//
// - Node kinds and the object composition algebra live under dsl/
//   (String/Number/Integer/Array/Object/Shape, Set/Get/Pick/Omit/Partial/And).
// - The document record lives under jsonschema/ (typed keywords plus Extra).
// - validate/ adapts a draft-07 engine for checking instances against an
//   exported document; the builder itself never validates data.
// - The CLI lives under cmd/schemez.
//
// Design policy:
// - Every fluent call returns a new node; nodes are never mutated and may be
//   shared between goroutines.
// - Keep only public API types in the root package.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Shape(map[string]schemez.Schema{
//	    "id":   dsl.String().Format(dsl.FormatUUID),
//	    "note": dsl.String().Optional(),
//	}, false)
//	b, err := schemez.JSON(s)
//
//	v, err := validate.Compile(s)
//	err = v.Validate(map[string]any{"id": "..."})
package schemez
