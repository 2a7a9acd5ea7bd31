package dsl

import schemez "github.com/TakitoTech/schemez"

// AnySchema is a node with only the generic keywords. It is produced by Any,
// Boolean, Null, Of and ObjectSchema.Get.
type AnySchema struct{ Base[AnySchema] }

var (
	_ schemez.Schema = AnySchema{}
	_ schemez.Schema = StringSchema{}
	_ schemez.Schema = NumericSchema{}
	_ schemez.Schema = ArraySchema{}
	_ schemez.Schema = ObjectSchema{}
	_ schemez.Schema = Factory{}
)
