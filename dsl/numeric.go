package dsl

import js "github.com/TakitoTech/schemez/jsonschema"

// NumericSchema is a node of type "number" or "integer".
//
// Minimum and ExclusiveMinimum (likewise the maximum pair) are independent
// keywords: setting one leaves the other in place.
type NumericSchema struct{ Base[NumericSchema] }

func (n NumericSchema) Minimum(v float64) NumericSchema {
	return n.withDoc(&js.Schema{Minimum: &v})
}

func (n NumericSchema) ExclusiveMinimum(v float64) NumericSchema {
	return n.withDoc(&js.Schema{ExclusiveMinimum: &v})
}

func (n NumericSchema) Maximum(v float64) NumericSchema {
	return n.withDoc(&js.Schema{Maximum: &v})
}

func (n NumericSchema) ExclusiveMaximum(v float64) NumericSchema {
	return n.withDoc(&js.Schema{ExclusiveMaximum: &v})
}

func (n NumericSchema) MultipleOf(v float64) NumericSchema {
	return n.withDoc(&js.Schema{MultipleOf: &v})
}
