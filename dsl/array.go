package dsl

import (
	schemez "github.com/TakitoTech/schemez"
	js "github.com/TakitoTech/schemez/jsonschema"
)

// ArraySchema is a node of type "array".
type ArraySchema struct{ Base[ArraySchema] }

// Items applies s to every element.
func (a ArraySchema) Items(s schemez.Schema) ArraySchema {
	return a.withDoc(&js.Schema{Items: &js.Items{Schema: s.Plain()}})
}

// ItemsTuple validates elements by position.
func (a ArraySchema) ItemsTuple(schemas ...schemez.Schema) ArraySchema {
	return a.withDoc(&js.Schema{Items: &js.Items{Tuple: plains(schemas)}})
}

// AdditionalItems allows or forbids elements past a tuple.
func (a ArraySchema) AdditionalItems(allowed bool) ArraySchema {
	return a.withDoc(&js.Schema{AdditionalItems: &js.Additional{Allowed: allowed}})
}

// AdditionalItemsSchema validates elements past a tuple against s.
func (a ArraySchema) AdditionalItemsSchema(s schemez.Schema) ArraySchema {
	return a.withDoc(&js.Schema{AdditionalItems: &js.Additional{Schema: s.Plain()}})
}

func (a ArraySchema) Contains(s schemez.Schema) ArraySchema {
	return a.withDoc(&js.Schema{Contains: s.Plain()})
}

func (a ArraySchema) MinItems(n int) ArraySchema {
	return a.withDoc(&js.Schema{MinItems: &n})
}

func (a ArraySchema) MaxItems(n int) ArraySchema {
	return a.withDoc(&js.Schema{MaxItems: &n})
}

func (a ArraySchema) UniqueItems() ArraySchema {
	t := true
	return a.withDoc(&js.Schema{UniqueItems: &t})
}
