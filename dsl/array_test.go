package dsl_test

import (
	"testing"

	g "github.com/TakitoTech/schemez/dsl"
)

func TestArray_Items(t *testing.T) {
	a := g.Array().Items(g.String())
	assertPlain(t, a, obj{"type": "array", "items": obj{"type": "string"}})
	expect(t, a, valid([]any{"a", "b"}), invalid([]any{"a", 1}))
}

func TestArray_Tuple(t *testing.T) {
	a := g.Array().ItemsTuple(g.String(), g.Number())
	expect(t, a, valid([]any{"some", 0, 0}))
	expect(t, a.AdditionalItems(false), invalid([]any{"some", 0, 0}), valid([]any{"some", 0}))
	expect(t, a.AdditionalItemsSchema(g.String()), valid([]any{"some", 0, "any"}), invalid([]any{"some", 0, 1}))
}

func TestArray_Contains(t *testing.T) {
	a := g.Array().Contains(g.Any().Const("some"))
	expect(t, a, valid([]any{"some", 0, 0}), invalid([]any{"any", 0, 0}))
}

func TestArray_Size(t *testing.T) {
	expect(t, g.Array().MinItems(1), valid([]any{"some", 0, 0}), invalid([]any{}))
	expect(t, g.Array().MaxItems(1), invalid([]any{"some", 0, 0}), valid([]any{}))
}

func TestArray_UniqueItems(t *testing.T) {
	expect(t, g.Array().UniqueItems(), valid([]any{"some", 0}), invalid([]any{1, 1}))
}

func TestArray_Optional(t *testing.T) {
	a := g.Array()
	if !a.IsRequired() || a.Optional().IsRequired() {
		t.Fatalf("unexpected required flags")
	}
}

func TestArray_List(t *testing.T) {
	expect(t, g.List(g.String()), valid([]any{"some"}), invalid([]any{1}), valid([]string{}))
}
