package dsl_test

import (
	"reflect"
	"sort"
	"testing"

	schemez "github.com/TakitoTech/schemez"
	g "github.com/TakitoTech/schemez/dsl"
)

func snapshot(s schemez.Schema) any { return normalize(s.ValueOf()) }

func TestProperty_Immutability(t *testing.T) {
	base := g.Object().
		Set("a", g.String()).
		Set("b", g.Number().Optional()).
		Set("c", g.Shape(shape{"d": g.String()}, false))
	before := snapshot(base)
	reqBefore := base.RequiredNames()

	ops := map[string]func(){
		"set":                 func() { base.Set("e", g.String()) },
		"set optional":        func() { base.Set("a", g.String().Optional()) },
		"required properties": func() { base.RequiredProperties("b") },
		"partial":             func() { base.Partial() },
		"partial deep":        func() { base.PartialDeep() },
		"omit":                func() { base.Omit("a") },
		"pick":                func() { base.Pick("a") },
		"and":                 func() { base.And(g.Shape(shape{"a": g.Number()}, false), false) },
		"and shape":           func() { base.AndShape(shape{"z": g.String()}, false) },
		"additional":          func() { base.AdditionalProperties(false) },
		"title":               func() { base.Title("x") },
		"definition":          func() { base.Definition("x", g.String()) },
		"raw":                 func() { base.Raw(obj{"required": []any{"zzz"}}) },
		"optional":            func() { base.Optional() },
	}
	for name, op := range ops {
		op()
		if got := snapshot(base); !reflect.DeepEqual(got, before) {
			t.Fatalf("%s modified the receiver\n got=%v\nwant=%v", name, got, before)
		}
		if got := base.RequiredNames(); !reflect.DeepEqual(got, reqBefore) {
			t.Fatalf("%s modified required: %v", name, got)
		}
		if !base.IsRequired() {
			t.Fatalf("%s modified the required flag", name)
		}
	}
}

func TestProperty_SetGetRoundTrip(t *testing.T) {
	nodes := map[string]schemez.Schema{
		"string":   g.String().MinLength(1),
		"optional": g.Number().Maximum(3).Optional(),
		"object":   g.Shape(shape{"x": g.String()}, false),
		"list":     g.List(g.Integer()).Optional(),
	}
	for name, x := range nodes {
		o := g.Object().Set("p", x)
		got, err := o.Get("p")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(normalize(got.Plain()), normalize(x.Plain())) {
			t.Fatalf("%s: document mismatch", name)
		}
		if got.IsRequired() != x.IsRequired() {
			t.Fatalf("%s: required flag mismatch", name)
		}
	}
}

func TestProperty_PickOmitComplement(t *testing.T) {
	o := g.Shape(shape{
		"a": g.String(), "b": g.String(), "c": g.String().Optional(), "d": g.Number(),
	}, false)
	k := []string{"a", "c"}
	omitted := o.Omit(k...).Properties()
	picked := o.Pick(k...).Properties()

	union := append(append([]string{}, omitted...), picked...)
	sort.Strings(union)
	if !reflect.DeepEqual(union, o.Properties()) {
		t.Fatalf("union %v != %v", union, o.Properties())
	}
	for _, p := range picked {
		for _, q := range omitted {
			if p == q {
				t.Fatalf("%q in both projections", p)
			}
		}
	}
}

func TestProperty_PartialIdempotent(t *testing.T) {
	o := g.Shape(shape{"a": g.String(), "b": g.String()}, false)
	once := o.Partial()
	twice := once.Partial()
	if _, ok := snapshot(twice).(map[string]any)["required"]; ok {
		t.Fatalf("partial(partial(x)) still has required")
	}
	if !reflect.DeepEqual(snapshot(once), snapshot(twice)) {
		t.Fatalf("partial is not idempotent")
	}
}

func TestProperty_AndPrecedence(t *testing.T) {
	a := g.Object().Set("x", g.String())
	b := g.Object().Set("x", g.Number().Minimum(1))
	got, err := a.And(b, true).Get("x")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := b.Get("x")
	if !reflect.DeepEqual(normalize(got.Plain()), normalize(want.Plain())) {
		t.Fatalf("And should keep other's x\n got=%v\nwant=%v", normalize(got.Plain()), normalize(want.Plain()))
	}
}

func TestScenario_RequiredAndOptional(t *testing.T) {
	s := g.Object().Set("prop1", g.String()).Set("prop2", g.String().Optional())
	expect(t, s, valid(obj{"prop1": "hello"}), invalid(obj{}), invalid(obj{"prop2": "world"}))
}

func TestScenario_RequiredPropertiesAfterOptional(t *testing.T) {
	s := g.Object().
		Set("prop1", g.String().Optional()).
		Set("prop2", g.String().Optional()).
		RequiredProperties("prop1")
	expect(t, s, valid(obj{"prop1": "hello", "prop2": "world"}), invalid(obj{}))
}

func TestScenario_OmitRequired(t *testing.T) {
	s := g.Object().Set("prop1", g.String()).Set("prop2", g.String().Optional()).Omit("prop1")
	expect(t, s, valid(obj{}))
}

func TestScenario_ExclusiveMinimum(t *testing.T) {
	expect(t, g.Number().ExclusiveMinimum(1), invalid(1), valid(2))
}

func TestScenario_Pattern(t *testing.T) {
	expect(t, g.String().PatternString("some"), valid("some"), invalid("s"))
}
