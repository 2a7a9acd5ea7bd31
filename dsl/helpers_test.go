package dsl_test

import (
	"encoding/json"
	"reflect"
	"testing"

	schemez "github.com/TakitoTech/schemez"
	"github.com/TakitoTech/schemez/validate"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}

func assertDoc(t *testing.T, s schemez.Schema, want map[string]any) {
	t.Helper()
	got := normalize(s.ValueOf())
	if !reflect.DeepEqual(got, normalize(want)) {
		t.Fatalf("document mismatch\n got=%v\nwant=%v", got, normalize(want))
	}
}

func assertPlain(t *testing.T, s schemez.Schema, want map[string]any) {
	t.Helper()
	got := normalize(s.Plain())
	if !reflect.DeepEqual(got, normalize(want)) {
		t.Fatalf("plain document mismatch\n got=%v\nwant=%v", got, normalize(want))
	}
}

func compile(t *testing.T, s schemez.Schema) *validate.Validator {
	t.Helper()
	v, err := validate.Compile(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return v
}

// expect validates every instance against s and compares the outcome.
func expect(t *testing.T, s schemez.Schema, cases ...check) {
	t.Helper()
	v := compile(t, s)
	for _, c := range cases {
		err := v.Validate(c.in)
		if c.ok && err != nil {
			t.Fatalf("expected %v to be valid, got %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected %v to be invalid", c.in)
		}
	}
}

type check struct {
	in any
	ok bool
}

func valid(in any) check   { return check{in: in, ok: true} }
func invalid(in any) check { return check{in: in, ok: false} }

type obj = map[string]any
