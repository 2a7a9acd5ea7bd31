package dsl_test

import (
	"regexp"
	"testing"
	"time"

	g "github.com/TakitoTech/schemez/dsl"
)

func TestString_Optional(t *testing.T) {
	s := g.String()
	if !s.IsRequired() || s.Optional().IsRequired() {
		t.Fatalf("unexpected required flags")
	}
}

func TestString_ContentKeywords(t *testing.T) {
	assertPlain(t, g.String().ContentMediaType("application/json"),
		obj{"type": "string", "contentMediaType": "application/json"})
	assertPlain(t, g.String().ContentEncoding("binary"),
		obj{"type": "string", "contentEncoding": "binary"})
}

func TestString_Format(t *testing.T) {
	s := g.String().Format(g.FormatDateTime)
	expect(t, s, valid(time.Now().UTC().Format(time.RFC3339)), invalid("some"))

	expect(t, g.String().Format(g.FormatEmail), valid("a@example.com"), invalid("nope"))
}

func TestString_FormatBounds(t *testing.T) {
	s := g.String().Format(g.FormatDate).
		FormatMinimum("2020-01-01").
		FormatExclusiveMaximum("2021-01-01")
	assertPlain(t, s, obj{
		"type":                   "string",
		"format":                 "date",
		"formatMinimum":          "2020-01-01",
		"formatExclusiveMaximum": "2021-01-01",
	})
}

func TestString_Length(t *testing.T) {
	expect(t, g.String().MinLength(2), valid("some"), invalid("s"))
	expect(t, g.String().MaxLength(2), invalid("some"), valid("s"))
}

func TestString_Pattern(t *testing.T) {
	s := g.String().Pattern(regexp.MustCompile(`some`))
	if got := s.Plain().Pattern; got != "some" {
		t.Fatalf("pattern source: got %q", got)
	}
	expect(t, s, valid("some"), invalid("s"))

	anchored := g.String().PatternString(`^[a-z]+$`)
	expect(t, anchored, valid("abc"), invalid("abc1"))
}
