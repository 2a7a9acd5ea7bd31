package dsl

import (
	"regexp"

	js "github.com/TakitoTech/schemez/jsonschema"
)

// Format names understood by draft-07 validators.
const (
	FormatDateTime            = "date-time"
	FormatDate                = "date"
	FormatTime                = "time"
	FormatEmail               = "email"
	FormatIDNEmail            = "idn-email"
	FormatHostname            = "hostname"
	FormatIDNHostname         = "idn-hostname"
	FormatIPv4                = "ipv4"
	FormatIPv6                = "ipv6"
	FormatURI                 = "uri"
	FormatURIReference        = "uri-reference"
	FormatIRI                 = "iri"
	FormatIRIReference        = "iri-reference"
	FormatURITemplate         = "uri-template"
	FormatJSONPointer         = "json-pointer"
	FormatRelativeJSONPointer = "relative-json-pointer"
	FormatRegex               = "regex"
	FormatUUID                = "uuid"
)

// StringSchema is a node of type "string".
type StringSchema struct{ Base[StringSchema] }

func (s StringSchema) MinLength(n int) StringSchema {
	return s.withDoc(&js.Schema{MinLength: &n})
}

func (s StringSchema) MaxLength(n int) StringSchema {
	return s.withDoc(&js.Schema{MaxLength: &n})
}

// Pattern stores the source of re. Flags have no JSON Schema form, so use
// expressions that read the same in RE2 and ECMA 262.
func (s StringSchema) Pattern(re *regexp.Regexp) StringSchema {
	return s.PatternString(re.String())
}

// PatternString stores src as the "pattern" keyword without compiling it.
func (s StringSchema) PatternString(src string) StringSchema {
	return s.withDoc(&js.Schema{Pattern: src})
}

func (s StringSchema) Format(name string) StringSchema {
	return s.withDoc(&js.Schema{Format: name})
}

func (s StringSchema) FormatMinimum(v string) StringSchema {
	return s.withDoc(&js.Schema{FormatMinimum: v})
}

func (s StringSchema) FormatMaximum(v string) StringSchema {
	return s.withDoc(&js.Schema{FormatMaximum: v})
}

func (s StringSchema) FormatExclusiveMinimum(v string) StringSchema {
	return s.withDoc(&js.Schema{FormatExclusiveMinimum: v})
}

func (s StringSchema) FormatExclusiveMaximum(v string) StringSchema {
	return s.withDoc(&js.Schema{FormatExclusiveMaximum: v})
}

func (s StringSchema) ContentMediaType(mediaType string) StringSchema {
	return s.withDoc(&js.Schema{ContentMediaType: mediaType})
}

func (s StringSchema) ContentEncoding(encoding string) StringSchema {
	return s.withDoc(&js.Schema{ContentEncoding: encoding})
}
