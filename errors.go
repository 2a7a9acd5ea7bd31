package schemez

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProperties is returned when a property is read from an object schema
// that never had one set.
var ErrNoProperties = errors.New("schemez: object has no properties to get from")

// Issue codes are the names of the violated keywords. The common ones are
// exported for convenience.
const (
	CodeType                 = "type"
	CodeRequired             = "required"
	CodeAdditionalProperties = "additionalProperties"
	CodePattern              = "pattern"
	CodeFormat               = "format"
	CodeMinimum              = "minimum"
	CodeMaximum              = "maximum"
	CodeExclusiveMinimum     = "exclusiveMinimum"
	CodeExclusiveMaximum     = "exclusiveMaximum"
	CodeMinLength            = "minLength"
	CodeMaxLength            = "maxLength"
	CodeEnum                 = "enum"
	CodeConst                = "const"
)

// Issue represents a single violated keyword reported by a validator.
type Issue struct {
	Path    string // JSON Pointer into the instance (for example: /items/2/price).
	Keyword string // JSON Pointer into the schema (for example: /properties/price/minimum).
	Code    string // Name of the violated keyword.
	Message string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
