package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const userSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "age": {"type": "integer", "minimum": 0}
  },
  "required": ["id", "age"],
  "additionalProperties": false
}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun_Validate(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.json", userSchema)
	good := writeFile(t, dir, "good.yaml", "id: u1\nage: 3\n")
	bad := writeFile(t, dir, "bad.json", `{"age": -1}`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"validate", "-schema", schema, good}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "good.yaml: ok") {
		t.Fatalf("stdout: %s", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"validate", "-schema", schema, good, bad}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "bad.json: / required") || !strings.Contains(out, "bad.json: /age minimum") {
		t.Fatalf("stdout: %s", out)
	}
}

func TestRun_Convert(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.json", userSchema)

	var stdout, stderr bytes.Buffer
	code := run([]string{"convert", "-schema", schema, "-o", "yaml", "-omit", "age", "-partial"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, stderr.String())
	}
	out := stdout.String()
	if strings.Contains(out, "age") || strings.Contains(out, "required") {
		t.Fatalf("projection not applied:\n%s", out)
	}
	if !strings.Contains(out, "id:") || !strings.Contains(out, "additionalProperties: false") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected 2, got %d", code)
	}
	if code := run([]string{"validate"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected 2, got %d", code)
	}
	if code := run([]string{"convert", "-schema", "x.json", "-o", "xml"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected 2, got %d", code)
	}
}
