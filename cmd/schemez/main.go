package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	schemez "github.com/TakitoTech/schemez"
	"github.com/TakitoTech/schemez/dsl"
	js "github.com/TakitoTech/schemez/jsonschema"
	"github.com/TakitoTech/schemez/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdout, stderr)
	case "convert":
		return convertCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "schemez CLI\n\nUsage:\n  schemez validate -schema schema.json [-v] instance.json [instance.yaml ...]\n  schemez convert -schema schema.yaml [-o json|yaml] [-omit a,b] [-pick a,b] [-partial] [-partial-deep] [-v]\n\nNotes:\n  - Files ending in .yaml or .yml are read as YAML, anything else as JSON.")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func validateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath string
	var verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	logger := newLogger(stderr, verbose)

	doc, err := loadSchema(schemaPath)
	if err != nil {
		logger.Error("load schema", "path", schemaPath, "error", err)
		return 2
	}
	v, err := validate.CompileDocument(doc)
	if err != nil {
		logger.Error("compile schema", "path", schemaPath, "error", err)
		return 2
	}
	logger.Debug("schema compiled", "path", schemaPath, "instances", fs.NArg())

	code := 0
	for _, path := range fs.Args() {
		inst, err := loadInstance(path)
		if err != nil {
			logger.Error("load instance", "path", path, "error", err)
			return 2
		}
		err = v.Validate(inst)
		if err == nil {
			fmt.Fprintf(stdout, "%s: ok\n", path)
			continue
		}
		iss, ok := schemez.AsIssues(err)
		if !ok {
			logger.Error("validate", "path", path, "error", err)
			return 2
		}
		code = 1
		for _, it := range iss {
			fmt.Fprintf(stdout, "%s: %s %s: %s\n", path, it.Path, it.Code, it.Message)
		}
		logger.Debug("instance invalid", "path", path, "issues", len(iss))
	}
	return code
}

func convertCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath, format, omitCSV, pickCSV string
	var partial, partialDeep, verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	fs.StringVar(&format, "o", "json", "output format: json or yaml")
	fs.StringVar(&omitCSV, "omit", "", "comma-separated properties to remove")
	fs.StringVar(&pickCSV, "pick", "", "comma-separated properties to keep")
	fs.BoolVar(&partial, "partial", false, "drop required properties")
	fs.BoolVar(&partialDeep, "partial-deep", false, "drop required properties at every object level")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schemaPath == "" || (format != "json" && format != "yaml") {
		fs.Usage()
		return 2
	}
	logger := newLogger(stderr, verbose)

	doc, err := loadSchema(schemaPath)
	if err != nil {
		logger.Error("load schema", "path", schemaPath, "error", err)
		return 2
	}
	o := dsl.ObjectOf(doc)
	if names := splitCSV(omitCSV); len(names) > 0 {
		logger.Debug("omit", "properties", names)
		o = o.Omit(names...)
	}
	if names := splitCSV(pickCSV); len(names) > 0 {
		logger.Debug("pick", "properties", names)
		o = o.Pick(names...)
	}
	switch {
	case partialDeep:
		o = o.PartialDeep()
	case partial:
		o = o.Partial()
	}

	var out []byte
	if format == "yaml" {
		out, err = schemez.YAML(o)
	} else {
		out, err = schemez.JSONIndent(o, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		logger.Error("encode", "format", format, "error", err)
		return 1
	}
	if _, err := stdout.Write(out); err != nil {
		logger.Error("write", "error", err)
		return 1
	}
	return 0
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadSchema(path string) (*js.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc js.Schema
	if isYAML(path) {
		err = yaml.Unmarshal(b, &doc)
	} else {
		err = json.Unmarshal(b, &doc)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func loadInstance(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if isYAML(path) {
		err = yaml.Unmarshal(b, &v)
	} else {
		err = json.Unmarshal(b, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
