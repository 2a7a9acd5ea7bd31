package validate_test

import (
	"testing"

	json "github.com/goccy/go-json"

	schemez "github.com/TakitoTech/schemez"
	g "github.com/TakitoTech/schemez/dsl"
	"github.com/TakitoTech/schemez/validate"
)

func benchUser() schemez.Schema {
	return g.Shape(map[string]schemez.Schema{
		"id":   g.String(),
		"name": g.String().Optional(),
	}, true)
}

func Benchmark_Compile_Small(b *testing.B) {
	s := benchUser()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := validate.Compile(s); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ValidateJSON_Small(b *testing.B) {
	v, err := validate.Compile(benchUser())
	if err != nil {
		b.Fatal(err)
	}
	data := []byte(`{"id":"u_1","name":"alice"}`)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.ValidateJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Validate_Map_Small(b *testing.B) {
	v, err := validate.Compile(benchUser())
	if err != nil {
		b.Fatal(err)
	}
	var inst any
	_ = json.Unmarshal([]byte(`{"id":"u_1","name":"alice"}`), &inst)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Validate(inst); err != nil {
			b.Fatal(err)
		}
	}
}
