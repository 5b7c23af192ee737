package exchange

import (
	"strings"
	"testing"
)

const sampleJSONL = `{"id":"calculator","name":"Calculator","kind":"doc","file":"src/calc.rs","line":1,"language":"rust","extracted_at":"2026-08-01T12:00:00Z"}

{"id":"calculator_add","name":"add","kind":"doc","params":[{"name":"a","type":"i32","description":"First number"}],"file":"src/calc.rs","line":12,"language":"rust","extracted_at":"2026-08-01T12:00:00Z"}
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sampleJSONL))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "calculator" || entries[1].ID != "calculator_add" {
		t.Errorf("ids = %q, %q", entries[0].ID, entries[1].ID)
	}
	if entries[1].Params[0].Name != "a" {
		t.Errorf("param = %+v", entries[1].Params[0])
	}
}

func TestParseBadLine(t *testing.T) {
	_, err := Parse(strings.NewReader("{\"id\":\"ok\"}\n{broken\n"))
	if err == nil {
		t.Fatal("Parse() = nil error, want failure")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line number", err)
	}
}

func TestFilterImportable(t *testing.T) {
	entries, err := Parse(strings.NewReader(sampleJSONL + `{"id":"","name":"broken","kind":"doc","file":"x.rs","line":1,"language":"rust","extracted_at":"2026-08-01T12:00:00Z"}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ok, errs := FilterImportable(entries)
	if len(ok) != 2 {
		t.Errorf("got %d importable entries, want 2", len(ok))
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "missing id") {
		t.Errorf("errs = %v", errs)
	}
}
