package annotation

import (
	"strings"
	"testing"
)

func TestStripMarker(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		comment bool
	}{
		{"double slash", "// @doc calc Calculator", "@doc calc Calculator", true},
		{"triple slash", "/// @returns i32 The sum", "@returns i32 The sum", true},
		{"hash", "# @param n int Positive integer", "@param n int Positive integer", true},
		{"indented", "    // @example", "@example", true},
		{"keeps inner indent", "//     let x = 1;", "    let x = 1;", true},
		{"not a comment", "pub fn add()", "", false},
		{"empty line", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := StripMarker(tc.raw, DefaultMarkers)
			if ok != tc.comment {
				t.Fatalf("StripMarker(%q) ok = %v, want %v", tc.raw, ok, tc.comment)
			}
			if got != tc.want {
				t.Errorf("StripMarker(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseReaderRustFixture(t *testing.T) {
	src := `/// @doc calculator Calculator
/// @description Structure to perform mathematical calculations
/// @example
/// ` + "```rust" + `
/// let calc = Calculator::new();
/// let result = calc.add(5, 3);
/// ` + "```" + `
pub struct Calculator;

impl Calculator {
    /// @doc calculator_new new
    /// @description Creates a new Calculator instance
    /// @returns Calculator A new instance
    pub fn new() -> Self {
        Calculator
    }

    /// @doc calculator_add add
    /// @description Adds two integers
    /// @param a i32 First number
    /// @param b i32 Second number
    /// @returns i32 The sum
    pub fn add(&self, a: i32, b: i32) -> i32 {
        a + b
    }
}
`

	blocks, diags := ParseReader(strings.NewReader(src), "test.rs", DefaultMarkers)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	calc := blocks[0]
	if calc.ID != "calculator" || calc.Name != "Calculator" || calc.Kind != KindDoc {
		t.Errorf("header block = %+v", calc)
	}
	if calc.Description != "Structure to perform mathematical calculations" {
		t.Errorf("description = %q", calc.Description)
	}
	if calc.Example == nil {
		t.Fatal("expected example on calculator block")
	}
	if calc.Example.Language != "rust" {
		t.Errorf("example language = %q, want rust", calc.Example.Language)
	}
	if !strings.Contains(calc.Example.Code, "calc.add(5, 3)") {
		t.Errorf("example code = %q", calc.Example.Code)
	}
	if calc.Line != 1 {
		t.Errorf("line = %d, want 1", calc.Line)
	}

	add := blocks[2]
	if add.ID != "calculator_add" {
		t.Fatalf("third block id = %q", add.ID)
	}
	if len(add.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(add.Params))
	}
	if add.Params[0] != (Param{Name: "a", Type: "i32", Description: "First number"}) {
		t.Errorf("param 0 = %+v", add.Params[0])
	}
	if add.Returns == nil || add.Returns.Type != "i32" || add.Returns.Description != "The sum" {
		t.Errorf("returns = %+v", add.Returns)
	}
}

func TestParseReaderPythonFixture(t *testing.T) {
	src := `# @doc.init math_utils MathUtils
# @description Mathematical utilities
class MathUtils:
    # @doc.init factorial factorial
    # @description Calculates the factorial of a number
    # @param n int Positive integer
    # @returns int The factorial of n
    @staticmethod
    def factorial(n):
        pass
`

	blocks, diags := ParseReader(strings.NewReader(src), "test.py", DefaultMarkers)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Kind != KindInit || blocks[1].Kind != KindInit {
		t.Errorf("kinds = %q, %q, want init", blocks[0].Kind, blocks[1].Kind)
	}
	if blocks[1].Params[0].Description != "Positive integer" {
		t.Errorf("param description = %q", blocks[1].Params[0].Description)
	}
}

func TestParseMultilineDescription(t *testing.T) {
	lines := []Line{
		{Text: "@doc vec Vector", Number: 1},
		{Text: "@description A three dimensional", Number: 2},
		{Text: "vector with float components", Number: 3},
		{Text: "@param x float Component X", Number: 4},
	}

	blocks, diags := Parse(lines, "test.cpp")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	want := "A three dimensional vector with float components"
	if blocks[0].Description != want {
		t.Errorf("description = %q, want %q", blocks[0].Description, want)
	}
}

func TestParseDiagnostics(t *testing.T) {
	cases := []struct {
		name    string
		lines   []Line
		message string
	}{
		{
			"stray description",
			[]Line{{Text: "@description orphaned", Number: 1}},
			"@description before @doc",
		},
		{
			"unknown tag",
			[]Line{
				{Text: "@doc calc Calculator", Number: 1},
				{Text: "@deprecated use calc2", Number: 2},
			},
			"unknown tag @deprecated",
		},
		{
			"duplicate returns",
			[]Line{
				{Text: "@doc calc Calculator", Number: 1},
				{Text: "@returns i32 first", Number: 2},
				{Text: "@returns i32 second", Number: 3},
			},
			`duplicate @returns in block "calc"`,
		},
		{
			"unterminated fence",
			[]Line{
				{Text: "@doc calc Calculator", Number: 1},
				{Text: "@example", Number: 2},
				{Text: "```rust", Number: 3},
				{Text: "let x = 1;", Number: 4},
			},
			"unterminated @example fence",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, diags := Parse(tc.lines, "test.rs")
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics (%v), want 1", len(diags), diags)
			}
			if diags[0].Message != tc.message {
				t.Errorf("message = %q, want %q", diags[0].Message, tc.message)
			}
		})
	}
}

func TestParseUnterminatedFenceKeepsCode(t *testing.T) {
	lines := []Line{
		{Text: "@doc calc Calculator", Number: 1},
		{Text: "@example", Number: 2},
		{Text: "```rust", Number: 3},
		{Text: "let x = 1;", Number: 4},
	}

	blocks, _ := Parse(lines, "test.rs")
	if len(blocks) != 1 || blocks[0].Example == nil {
		t.Fatalf("blocks = %+v", blocks)
	}
	if blocks[0].Example.Code != "let x = 1;" {
		t.Errorf("code = %q", blocks[0].Example.Code)
	}
}

func TestParseTwoBlocksInOneRun(t *testing.T) {
	lines := []Line{
		{Text: "@doc first First", Number: 1},
		{Text: "@description one", Number: 2},
		{Text: "@doc second Second", Number: 3},
		{Text: "@description two", Number: 4},
	}

	blocks, diags := Parse(lines, "test.go")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].ID != "first" || blocks[1].ID != "second" {
		t.Errorf("ids = %q, %q", blocks[0].ID, blocks[1].ID)
	}
	if blocks[1].Line != 3 {
		t.Errorf("second block line = %d, want 3", blocks[1].Line)
	}
}
