package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkrogh/annodoc/internal/config"
)

const rustFixture = `/// @doc calculator Calculator
/// @description Structure to perform mathematical calculations
pub struct Calculator;

impl Calculator {
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

const pythonFixture = `# @doc.init math_utils MathUtils
# @description Mathematical utilities
class MathUtils:
    pass
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScanMixedLanguages(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/calc.rs":  rustFixture,
		"lib/utils.py": pythonFixture,
		"README.md":    "# not source\n",
	})

	res, err := Scan(root, config.Default())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if res.FilesScanned != 2 {
		t.Errorf("FilesScanned = %d, want 2", res.FilesScanned)
	}
	if len(res.Found) != 3 {
		t.Fatalf("got %d blocks, want 3", len(res.Found))
	}

	byID := make(map[string]Found)
	for _, f := range res.Found {
		byID[f.Block.ID] = f
	}
	if got := byID["calculator_add"].Language; got != "rust" {
		t.Errorf("calculator_add language = %q, want rust", got)
	}
	if got := byID["math_utils"].Language; got != "python" {
		t.Errorf("math_utils language = %q, want python", got)
	}
	if got := byID["calculator"].Block.File; got != "src/calc.rs" {
		t.Errorf("calculator file = %q, want src/calc.rs", got)
	}
}

func TestScanSkipsHiddenAndVendorDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/calc.rs":        rustFixture,
		".git/hook.py":       pythonFixture,
		".annodoc/fake.py":   pythonFixture,
		"vendor/dep/calc.rs": rustFixture,
	})

	res, err := Scan(root, config.Default())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if res.FilesScanned != 1 {
		t.Errorf("FilesScanned = %d, want 1", res.FilesScanned)
	}
}

func TestScanIncludeExclude(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/calc.rs":           rustFixture,
		"src/generated/calc.py": pythonFixture,
		"tools/extra.py":        pythonFixture,
	})

	cfg := config.Config{
		Version: 1,
		Include: []string{"src/**"},
		Exclude: []string{"src/generated/**"},
	}

	res, err := Scan(root, cfg)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if res.FilesScanned != 1 {
		t.Errorf("FilesScanned = %d, want 1", res.FilesScanned)
	}
	for _, f := range res.Found {
		if f.Block.File != "src/calc.rs" {
			t.Errorf("unexpected file scanned: %s", f.Block.File)
		}
	}
}

func TestScanDuplicateIDs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a/calc.rs": rustFixture,
		"b/calc.rs": rustFixture,
	})

	res, err := Scan(root, config.Default())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(res.Found) != 2 {
		t.Errorf("got %d blocks, want 2 (first occurrence wins)", len(res.Found))
	}
	if len(res.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(res.Diagnostics), res.Diagnostics)
	}
	if !strings.Contains(res.Diagnostics[0].Message, "duplicate id") {
		t.Errorf("diagnostic = %q", res.Diagnostics[0].Message)
	}
}

func TestScanInvalidBlockBecomesDiagnostic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"bad.py": "# @doc.init broken\n# @description Missing display name\ndef broken():\n    pass\n",
	})

	res, err := Scan(root, config.Default())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(res.Found) != 0 {
		t.Errorf("invalid block should be dropped, got %v", res.Found)
	}
	if len(res.Diagnostics) != 1 || !strings.Contains(res.Diagnostics[0].Message, "missing display name") {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestEntriesCarryScanMetadata(t *testing.T) {
	root := writeTree(t, map[string]string{"src/calc.rs": rustFixture})

	res, err := Scan(root, config.Default())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	at := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	entries := Entries(res, at)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if len(e.SourceHash) != 12 {
			t.Errorf("entry %s hash = %q, want 12 hex chars", e.ID, e.SourceHash)
		}
		if !e.ExtractedAt.Equal(at) {
			t.Errorf("entry %s ExtractedAt = %v", e.ID, e.ExtractedAt)
		}
	}
}

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"src/**", "src/a/b/calc.rs", true},
		{"src/**", "src", true},
		{"src/*.rs", "src/calc.rs", true},
		{"src/*.rs", "src/a/calc.rs", false},
		{"**/calc.rs", "deep/nested/calc.rs", true},
		{"**/*.py", "utils.py", true},
		{"lib/*.py", "src/utils.py", false},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+" vs "+tc.path, func(t *testing.T) {
			if got := matchGlob(tc.pattern, tc.path); got != tc.want {
				t.Errorf("matchGlob(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
			}
		})
	}
}
