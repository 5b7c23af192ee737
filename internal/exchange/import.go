// Package exchange reads doc entries from JSONL exports so docs extracted
// elsewhere (CI, another checkout, an older tool) can be merged into the
// local store.
package exchange

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mkrogh/annodoc/internal/docstore"
)

// ParseFile reads a JSONL export and returns all entries.
func ParseFile(path string) ([]docstore.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads doc entries from a JSONL reader, one JSON object per line.
// Blank lines are skipped.
func Parse(r io.Reader) ([]docstore.Entry, error) {
	var entries []docstore.Entry
	scanner := bufio.NewScanner(r)
	// Increase buffer for entries with large examples
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e docstore.Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// FilterImportable returns the entries that pass validation, along with the
// per-entry errors for the ones that don't.
func FilterImportable(entries []docstore.Entry) ([]docstore.Entry, []error) {
	var (
		out  []docstore.Entry
		errs []error
	)
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, e)
	}
	return out, errs
}
