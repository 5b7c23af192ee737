// Package scanner walks a source tree and extracts annotation blocks.
package scanner

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mkrogh/annodoc/internal/annotation"
	"github.com/mkrogh/annodoc/internal/config"
)

// Found is one extracted block together with the language it came from.
type Found struct {
	Block    annotation.Block
	Language string
}

// Result aggregates a whole scan.
type Result struct {
	Found        []Found
	Diagnostics  []annotation.Diagnostic
	FilesScanned int

	// FileHashes maps relative file paths to content hashes, recorded so
	// stored entries can be traced back to the exact source they came from.
	FileHashes map[string]string
}

// Scan walks root, parses every recognized source file, and returns the
// extracted blocks with per-file diagnostics. Block file paths are relative
// to root, slash-separated. Blocks that fail validation, and blocks whose ID
// was already claimed by an earlier file, are reported as diagnostics and
// dropped from the result.
func Scan(root string, cfg config.Config) (Result, error) {
	var res Result
	seen := make(map[string]annotation.Block)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		lang, ok := DetectLanguage(p)
		if !ok || !selected(rel, cfg) {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		blocks, diags := annotation.ParseReader(bytes.NewReader(data), rel, markersFor(lang, cfg.Markers))

		sum := sha256.Sum256(data)
		if res.FileHashes == nil {
			res.FileHashes = make(map[string]string)
		}
		res.FileHashes[rel] = hex.EncodeToString(sum[:])[:12]

		res.FilesScanned++
		res.Diagnostics = append(res.Diagnostics, diags...)

		for _, b := range blocks {
			if err := b.Validate(); err != nil {
				res.Diagnostics = append(res.Diagnostics, annotation.Diagnostic{
					File: rel, Line: b.Line, Message: err.Error(),
				})
				continue
			}
			if prev, dup := seen[b.ID]; dup {
				res.Diagnostics = append(res.Diagnostics, annotation.Diagnostic{
					File: rel, Line: b.Line,
					Message: fmt.Sprintf("duplicate id %q, first defined at %s:%d", b.ID, prev.File, prev.Line),
				})
				continue
			}
			seen[b.ID] = b
			res.Found = append(res.Found, Found{Block: b, Language: lang.Name})
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("scan %s: %w", root, err)
	}

	return res, nil
}

// selected reports whether a relative path passes the include/exclude globs.
// An empty include list selects everything recognized.
func selected(rel string, cfg config.Config) bool {
	if len(cfg.Include) > 0 {
		matched := false
		for _, pattern := range cfg.Include {
			if matchGlob(pattern, rel) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pattern := range cfg.Exclude {
		if matchGlob(pattern, rel) {
			return false
		}
	}
	return true
}

// matchGlob matches a slash-separated path against a glob pattern where **
// spans any number of path segments.
func matchGlob(pattern, rel string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}
	if pat[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			if matchSegments(pat[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	ok, err := path.Match(pat[0], segs[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], segs[1:])
}
