package scanner

import (
	"path/filepath"
	"strings"

	"github.com/mkrogh/annodoc/internal/annotation"
)

// Language describes a recognized source language: its display name and the
// comment markers that may open an annotation line.
type Language struct {
	Name    string
	Markers []string
}

var languages = map[string]Language{
	".go":  {Name: "go", Markers: []string{"//"}},
	".rs":  {Name: "rust", Markers: []string{"///", "//"}},
	".py":  {Name: "python", Markers: []string{"#"}},
	".c":   {Name: "c", Markers: []string{"//"}},
	".h":   {Name: "c", Markers: []string{"//"}},
	".cc":  {Name: "cpp", Markers: []string{"///", "//"}},
	".cpp": {Name: "cpp", Markers: []string{"///", "//"}},
	".hpp": {Name: "cpp", Markers: []string{"///", "//"}},
}

// DetectLanguage returns the language for a file path, keyed by extension.
func DetectLanguage(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := languages[ext]
	return lang, ok
}

// Extensions returns the recognized file extensions, for directory walking.
func Extensions() []string {
	out := make([]string, 0, len(languages))
	for ext := range languages {
		out = append(out, ext)
	}
	return out
}

// markersFor returns the markers to use for a language, honoring a config
// override when present.
func markersFor(lang Language, override []string) []string {
	if len(override) > 0 {
		return override
	}
	if len(lang.Markers) > 0 {
		return lang.Markers
	}
	return annotation.DefaultMarkers
}
