package query

import (
	"sort"
	"strings"

	"github.com/mkrogh/annodoc/internal/docstore"
)

// Filter describes filtering criteria for doc entries.
type Filter struct {
	Kind       string
	File       string
	Language   string
	IDPrefix   string
	HasExample *bool
}

// Apply filters entries according to Filter fields.
func Apply(entries []docstore.Entry, f Filter) []docstore.Entry {
	out := make([]docstore.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Kind != "" && e.Kind != f.Kind {
			continue
		}
		if f.File != "" && e.File != f.File {
			continue
		}
		if f.Language != "" && e.Language != f.Language {
			continue
		}
		if f.IDPrefix != "" && !strings.HasPrefix(e.ID, f.IDPrefix) {
			continue
		}
		if f.HasExample != nil && (e.Example != nil) != *f.HasExample {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortByLocation sorts entries by file, line, then id, so output is stable
// across scans.
func SortByLocation(entries []docstore.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].File != entries[j].File {
			return entries[i].File < entries[j].File
		}
		if entries[i].Line != entries[j].Line {
			return entries[i].Line < entries[j].Line
		}
		return strings.Compare(entries[i].ID, entries[j].ID) < 0
	})
}
