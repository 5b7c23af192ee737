package scanner

import (
	"time"

	"github.com/mkrogh/annodoc/internal/docstore"
)

// Entries converts a scan result into storable doc entries, stamping each
// with its source file hash and the extraction time.
func Entries(res Result, at time.Time) []docstore.Entry {
	out := make([]docstore.Entry, 0, len(res.Found))
	for _, f := range res.Found {
		out = append(out, docstore.Entry{
			Block:       f.Block,
			Language:    f.Language,
			SourceHash:  res.FileHashes[f.Block.File],
			ExtractedAt: at,
		})
	}
	return out
}
