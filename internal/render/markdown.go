// Package render turns doc entries into markdown and terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/query"
)

// Markdown renders entries as a single markdown document. Entries are
// ordered by source location so the document is stable across scans.
func Markdown(title string, entries []docstore.Entry) string {
	sorted := append([]docstore.Entry(nil), entries...)
	query.SortByLocation(sorted)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)

	for _, e := range sorted {
		b.WriteString("\n")
		writeEntry(&b, e)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e docstore.Entry) {
	if e.Kind == "init" {
		fmt.Fprintf(b, "## %s (`%s`) *constructor*\n\n", e.Name, e.ID)
	} else {
		fmt.Fprintf(b, "## %s (`%s`)\n\n", e.Name, e.ID)
	}
	fmt.Fprintf(b, "*%s:%d, %s*\n", e.File, e.Line, e.Language)

	if e.Description != "" {
		fmt.Fprintf(b, "\n%s\n", e.Description)
	}

	if len(e.Params) > 0 {
		b.WriteString("\n| Parameter | Type | Description |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, p := range e.Params {
			fmt.Fprintf(b, "| %s | `%s` | %s |\n", escapePipes(p.Name), escapePipes(p.Type), escapePipes(p.Description))
		}
	}

	if e.Returns != nil {
		fmt.Fprintf(b, "\n**Returns** `%s`", e.Returns.Type)
		if e.Returns.Description != "" {
			fmt.Fprintf(b, ": %s", e.Returns.Description)
		}
		b.WriteString("\n")
	}

	if e.Example != nil {
		fmt.Fprintf(b, "\n```%s\n%s\n```\n", e.Example.Language, e.Example.Code)
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
