package render

import (
	"fmt"
	"strings"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/styles"
)

// Terminal renders a single entry for interactive display, styled with
// lipgloss. Used by `ad show` and the TUI detail pane.
func Terminal(e docstore.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", styles.KindBadge(e.Kind), styles.Title.Render(e.Name), styles.ID.Render(e.ID))
	b.WriteString(styles.Dim.Render(fmt.Sprintf("%s:%d (%s)", e.File, e.Line, e.Language)))
	b.WriteString("\n")

	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}

	if len(e.Params) > 0 {
		b.WriteString("\n" + styles.Title.Render("Parameters") + "\n")
		for _, p := range e.Params {
			fmt.Fprintf(&b, "  %s %s  %s\n",
				styles.ParamName.Render(p.Name),
				styles.TypeName.Render(p.Type),
				p.Description)
		}
	}

	if e.Returns != nil {
		b.WriteString("\n" + styles.Title.Render("Returns") + " ")
		b.WriteString(styles.TypeName.Render(e.Returns.Type))
		if e.Returns.Description != "" {
			fmt.Fprintf(&b, "  %s", e.Returns.Description)
		}
		b.WriteString("\n")
	}

	if e.Example != nil {
		b.WriteString("\n" + styles.Title.Render("Example") + "\n")
		for _, line := range strings.Split(e.Example.Code, "\n") {
			b.WriteString(styles.CodeBlock.Render(line) + "\n")
		}
	}

	return b.String()
}
