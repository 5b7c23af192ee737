package annotation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMarkers are the comment markers recognized when a language does not
// override them. Longest match wins, so /// is tried before //.
var DefaultMarkers = []string{"///", "//", "#"}

// Line is a single comment line with its marker already stripped.
type Line struct {
	Text   string
	Number int
}

// Diagnostic reports a non-fatal problem found while parsing annotations.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
}

// StripMarker removes a leading comment marker from a raw source line.
// Returns the comment text and whether the line was a comment at all.
func StripMarker(raw string, markers []string) (string, bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	for _, m := range markers {
		if strings.HasPrefix(trimmed, m) {
			text := trimmed[len(m):]
			// Drop the single conventional space after the marker, keep
			// deeper indentation (it matters inside example fences).
			text = strings.TrimPrefix(text, " ")
			return text, true
		}
	}
	return "", false
}

// ParseFile extracts annotation blocks from a source file.
func ParseFile(path string, markers []string) ([]Block, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	blocks, diags := ParseReader(f, path, markers)
	return blocks, diags, nil
}

// ParseReader scans a source stream, groups consecutive comment lines into
// runs, and parses each run for annotation blocks. Lines that are not
// comments only terminate runs; their content is never inspected.
func ParseReader(r io.Reader, file string, markers []string) ([]Block, []Diagnostic) {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	var (
		blocks []Block
		diags  []Diagnostic
		run    []Line
	)

	flush := func() {
		if len(run) == 0 {
			return
		}
		b, d := Parse(run, file)
		blocks = append(blocks, b...)
		diags = append(diags, d...)
		run = nil
	}

	scanner := bufio.NewScanner(r)
	// Increase buffer for long example lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text, ok := StripMarker(scanner.Text(), markers)
		if !ok {
			flush()
			continue
		}
		run = append(run, Line{Text: text, Number: lineNo})
	}
	flush()

	if err := scanner.Err(); err != nil {
		diags = append(diags, Diagnostic{File: file, Line: lineNo, Message: fmt.Sprintf("read error: %v", err)})
	}
	return blocks, diags
}

// Parse interprets one comment run. A run may contain zero or more blocks;
// each @doc or @doc.init opener starts a new one.
func Parse(lines []Line, file string) ([]Block, []Diagnostic) {
	var (
		blocks []Block
		diags  []Diagnostic

		cur       *Block
		inDesc    bool
		inExample bool
		inFence   bool
		fenceDone bool
		fenceLine int
		code      []string
	)

	closeExample := func() {
		if !inExample {
			return
		}
		if inFence {
			diags = append(diags, Diagnostic{File: file, Line: fenceLine, Message: "unterminated @example fence"})
		}
		if cur != nil && cur.Example != nil {
			cur.Example.Code = strings.Join(code, "\n")
		}
		inExample, inFence, fenceDone = false, false, false
		code = nil
	}

	closeBlock := func() {
		closeExample()
		if cur != nil {
			cur.Description = strings.TrimSpace(cur.Description)
			blocks = append(blocks, *cur)
			cur = nil
		}
		inDesc = false
	}

	for _, line := range lines {
		text := line.Text

		// Example fences are collected verbatim until the closing ```.
		if inExample {
			trimmed := strings.TrimSpace(text)
			switch {
			case !inFence && !fenceDone && trimmed == "":
				continue
			case !inFence && !fenceDone && strings.HasPrefix(trimmed, "```"):
				inFence = true
				fenceLine = line.Number
				if cur != nil && cur.Example != nil {
					cur.Example.Language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				}
				continue
			case inFence && trimmed == "```":
				inFence = false
				fenceDone = true
				continue
			case inFence:
				code = append(code, text)
				continue
			}
			// Outside the fence: fall through so a following tag is handled.
			closeExample()
		}

		tag, rest, isTag := cutTag(text)
		if !isTag {
			if inDesc && cur != nil && strings.TrimSpace(text) != "" {
				cur.Description += " " + strings.TrimSpace(text)
			}
			continue
		}

		switch tag {
		case "@doc", "@doc.init":
			closeBlock()
			id, name := cutField(rest)
			kind := KindDoc
			if tag == "@doc.init" {
				kind = KindInit
			}
			cur = &Block{
				ID:   id,
				Name: strings.TrimSpace(name),
				Kind: kind,
				File: file,
				Line: line.Number,
			}

		case "@description":
			if cur == nil {
				diags = append(diags, strayTag(file, line.Number, tag))
				continue
			}
			cur.Description = strings.TrimSpace(rest)
			inDesc = true

		case "@param":
			if cur == nil {
				diags = append(diags, strayTag(file, line.Number, tag))
				continue
			}
			inDesc = false
			name, after := cutField(rest)
			typ, desc := cutField(after)
			cur.Params = append(cur.Params, Param{
				Name:        name,
				Type:        typ,
				Description: strings.TrimSpace(desc),
			})

		case "@returns":
			if cur == nil {
				diags = append(diags, strayTag(file, line.Number, tag))
				continue
			}
			inDesc = false
			typ, desc := cutField(rest)
			if cur.Returns != nil {
				diags = append(diags, Diagnostic{File: file, Line: line.Number, Message: fmt.Sprintf("duplicate @returns in block %q", cur.ID)})
				continue
			}
			cur.Returns = &Return{Type: typ, Description: strings.TrimSpace(desc)}

		case "@example":
			if cur == nil {
				diags = append(diags, strayTag(file, line.Number, tag))
				continue
			}
			inDesc = false
			cur.Example = &Example{}
			inExample = true

		default:
			diags = append(diags, Diagnostic{File: file, Line: line.Number, Message: fmt.Sprintf("unknown tag %s", tag)})
		}
	}
	closeBlock()

	return blocks, diags
}

func strayTag(file string, line int, tag string) Diagnostic {
	return Diagnostic{File: file, Line: line, Message: fmt.Sprintf("%s before @doc", tag)}
}

// cutTag splits "@tag rest of line" if the line starts with an annotation tag.
func cutTag(text string) (tag, rest string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "@") {
		return "", "", false
	}
	tag, rest = cutField(trimmed)
	return tag, rest, true
}

// cutField returns the first whitespace-delimited field and the remainder.
func cutField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}
