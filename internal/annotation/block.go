// Package annotation defines the @doc annotation block grammar and its parser.
package annotation

import (
	"fmt"
	"strings"
)

const (
	// KindDoc marks a plain documented declaration (@doc).
	KindDoc = "doc"
	// KindInit marks a constructor or initializer declaration (@doc.init).
	KindInit = "init"
)

// Param describes one @param tag: name, type, free-text description.
// Order within a block is significant.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Return describes the @returns tag.
type Return struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Example holds the fenced code block following an @example tag.
type Example struct {
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// Block is one parsed annotation block: everything between a @doc (or
// @doc.init) opener and the end of the comment run or the next opener.
type Block struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Description string   `json:"description,omitempty"`
	Params      []Param  `json:"params,omitempty"`
	Returns     *Return  `json:"returns,omitempty"`
	Example     *Example `json:"example,omitempty"`
	File        string   `json:"file"`
	Line        int      `json:"line"`
}

// Validate checks a block for structural problems. Parse is permissive so
// that one bad tag doesn't lose the whole block; Validate is where scan and
// validate commands decide whether a block is acceptable.
func (b Block) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("block at %s:%d: missing id", b.File, b.Line)
	}
	if !validID(b.ID) {
		return fmt.Errorf("block %q at %s:%d: id must be lowercase letters, digits or underscores", b.ID, b.File, b.Line)
	}
	if b.Name == "" {
		return fmt.Errorf("block %q at %s:%d: missing display name", b.ID, b.File, b.Line)
	}
	if b.Kind != KindDoc && b.Kind != KindInit {
		return fmt.Errorf("block %q at %s:%d: unknown kind %q", b.ID, b.File, b.Line, b.Kind)
	}
	for i, p := range b.Params {
		if p.Name == "" || p.Type == "" || p.Description == "" {
			return fmt.Errorf("block %q at %s:%d: @param %d needs name, type and description", b.ID, b.File, b.Line, i+1)
		}
	}
	if b.Returns != nil && b.Returns.Type == "" {
		return fmt.Errorf("block %q at %s:%d: @returns needs a type", b.ID, b.File, b.Line)
	}
	if b.Example != nil && strings.TrimSpace(b.Example.Code) == "" {
		return fmt.Errorf("block %q at %s:%d: @example has no code", b.ID, b.File, b.Line)
	}
	return nil
}

func validID(id string) bool {
	for _, r := range id {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '_' {
			continue
		}
		return false
	}
	return len(id) > 0
}
