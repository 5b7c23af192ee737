// Package docstore persists extracted doc entries as JSON files in
// .annodoc/docs/<id>.json, one file per entry.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkrogh/annodoc/internal/annotation"
)

// ErrNotFound is returned when a doc entry doesn't exist.
var ErrNotFound = errors.New("doc entry not found")

// Entry is an annotation block plus scan metadata.
type Entry struct {
	annotation.Block
	Language    string    `json:"language"`
	SourceHash  string    `json:"source_hash,omitempty"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// Store manages doc entry files in the .annodoc/docs/ directory.
type Store struct {
	dir string
}

// NewStore creates a store for the given repo root. The root should contain
// an .annodoc/ directory.
func NewStore(root string) *Store {
	return &Store{dir: filepath.Join(root, ".annodoc", "docs")}
}

// Dir returns the directory entries are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Write saves an entry, overwriting any existing entry with the same ID.
func (s *Store) Write(e Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	if err := os.WriteFile(s.path(e.ID), data, 0o644); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

// Read loads an entry by ID. Returns ErrNotFound if no entry exists.
func (s *Store) Read(id string) (Entry, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Entry{}, fmt.Errorf("read entry: %w", err)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("parse entry %s: %w", id, err)
	}
	if err := e.Validate(); err != nil {
		return Entry{}, fmt.Errorf("invalid entry %s: %w", id, err)
	}
	return e, nil
}

// Delete removes an entry. Deleting a missing entry is not an error.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Sync replaces the stored set with the given entries: every entry is
// written, and stored entries whose ID is not in the set are removed.
func (s *Store) Sync(entries []Entry) error {
	keep := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := s.Write(e); err != nil {
			return err
		}
		keep[e.ID] = struct{}{}
	}

	ids, err := s.ids()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := keep[id]; ok {
			continue
		}
		if err := s.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ids() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read docs dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
