package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// List loads all entries from the docs directory with bounded concurrency.
// A missing docs directory yields an empty list.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read docs dir: %w", err)
	}

	paths := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		entries []Entry
		errCh   = make(chan error, 1)
		wg      sync.WaitGroup
		jobs    = make(chan string)
	)

	worker := func() {
		defer wg.Done()
		for path := range jobs {
			item, err := readEntryFile(path)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
			mu.Lock()
			entries = append(entries, item)
			mu.Unlock()
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	for _, path := range paths {
		select {
		case jobs <- path:
		case err := <-errCh:
			close(jobs)
			wg.Wait()
			return nil, err
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	return entries, nil
}

func readEntryFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read entry: %w", err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("parse entry %s: %w", filepath.Base(path), err)
	}
	if err := e.Validate(); err != nil {
		return Entry{}, fmt.Errorf("invalid entry %s: %w", filepath.Base(path), err)
	}
	return e, nil
}
