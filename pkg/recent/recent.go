// Package recent maintains the recent-documents list shown on the
// welcome screen.
//
// The list is bounded, de-duplicated by path, ordered most recent first,
// and persisted as a single JSON file so it survives restarts.
package recent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// DefaultLimit caps the number of remembered documents.
const DefaultLimit = 10

// Entry is one remembered document.
type Entry struct {
	Path     string    `json:"path"`
	Title    string    `json:"title,omitempty"`
	OpenedAt time.Time `json:"opened_at"`
}

// List is a persistent recent-documents list.
type List struct {
	mu    sync.Mutex
	path  string
	limit int
}

// NewList creates a list persisted at path.
// If path is empty, defaults to ~/.config/quillpilot/recent.json.
// If limit is not positive, DefaultLimit is used.
func NewList(path string, limit int) (*List, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(home, ".config", "quillpilot", "recent.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &List{path: path, limit: limit}, nil
}

// Touch records that a document was opened now. An existing entry for
// the same path moves to the front; the list is truncated to the limit.
func (l *List) Touch(docPath, title string) error {
	if err := errors.ValidateDocumentPath(docPath); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}

	kept := make([]Entry, 0, len(entries)+1)
	kept = append(kept, Entry{Path: docPath, Title: title, OpenedAt: time.Now().UTC()})
	for _, e := range entries {
		if e.Path == docPath {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > l.limit {
		kept = kept[:l.limit]
	}

	return l.save(kept)
}

// Entries returns the list, most recent first.
func (l *List) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Remove drops the entry for docPath, if present.
func (l *List) Remove(docPath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Path != docPath {
			kept = append(kept, e)
		}
	}
	return l.save(kept)
}

// Clear empties the list.
func (l *List) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(nil)
}

// Path returns the backing file path.
func (l *List) Path() string {
	return l.path
}

func (l *List) load() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recent list: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt list - start over rather than failing every open.
		return nil, nil
	}
	return entries, nil
}

func (l *List) save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recent list: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0600); err != nil {
		return fmt.Errorf("write recent list: %w", err)
	}
	return nil
}
