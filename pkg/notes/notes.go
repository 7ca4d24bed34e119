// Package notes stores story theme notes.
//
// A theme note is a short piece of prose a writer keeps about a thematic
// thread ("the cost of loyalty", "water as memory"). Notes are stored as
// JSON files in a config directory, one file per note, keyed by a UUID.
// The store is safe for concurrent use within a process; across processes
// the filesystem's atomic writes keep individual notes consistent.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Note is a single theme note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists theme notes as JSON files under a base directory.
type Store struct {
	mu      sync.RWMutex
	baseDir string
}

// NewStore creates a note store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/quillpilot/notes/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "quillpilot", "notes")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create notes dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) notePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Create adds a new note with a generated UUID and returns it.
func (s *Store) Create(ctx context.Context, title, body string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "note title cannot be empty")
	}

	now := time.Now().UTC()
	n := &Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.write(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Get retrieves a note by ID.
func (s *Store) Get(ctx context.Context, id string) (*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.notePath(id))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNoteNotFound, "note %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("read note file: %w", err)
	}

	var n Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse note: %w", err)
	}
	return &n, nil
}

// Update replaces a note's title and body, bumping UpdatedAt.
func (s *Store) Update(ctx context.Context, id, title, body string) (*Note, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) != "" {
		n.Title = title
	}
	n.Body = body
	n.UpdatedAt = time.Now().UTC()
	if err := s.write(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes a note.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.notePath(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeNoteNotFound, "note %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("remove note file: %w", err)
	}
	return nil
}

// List returns all notes, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read notes dir: %w", err)
	}

	var notes []Note
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var n Note
		if err := json.Unmarshal(data, &n); err != nil {
			continue
		}
		notes = append(notes, n)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

// Path returns the base directory for note files.
func (s *Store) Path() string {
	return s.baseDir
}

func (s *Store) write(n *Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	if err := os.WriteFile(s.notePath(n.ID), data, 0600); err != nil {
		return fmt.Errorf("write note file: %w", err)
	}
	return nil
}
