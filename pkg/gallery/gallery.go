// Package gallery persists finished word-cloud documents so writers can
// revisit earlier snapshots of a manuscript.
//
// Two backends are provided: an in-memory store for tests and single
// sessions, and a MongoDB store for a shared gallery.
package gallery

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Document is a saved word cloud with its provenance.
type Document struct {
	ID        string      `json:"id" bson:"_id"`
	Title     string      `json:"title" bson:"title"`
	Source    string      `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	Cloud     cloud.Cloud `json:"cloud" bson:"cloud"`
}

// Store persists gallery documents.
type Store interface {
	// Save stores doc, assigning an ID and timestamp if unset.
	Save(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]Document, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// prepare fills generated fields before a save.
func prepare(doc *Document) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is nil")
	}
	if len(doc.Cloud.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "document has no cloud items")
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	return nil
}

// =============================================================================
// In-memory store
// =============================================================================

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

// Save stores doc.
func (s *MemoryStore) Save(_ context.Context, doc *Document) error {
	if err := prepare(doc); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = *doc
	return nil
}

// Get retrieves a document by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return Document{}, errors.New(errors.ErrCodeDocumentNotFound, "gallery document not found: %s", id)
	}
	return doc, nil
}

// List returns all documents, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a document by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return errors.New(errors.ErrCodeDocumentNotFound, "gallery document not found: %s", id)
	}
	delete(s.docs, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(context.Context) error {
	return nil
}
