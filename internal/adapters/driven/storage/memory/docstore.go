package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// DocumentStore is an in-memory driven.DocumentStore. Title uniqueness
// is not enforced here; it is the caller's duplicate check that keeps
// titles unique, so concurrent-save races remain observable in tests.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]domain.DocumentRecord
}

var _ driven.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore creates an empty in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]domain.DocumentRecord)}
}

// Save inserts or replaces a document record by id.
func (s *DocumentStore) Save(ctx context.Context, doc *domain.DocumentRecord) error {
	if doc.ID == "" {
		return fmt.Errorf("document id: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = *doc
	return nil
}

// Get returns the document with the given id.
func (s *DocumentStore) Get(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

// FindByOwnerAndTitle returns the owner's documents whose title matches
// exactly, skipping excludeID when non-empty.
func (s *DocumentStore) FindByOwnerAndTitle(ctx context.Context, ownerID, title, excludeID string) ([]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.DocumentRecord
	for _, doc := range s.docs {
		if doc.OwnerID != ownerID || doc.Title != title {
			continue
		}
		if excludeID != "" && doc.ID == excludeID {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

// ListByOwner returns the owner's documents, newest first.
func (s *DocumentStore) ListByOwner(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.DocumentRecord
	for _, doc := range s.docs {
		if doc.OwnerID == ownerID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return strings.Compare(out[i].ID, out[j].ID) < 0
	})
	return out, nil
}

// Delete removes the document with the given id.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(s.docs, id)
	return nil
}
