package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// ShareStore is an in-memory driven.ShareStore.
type ShareStore struct {
	mu     sync.RWMutex
	shares map[string]domain.SharedDocument
}

var _ driven.ShareStore = (*ShareStore)(nil)

// NewShareStore creates an empty in-memory share store.
func NewShareStore() *ShareStore {
	return &ShareStore{shares: make(map[string]domain.SharedDocument)}
}

// Save inserts or replaces a shared document by id.
func (s *ShareStore) Save(ctx context.Context, doc *domain.SharedDocument) error {
	if doc.ID == "" {
		return fmt.Errorf("share id: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shares[doc.ID] = *doc
	return nil
}

// Get returns the shared document with the given id.
func (s *ShareStore) Get(ctx context.Context, id string) (*domain.SharedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.shares[id]
	if !ok {
		return nil, fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

// IncrementViews bumps the view counter for a shared document.
func (s *ShareStore) IncrementViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.shares[id]
	if !ok {
		return fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}
	doc.Views++
	s.shares[id] = doc
	return nil
}
