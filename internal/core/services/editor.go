package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// DefaultSuggestionProbeCap bounds how many title candidates
// GenerateUniqueTitle probes before falling back to a timestamp suffix.
const DefaultSuggestionProbeCap = 100

// EditorService persists and retrieves documents, enforcing per-owner
// title uniqueness on save.
type EditorService struct {
	docStore driven.DocumentStore
	probeCap int
	now      func() time.Time
	newID    func() string
}

var _ driving.EditorService = (*EditorService)(nil)

// NewEditorService creates an editor service backed by the given
// document store.
func NewEditorService(docStore driven.DocumentStore) *EditorService {
	return &EditorService{
		docStore: docStore,
		probeCap: DefaultSuggestionProbeCap,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Save validates and persists a document. An empty existingID creates a
// new document; a non-empty one updates the stored record's content.
// When another document of the same owner already carries the title, no
// write happens and a *domain.TitleConflictError with a free suggested
// title is returned. Returns the document id on success.
func (s *EditorService) Save(ctx context.Context, ownerID, title, content, existingID string) (string, error) {
	if s.docStore == nil {
		return "", fmt.Errorf("document store: %w", domain.ErrNotImplemented)
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fmt.Errorf("owner id is required: %w", domain.ErrInvalidInput)
	}
	title = domain.NormalizeTitle(title)

	dups, err := s.docStore.FindByOwnerAndTitle(ctx, ownerID, title, existingID)
	if err != nil {
		return "", fmt.Errorf("checking title %q: %w", title, err)
	}
	if len(dups) > 0 {
		suggested, err := s.GenerateUniqueTitle(ctx, ownerID, title)
		if err != nil {
			return "", fmt.Errorf("suggesting title for %q: %w", title, err)
		}
		return "", &domain.TitleConflictError{
			OwnerID:   ownerID,
			Title:     title,
			Suggested: suggested,
		}
	}

	now := s.now().UTC()
	if existingID != "" {
		rec, err := s.docStore.Get(ctx, existingID)
		if err != nil {
			return "", fmt.Errorf("loading document %s: %w", existingID, err)
		}
		rec.Content = content
		rec.UpdatedAt = now
		if err := s.docStore.Save(ctx, rec); err != nil {
			return "", fmt.Errorf("updating document %s: %w", existingID, err)
		}
		return rec.ID, nil
	}

	rec := &domain.DocumentRecord{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.docStore.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("creating document: %w", err)
	}
	return rec.ID, nil
}

// GenerateUniqueTitle returns the first free title for the owner: the
// base itself, then "base (2)", "base (3)" and so on. After the probe
// cap it gives up and appends a timestamp, which is unique enough in
// practice.
func (s *EditorService) GenerateUniqueTitle(ctx context.Context, ownerID, base string) (string, error) {
	if s.docStore == nil {
		return "", fmt.Errorf("document store: %w", domain.ErrNotImplemented)
	}
	base = domain.NormalizeTitle(base)
	candidate := base
	for n := 2; n <= s.probeCap+1; n++ {
		dups, err := s.docStore.FindByOwnerAndTitle(ctx, ownerID, candidate, "")
		if err != nil {
			return "", fmt.Errorf("probing title %q: %w", candidate, err)
		}
		if len(dups) == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (%d)", base, n)
	}
	return fmt.Sprintf("%s (%d)", base, s.now().UnixMilli()), nil
}

// Load returns the document with the given id.
func (s *EditorService) Load(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	if s.docStore == nil {
		return nil, fmt.Errorf("document store: %w", domain.ErrNotImplemented)
	}
	return s.docStore.Get(ctx, id)
}

// ListByOwner returns the owner's documents, newest first.
func (s *EditorService) ListByOwner(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error) {
	if s.docStore == nil {
		return nil, fmt.Errorf("document store: %w", domain.ErrNotImplemented)
	}
	return s.docStore.ListByOwner(ctx, ownerID)
}

// Delete removes the document with the given id.
func (s *EditorService) Delete(ctx context.Context, id string) error {
	if s.docStore == nil {
		return fmt.Errorf("document store: %w", domain.ErrNotImplemented)
	}
	return s.docStore.Delete(ctx, id)
}
