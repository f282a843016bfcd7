package driving

import (
	"context"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// EditorService persists editing-session snapshots and enforces per-owner
// title uniqueness.
type EditorService interface {
	// Save validates and persists a document snapshot. When existingID is
	// non-empty the matching record is updated in place (content and
	// updated timestamp only); otherwise a new record is created. Returns
	// the record ID on success, or a *domain.TitleConflictError carrying
	// a suggested alternative title when the title collides. A conflict
	// performs zero writes.
	Save(ctx context.Context, ownerID, title, content, existingID string) (string, error)

	// GenerateUniqueTitle returns baseTitle, or baseTitle suffixed with
	// " (n)" for the smallest n >= 2 with no conflict for the owner.
	GenerateUniqueTitle(ctx context.Context, ownerID, baseTitle string) (string, error)

	// Load retrieves a document by ID.
	Load(ctx context.Context, id string) (*domain.DocumentRecord, error)

	// ListByOwner returns all documents for an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error)

	// Delete removes a document from the collection.
	Delete(ctx context.Context, id string) error
}
