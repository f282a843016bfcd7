package driven

import (
	"context"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// DocumentStore persists document records.
// Backed by SQLite for local storage.
type DocumentStore interface {
	// Save stores or updates a document record. The record's ID must be set.
	Save(ctx context.Context, doc *domain.DocumentRecord) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.DocumentRecord, error)

	// FindByOwnerAndTitle returns records owned by ownerID whose trimmed
	// title exactly matches title. When excludeID is non-empty, a record
	// with that ID is omitted from the result (used when updating an
	// existing document under its own title).
	FindByOwnerAndTitle(ctx context.Context, ownerID, title, excludeID string) ([]domain.DocumentRecord, error)

	// ListByOwner returns all records for an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error)

	// Delete removes a document record.
	Delete(ctx context.Context, id string) error
}

// ShareStore persists published document copies.
type ShareStore interface {
	// Save stores a shared document. The record's ID must be set.
	Save(ctx context.Context, doc *domain.SharedDocument) error

	// Get retrieves a shared document by its share ID.
	Get(ctx context.Context, id string) (*domain.SharedDocument, error)

	// IncrementViews bumps the view counter for a share.
	IncrementViews(ctx context.Context, id string) error
}
