package driving

import (
	"context"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// ShareService publishes read-only copies of documents.
type ShareService interface {
	// Create stores a published copy and returns its share ID.
	Create(ctx context.Context, ownerID, title, content string, public bool) (string, error)

	// Get fetches a shared document by share ID and increments its view
	// counter.
	Get(ctx context.Context, shareID string) (*domain.SharedDocument, error)

	// ShareURL builds the public URL for a share ID.
	ShareURL(shareID string) string

	// RenderHTML renders a self-contained HTML page for a shared
	// document, suitable for export or preview of a share.
	RenderHTML(share *domain.SharedDocument) string
}
