package mcp

import (
	"context"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// mockEditorService is a mock implementation of driving.EditorService.
type mockEditorService struct {
	savedID   string
	document  *domain.DocumentRecord
	documents []domain.DocumentRecord
	err       error

	lastOwnerID string
	lastTitle   string
	lastContent string
}

func (m *mockEditorService) Save(_ context.Context, ownerID, title, content, _ string) (string, error) {
	m.lastOwnerID = ownerID
	m.lastTitle = title
	m.lastContent = content
	return m.savedID, m.err
}

func (m *mockEditorService) GenerateUniqueTitle(_ context.Context, _, base string) (string, error) {
	return base, m.err
}

func (m *mockEditorService) Load(_ context.Context, _ string) (*domain.DocumentRecord, error) {
	return m.document, m.err
}

func (m *mockEditorService) ListByOwner(_ context.Context, _ string) ([]domain.DocumentRecord, error) {
	return m.documents, m.err
}

func (m *mockEditorService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockShareService is a mock implementation of driving.ShareService.
type mockShareService struct {
	shareID string
	share   *domain.SharedDocument
	err     error
}

func (m *mockShareService) Create(_ context.Context, _, _, _ string, _ bool) (string, error) {
	return m.shareID, m.err
}

func (m *mockShareService) Get(_ context.Context, _ string) (*domain.SharedDocument, error) {
	return m.share, m.err
}

func (m *mockShareService) ShareURL(shareID string) string {
	return "http://localhost:3000/share/" + shareID
}

func (m *mockShareService) RenderHTML(_ *domain.SharedDocument) string {
	return "<html></html>"
}
