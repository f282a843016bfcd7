package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// MockEditorService implements driving.EditorService for testing.
type MockEditorService struct {
	SaveFunc                func(ctx context.Context, ownerID, title, content, existingID string) (string, error)
	GenerateUniqueTitleFunc func(ctx context.Context, ownerID, baseTitle string) (string, error)
	LoadFunc                func(ctx context.Context, id string) (*domain.DocumentRecord, error)
	ListByOwnerFunc         func(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error)
	DeleteFunc              func(ctx context.Context, id string) error
}

func (m *MockEditorService) Save(
	ctx context.Context, ownerID, title, content, existingID string,
) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ownerID, title, content, existingID)
	}
	return "doc-1", nil
}

func (m *MockEditorService) GenerateUniqueTitle(
	ctx context.Context, ownerID, baseTitle string,
) (string, error) {
	if m.GenerateUniqueTitleFunc != nil {
		return m.GenerateUniqueTitleFunc(ctx, ownerID, baseTitle)
	}
	return baseTitle, nil
}

func (m *MockEditorService) Load(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockEditorService) ListByOwner(
	ctx context.Context, ownerID string,
) ([]domain.DocumentRecord, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockEditorService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Editor:  &MockEditorService{},
		OwnerID: "local",
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingEditor(t *testing.T) {
	ports := &Ports{
		Editor: nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingEditorService)
}
