package documents

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storemem "github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/storage/memory"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/messages"
	"github.com/vishnuprksh/Markdown-AI/internal/core/services"
)

func newTestView(t *testing.T) (*View, *services.EditorService) {
	t.Helper()
	svc := services.NewEditorService(storemem.NewDocumentStore())
	v := NewView(nil, svc, "user-1")
	v.SetDimensions(80, 24)
	return v, svc
}

func seedDocuments(t *testing.T, svc *services.EditorService, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := svc.Save(context.Background(), "user-1", title, "# "+title, "")
		require.NoError(t, err)
	}
}

func TestView_InitLoadsDocuments(t *testing.T) {
	v, svc := newTestView(t)
	seedDocuments(t, svc, "Alpha", "Beta")

	cmd := v.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.DocumentsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Documents, 2)

	v, _ = v.Update(loaded)
	assert.Equal(t, 2, v.Count())
	assert.Contains(t, v.View(), "Alpha")
}

func TestView_EnterEmitsDocumentSelected(t *testing.T) {
	v, svc := newTestView(t)
	seedDocuments(t, svc, "Alpha")

	msg := v.Init()()
	v, _ = v.Update(msg)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	selected, ok := cmd().(messages.DocumentSelected)
	require.True(t, ok)
	assert.Equal(t, "Alpha", selected.Document.Title)
}

func TestView_EnterWithEmptyListIsNoop(t *testing.T) {
	v, _ := newTestView(t)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	_ = v
}

func TestView_DeleteRemovesDocument(t *testing.T) {
	v, svc := newTestView(t)
	seedDocuments(t, svc, "Alpha")

	v, _ = v.Update(v.Init()().(messages.DocumentsLoaded))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)

	deleted, ok := cmd().(messages.DocumentDeleted)
	require.True(t, ok)
	require.NoError(t, deleted.Err)

	// The deletion triggers a reload
	v, reload := v.Update(deleted)
	require.NotNil(t, reload)
	v, _ = v.Update(reload().(messages.DocumentsLoaded))

	assert.Zero(t, v.Count())
}

func TestView_EscReturnsToEditor(t *testing.T) {
	v, _ := newTestView(t)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewEditor, changed.View)
	_ = v
}

func TestView_LoadError(t *testing.T) {
	v := NewView(nil, nil, "user-1")

	msg := v.Init()()
	loaded, ok := msg.(messages.DocumentsLoaded)
	require.True(t, ok)
	require.Error(t, loaded.Err)

	v, _ = v.Update(loaded)
	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "Error:")
}

func TestView_NavigationKeys(t *testing.T) {
	v, svc := newTestView(t)
	seedDocuments(t, svc, "Alpha", "Beta", "Gamma")

	v, _ = v.Update(v.Init()().(messages.DocumentsLoaded))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())
}
