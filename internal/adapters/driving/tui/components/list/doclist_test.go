package list

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

func testDocuments() []domain.DocumentRecord {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	return []domain.DocumentRecord{
		{ID: "doc-1", Title: "First", Content: "# First", UpdatedAt: now},
		{ID: "doc-2", Title: "Second", Content: "# Second", UpdatedAt: now.Add(-time.Hour)},
		{ID: "doc-3", Title: "Third", Content: "# Third", UpdatedAt: now.Add(-2 * time.Hour)},
	}
}

func TestNewDocList(t *testing.T) {
	dl := NewDocList(nil)

	require.NotNil(t, dl)
	assert.True(t, dl.IsEmpty())
	assert.Zero(t, dl.Count())
}

func TestDocList_SetDocuments(t *testing.T) {
	dl := NewDocList(nil)

	dl.SetDocuments(testDocuments())

	assert.Equal(t, 3, dl.Count())
	assert.Equal(t, 0, dl.Selected())
	assert.False(t, dl.IsEmpty())
}

func TestDocList_SetDocuments_ResetsSelection(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments(testDocuments())
	dl.MoveDown()
	dl.MoveDown()

	dl.SetDocuments(testDocuments()[:1])

	assert.Equal(t, 0, dl.Selected())
}

func TestDocList_Navigation(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments(testDocuments())

	dl.MoveDown()
	assert.Equal(t, 1, dl.Selected())

	dl.MoveDown()
	dl.MoveDown() // Clamped at last element
	assert.Equal(t, 2, dl.Selected())

	dl.MoveUp()
	assert.Equal(t, 1, dl.Selected())

	dl.MoveUp()
	dl.MoveUp() // Clamped at first element
	assert.Equal(t, 0, dl.Selected())
}

func TestDocList_Update_KeyNavigation(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments(testDocuments())

	dl, _ = dl.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, dl.Selected())

	dl, _ = dl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, dl.Selected())

	dl, _ = dl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, dl.Selected())

	dl, _ = dl.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, dl.Selected())
}

func TestDocList_SelectedDocument(t *testing.T) {
	dl := NewDocList(nil)

	assert.Nil(t, dl.SelectedDocument())

	dl.SetDocuments(testDocuments())
	dl.MoveDown()

	doc := dl.SelectedDocument()
	require.NotNil(t, doc)
	assert.Equal(t, "doc-2", doc.ID)
}

func TestDocList_SetSelected_Bounds(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments(testDocuments())

	dl.SetSelected(2)
	assert.Equal(t, 2, dl.Selected())

	dl.SetSelected(99)
	assert.Equal(t, 2, dl.Selected())

	dl.SetSelected(-1)
	assert.Equal(t, 2, dl.Selected())
}

func TestDocList_View_Empty(t *testing.T) {
	dl := NewDocList(nil)

	assert.Contains(t, dl.View(), "No documents")
}

func TestDocList_View_ShowsDocuments(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments(testDocuments())
	dl.SetDimensions(80, 20)

	view := dl.View()

	assert.Contains(t, view, "Documents (3)")
	assert.Contains(t, view, "First")
	assert.Contains(t, view, "2026-04-02")
}

func TestDocList_View_UntitledFallback(t *testing.T) {
	dl := NewDocList(nil)
	dl.SetDocuments([]domain.DocumentRecord{{ID: "doc-1"}})

	assert.Contains(t, dl.View(), "(Untitled)")
}

func TestDocList_SetDimensions(t *testing.T) {
	dl := NewDocList(nil)

	dl.SetDimensions(120, 40)

	assert.Equal(t, 120, dl.Width())
	assert.Equal(t, 40, dl.Height())
}
