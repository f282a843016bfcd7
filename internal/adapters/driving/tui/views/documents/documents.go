// Package documents provides the saved document list view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/components/list"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/messages"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// View is the saved documents list view.
type View struct {
	styles  *styles.Styles
	editor  driving.EditorService
	ownerID string

	docList *list.DocList
	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, editor driving.EditorService, ownerID string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		editor:  editor,
		ownerID: ownerID,
		docList: list.NewDocList(s),
	}
}

// Init loads the owner's documents.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadDocuments()
}

// loadDocuments returns a command that fetches the document list.
func (v *View) loadDocuments() tea.Cmd {
	editor := v.editor
	owner := v.ownerID
	return func() tea.Msg {
		if editor == nil {
			return messages.DocumentsLoaded{Err: fmt.Errorf("editor service not available")}
		}
		docs, err := editor.ListByOwner(context.Background(), owner)
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.docList.SetDocuments(msg.Documents)
			v.err = nil
		}
		return v, nil

	case messages.DocumentDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadDocuments()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKey routes list keys.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		doc := v.docList.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		selected := *doc
		return v, func() tea.Msg {
			return messages.DocumentSelected{Document: selected}
		}

	case "d":
		doc := v.docList.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		editor := v.editor
		id := doc.ID
		return v, func() tea.Msg {
			err := editor.Delete(context.Background(), id)
			return messages.DocumentDeleted{DocumentID: id, Err: err}
		}

	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewEditor}
		}
	}

	var cmd tea.Cmd
	v.docList, cmd = v.docList.Update(msg)
	return v, cmd
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Saved Documents"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		b.WriteString(v.docList.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] open  [d] delete  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.docList.SetDimensions(width, height-6)
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.docList.Selected()
}

// Count returns the number of listed documents.
func (v *View) Count() int {
	return v.docList.Count()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
