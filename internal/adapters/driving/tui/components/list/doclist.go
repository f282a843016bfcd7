// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// DocList displays saved documents in a navigable list, newest first.
type DocList struct {
	documents []domain.DocumentRecord
	selected  int
	styles    *styles.Styles
	width     int
	height    int
}

// NewDocList creates a new document list component.
func NewDocList(s *styles.Styles) *DocList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &DocList{
		documents: nil,
		selected:  0,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// Init initialises the document list.
func (d *DocList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (d *DocList) Update(msg tea.Msg) (*DocList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			d.MoveUp()
		case tea.KeyDown:
			d.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			d.MoveUp()
		case "j":
			d.MoveDown()
		}
	}
	return d, nil
}

// View renders the document list.
func (d *DocList) View() string {
	if len(d.documents) == 0 {
		return d.styles.Muted.Render("No documents")
	}

	lines := make([]string, 0, len(d.documents)*2+2)

	// Header
	header := d.styles.Subtitle.Render(fmt.Sprintf("Documents (%d)", len(d.documents)))
	lines = append(lines, header, "")

	// Each entry takes 2 lines (title + timestamp)
	visibleCount := (d.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if d.selected >= visibleCount {
		start = d.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(d.documents) {
		end = len(d.documents)
	}

	for i := start; i < end; i++ {
		line := d.renderDocument(i, &d.documents[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDocument formats a single document entry.
func (d *DocList) renderDocument(index int, doc *domain.DocumentRecord) string {
	indicator := "  "
	if index == d.selected {
		indicator = "> "
	}

	title := doc.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := d.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	size := fmt.Sprintf("%d bytes", len(doc.Content))

	var titleLine string
	if index == d.selected {
		titleLine = d.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, size))
	} else {
		titleLine = d.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			d.styles.Muted.Render(size)
	}

	updatedLine := d.styles.Muted.Render("    " + doc.UpdatedAt.Format("2006-01-02 15:04"))

	return titleLine + "\n" + updatedLine
}

// SetDocuments updates the document list.
func (d *DocList) SetDocuments(documents []domain.DocumentRecord) {
	d.documents = documents
	d.selected = 0
}

// Documents returns the current documents.
func (d *DocList) Documents() []domain.DocumentRecord {
	return d.documents
}

// Selected returns the index of the selected document.
func (d *DocList) Selected() int {
	return d.selected
}

// SetSelected sets the selected index.
func (d *DocList) SetSelected(index int) {
	if index >= 0 && index < len(d.documents) {
		d.selected = index
	}
}

// SelectedDocument returns the currently selected document, or nil if none.
func (d *DocList) SelectedDocument() *domain.DocumentRecord {
	if len(d.documents) == 0 || d.selected < 0 || d.selected >= len(d.documents) {
		return nil
	}
	return &d.documents[d.selected]
}

// MoveUp moves selection up.
func (d *DocList) MoveUp() {
	if d.selected > 0 {
		d.selected--
	}
}

// MoveDown moves selection down.
func (d *DocList) MoveDown() {
	if d.selected < len(d.documents)-1 {
		d.selected++
	}
}

// SetDimensions sets the component dimensions.
func (d *DocList) SetDimensions(width, height int) {
	d.width = width
	d.height = height
}

// Width returns the current width.
func (d *DocList) Width() int {
	return d.width
}

// Height returns the current height.
func (d *DocList) Height() int {
	return d.height
}

// Count returns the number of documents.
func (d *DocList) Count() int {
	return len(d.documents)
}

// IsEmpty returns whether the list is empty.
func (d *DocList) IsEmpty() bool {
	return len(d.documents) == 0
}
