// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the split editor and preview view.
	ViewEditor ViewType = iota
	// ViewDocuments lists the user's saved documents.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DocumentSaved carries the outcome of a save. On a title collision
// Conflict is set and no write happened.
type DocumentSaved struct {
	DocumentID string
	Title      string
	Conflict   *domain.TitleConflictError
	Err        error
}

// DocumentsLoaded carries the owner's document list.
type DocumentsLoaded struct {
	Documents []domain.DocumentRecord
	Err       error
}

// DocumentSelected signals a document was chosen from the list.
type DocumentSelected struct {
	Document domain.DocumentRecord
}

// DocumentDeleted signals a document was removed from the collection.
type DocumentDeleted struct {
	DocumentID string
	Err        error
}

// UploadStarted signals an upload began and its placeholder was inserted.
type UploadStarted struct {
	Token  string
	Marker string
}

// UploadFinished carries the terminal outcome of an upload transfer.
type UploadFinished struct {
	Result domain.UploadResult
}

// AssistCompleted carries the output of an AI assist operation.
type AssistCompleted struct {
	Output string
	Err    error
}

// ShareCreated carries the outcome of publishing a document.
type ShareCreated struct {
	ShareID string
	URL     string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
