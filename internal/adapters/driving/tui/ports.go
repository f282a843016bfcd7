// Package tui provides the interactive terminal editor for Markdown AI.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// Ports aggregates everything the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor persists documents and enforces title uniqueness.
	Editor driving.EditorService

	// Share publishes read-only document copies. Optional.
	Share driving.ShareService

	// Assist provides AI editing operations. Optional.
	Assist driving.AssistService

	// Assets stores uploaded images. Optional; uploads are disabled
	// when nil.
	Assets driven.AssetStore

	// OwnerID is the identity documents are saved under.
	OwnerID string

	// InitialTitle seeds the editor title, typically from a file name.
	InitialTitle string

	// InitialContent seeds the editor buffer.
	InitialContent string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Editor == nil {
		return ErrMissingEditorService
	}
	return nil
}

// FileReloadedMsg is sent by the file watcher when the edited file
// changes on disk.
type FileReloadedMsg struct {
	Path    string
	Content string
}
