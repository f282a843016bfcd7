package mcp

import (
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor persists and retrieves documents.
	Editor driving.EditorService

	// Share publishes read-only document snapshots.
	Share driving.ShareService

	// Assist runs AI editing assistance.
	Assist driving.AssistService

	// OwnerID scopes all document operations to one user.
	OwnerID string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Editor == nil {
		return ErrMissingEditorService
	}
	// Share and Assist are optional
	return nil
}
