// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Markdown AI. It enables AI assistants like Claude to read, save
// and share the user's markdown documents.
package mcp

import "errors"

// ErrMissingEditorService is returned when the editor service is not provided.
var ErrMissingEditorService = errors.New("mcp: editor service is required")
