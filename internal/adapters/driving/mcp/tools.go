package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// SaveDocumentInput is the input schema for the save_document tool.
type SaveDocumentInput struct {
	Title      string `json:"title" jsonschema:"the document title, unique per user"`
	Content    string `json:"content" jsonschema:"the markdown content to save"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"existing document id to update; omit to create a new document"`
}

// SaveDocumentOutput is the output schema for the save_document tool.
type SaveDocumentOutput struct {
	DocumentID     string `json:"document_id,omitempty"`
	TitleConflict  bool   `json:"title_conflict,omitempty"`
	SuggestedTitle string `json:"suggested_title,omitempty"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentInfo `json:"documents"`
	Count     int            `json:"count"`
}

// DocumentInfo summarises one stored document.
type DocumentInfo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the id of the document to fetch"`
}

// GetDocumentOutput is the output schema for the get_document tool.
type GetDocumentOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ShareDocumentInput is the input schema for the share_document tool.
type ShareDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the id of the document to share"`
	Private    bool   `json:"private,omitempty" jsonschema:"mark the share as view-only instead of public"`
}

// ShareDocumentOutput is the output schema for the share_document tool.
type ShareDocumentOutput struct {
	ShareID  string `json:"share_id"`
	ShareURL string `json:"share_url"`
}

// listDocumentsInput is empty; the tool takes no arguments.
type listDocumentsInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_document",
		Description: "Save a markdown document, creating it or updating an existing one",
	}, s.handleSaveDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the user's saved markdown documents",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch the full content of a saved document",
	}, s.handleGetDocument)

	if s.ports.Share != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "share_document",
			Description: "Publish a read-only snapshot of a document and return its share link",
		}, s.handleShareDocument)
	}
}

// handleSaveDocument handles the save_document tool invocation. A title
// conflict is reported in the output rather than as an error so the
// assistant can retry with the suggested title.
func (s *Server) handleSaveDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveDocumentInput,
) (*mcp.CallToolResult, SaveDocumentOutput, error) {
	id, err := s.ports.Editor.Save(ctx, s.ports.OwnerID, input.Title, input.Content, input.DocumentID)
	if err != nil {
		if conflict, ok := domain.IsTitleConflict(err); ok {
			return nil, SaveDocumentOutput{
				TitleConflict:  true,
				SuggestedTitle: conflict.Suggested,
			}, nil
		}
		return nil, SaveDocumentOutput{}, err
	}

	return nil, SaveDocumentOutput{DocumentID: id}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ listDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Editor.ListByOwner(ctx, s.ports.OwnerID)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentInfo, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentInfo{
			ID:        docs[i].ID,
			Title:     docs[i].Title,
			UpdatedAt: docs[i].UpdatedAt,
		}
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, GetDocumentOutput, error) {
	doc, err := s.ports.Editor.Load(ctx, input.DocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, GetDocumentOutput{}, fmt.Errorf("document %s not found", input.DocumentID)
		}
		return nil, GetDocumentOutput{}, err
	}

	return nil, GetDocumentOutput{
		ID:      doc.ID,
		Title:   doc.Title,
		Content: doc.Content,
	}, nil
}

// handleShareDocument handles the share_document tool invocation.
func (s *Server) handleShareDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ShareDocumentInput,
) (*mcp.CallToolResult, ShareDocumentOutput, error) {
	doc, err := s.ports.Editor.Load(ctx, input.DocumentID)
	if err != nil {
		return nil, ShareDocumentOutput{}, err
	}

	shareID, err := s.ports.Share.Create(ctx, s.ports.OwnerID, doc.Title, doc.Content, !input.Private)
	if err != nil {
		return nil, ShareDocumentOutput{}, err
	}

	return nil, ShareDocumentOutput{
		ShareID:  shareID,
		ShareURL: s.ports.Share.ShareURL(shareID),
	}, nil
}
