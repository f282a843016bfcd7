package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Markdown AI resources.
const uriScheme = "markdown-ai://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "List of the user's saved markdown documents",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-content",
		Description: "Markdown content of a specific document",
		MIMEType:    "text/markdown",
	}, s.handleDocumentContentResource)
}

// handleDocumentsResource returns a list of the user's documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Editor.ListByOwner(ctx, s.ports.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]DocumentInfo, len(docs))
	for i := range docs {
		infos[i] = DocumentInfo{
			ID:        docs[i].ID,
			Title:     docs[i].Title,
			UpdatedAt: docs[i].UpdatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the content of one document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docID := strings.TrimPrefix(req.Params.URI, uriScheme+"documents/")
	if docID == "" || strings.Contains(docID, "/") {
		return nil, fmt.Errorf("invalid document URI: %s", req.Params.URI)
	}

	doc, err := s.ports.Editor.Load(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", docID, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Content,
		}},
	}, nil
}
