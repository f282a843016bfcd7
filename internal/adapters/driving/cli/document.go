package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage saved documents",
	Long:  `List, view, export, or delete documents in your collection.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print document content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentExportCmd = &cobra.Command{
	Use:   "export [doc-id]",
	Short: "Export a document to a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentExport,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// exportOut is a flag for the export command.
var exportOut string

func init() {
	documentExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (defaults to <title>.md)")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentExportCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	owner := currentOwnerID()
	ctx := context.Background()

	docs, err := editorService.ListByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents found for user: %s\n", owner)
		return nil
	}

	cmd.Printf("Documents for %s:\n\n", owner)
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title:   %s\n", docs[i].Title)
		cmd.Printf("    Updated: %s\n", docs[i].UpdatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	docID := args[0]
	ctx := context.Background()

	doc, err := editorService.Load(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Owner:    %s\n", doc.OwnerID)
	cmd.Printf("  Size:     %d bytes\n", len(doc.Content))
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	doc, err := editorService.Load(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document content: %w", err)
	}

	cmd.Println(doc.Content)
	return nil
}

func runDocumentExport(cmd *cobra.Command, args []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	doc, err := editorService.Load(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	out := exportOut
	if out == "" {
		out = exportFileName(doc.Title)
	}

	if err := os.WriteFile(out, []byte(doc.Content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	cmd.Printf("Exported %s to %s\n", doc.Title, out)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	docID := args[0]
	if err := editorService.Delete(context.Background(), docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", docID)
	return nil
}

// exportFileName derives a safe .md file name from a document title.
func exportFileName(title string) string {
	name := strings.TrimSpace(title)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	if name == "" {
		name = "document"
	}
	return filepath.Clean(name + ".md")
}
