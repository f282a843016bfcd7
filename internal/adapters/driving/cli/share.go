package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Publish and inspect document shares",
	Long:  `Publish read-only snapshots of your documents and view existing shares.`,
}

var shareCreateCmd = &cobra.Command{
	Use:   "create [doc-id]",
	Short: "Publish a document and print its share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareCreate,
}

var shareViewCmd = &cobra.Command{
	Use:   "view [share-id]",
	Short: "Print a shared document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareView,
}

var shareExportCmd = &cobra.Command{
	Use:   "export [share-id]",
	Short: "Export a share as a standalone HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareExport,
}

// Share command flags.
var (
	sharePrivate   bool
	shareExportOut string
)

func init() {
	shareCreateCmd.Flags().BoolVar(&sharePrivate, "private", false, "Mark the share as view-only instead of public")
	shareExportCmd.Flags().StringVarP(&shareExportOut, "out", "o", "share.html", "Output HTML file path")

	shareCmd.AddCommand(shareCreateCmd)
	shareCmd.AddCommand(shareViewCmd)
	shareCmd.AddCommand(shareExportCmd)
	rootCmd.AddCommand(shareCmd)
}

func runShareCreate(cmd *cobra.Command, args []string) error {
	if shareService == nil {
		return errors.New("share service not configured")
	}
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	docID := args[0]
	ctx := context.Background()

	doc, err := editorService.Load(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	shareID, err := shareService.Create(ctx, currentOwnerID(), doc.Title, doc.Content, !sharePrivate)
	if err != nil {
		return fmt.Errorf("failed to create share: %w", err)
	}

	cmd.Printf("Shared %s\n", doc.Title)
	cmd.Printf("  Share ID: %s\n", shareID)
	cmd.Printf("  URL:      %s\n", shareService.ShareURL(shareID))
	return nil
}

func runShareView(cmd *cobra.Command, args []string) error {
	if shareService == nil {
		return errors.New("share service not configured")
	}

	share, err := shareService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get share: %w", err)
	}

	cmd.Printf("Share: %s\n\n", share.ID)
	cmd.Printf("  Title:  %s\n", share.Title)
	cmd.Printf("  Public: %t\n", share.Public)
	cmd.Printf("  Views:  %d\n", share.Views)
	cmd.Printf("  URL:    %s\n", shareService.ShareURL(share.ID))
	cmd.Println()
	cmd.Println(share.Content)
	return nil
}

func runShareExport(cmd *cobra.Command, args []string) error {
	if shareService == nil {
		return errors.New("share service not configured")
	}

	share, err := shareService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get share: %w", err)
	}

	html := shareService.RenderHTML(share)
	if err := os.WriteFile(shareExportOut, []byte(html), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", shareExportOut, err)
	}

	cmd.Printf("Exported share %s to %s\n", share.ID, shareExportOut)
	return nil
}
