// Package cli implements the command-line driving adapter. Commands are
// wired to core services through package-level variables set by the
// composition root before Execute runs.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
	"github.com/vishnuprksh/Markdown-AI/internal/logger"
)

// version is the application version, overridden at build time via
// -ldflags "-X .../cli.version=v1.2.3".
var version = "dev"

// Services injected by the composition root.
var (
	editorService driving.EditorService
	shareService  driving.ShareService
	assistService driving.AssistService
	configStore   driven.ConfigStore
	assetStore    driven.AssetStore
)

// Persistent flags.
var (
	verboseFlag bool
	userFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "markdown-ai",
	Short: "AI-assisted markdown editor",
	Long: `Markdown AI is a terminal markdown editor with live preview,
bounded undo history, AI-assisted editing, and document sharing.

Run without arguments to open the editor, or use subcommands to manage
saved documents, shares, and settings.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runEdit,
}

// Services bundles everything the CLI needs from the composition root.
type Services struct {
	Editor driving.EditorService
	Share  driving.ShareService
	Assist driving.AssistService
	Config driven.ConfigStore
	Assets driven.AssetStore
}

// SetServices installs the services the commands run against.
func SetServices(s Services) {
	editorService = s.Editor
	shareService = s.Share
	assistService = s.Assist
	configStore = s.Config
	assetStore = s.Assets
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Owner ID for document operations")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentOwnerID resolves the owner for document operations: the --user
// flag, then the MARKDOWN_AI_USER environment variable, then the
// configured user.id, then "local".
func currentOwnerID() string {
	if owner := strings.TrimSpace(userFlag); owner != "" {
		return owner
	}
	if owner := strings.TrimSpace(os.Getenv("MARKDOWN_AI_USER")); owner != "" {
		return owner
	}
	if configStore != nil {
		if owner := strings.TrimSpace(configStore.GetString("user.id")); owner != "" {
			return owner
		}
	}
	return "local"
}
