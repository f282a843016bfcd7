package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	assetmem "github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/assets/memory"
	storemem "github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/storage/memory"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/services"
)

// echoLLM is a canned LLM for command tests.
type echoLLM struct {
	response string
	err      error
}

func (e *echoLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return e.response, e.err
}
func (e *echoLLM) ModelName() string { return "echo" }

func (e *echoLLM) Ping(_ context.Context) error { return nil }

func (e *echoLLM) Close() error { return nil }

// setupTestServices wires memory-backed services into the package-level
// variables and seeds one document for user "local". The returned cleanup
// restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	prevEditor := editorService
	prevShare := shareService
	prevAssist := assistService
	prevConfig := configStore
	prevAssets := assetStore
	prevUser := userFlag

	docs := storemem.NewDocumentStore()
	shares := storemem.NewShareStore()

	editorService = services.NewEditorService(docs)
	shareService = services.NewShareService(shares, "http://localhost:3000")
	assistService = services.NewAssistService(&echoLLM{response: "assisted output"})
	assetStore = assetmem.NewAssetStore()
	userFlag = "local"

	id, err := editorService.Save(context.Background(), "local", "Test Document", "# Test Document\n\nSeed content.", "")
	if err != nil {
		t.Fatalf("seeding document: %v", err)
	}
	seededDocID = id

	return func() {
		editorService = prevEditor
		shareService = prevShare
		assistService = prevAssist
		configStore = prevConfig
		assetStore = prevAssets
		userFlag = prevUser
		seededDocID = ""
	}
}

// seededDocID is the ID of the document created by setupTestServices.
var seededDocID string

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "markdown-ai", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "edit")
	assert.Contains(t, commandNames, "document")
	assert.Contains(t, commandNames, "share")
	assert.Contains(t, commandNames, "assist")
	assert.Contains(t, commandNames, "settings")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("user"))
}

func TestCurrentOwnerID(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		prev := userFlag
		userFlag = "flag-user"
		defer func() { userFlag = prev }()

		assert.Equal(t, "flag-user", currentOwnerID())
	})

	t.Run("environment fallback", func(t *testing.T) {
		prev := userFlag
		userFlag = ""
		defer func() { userFlag = prev }()
		t.Setenv("MARKDOWN_AI_USER", "env-user")

		assert.Equal(t, "env-user", currentOwnerID())
	})

	t.Run("defaults to local", func(t *testing.T) {
		prev := userFlag
		prevConfig := configStore
		userFlag = ""
		configStore = nil
		defer func() {
			userFlag = prev
			configStore = prevConfig
		}()
		t.Setenv("MARKDOWN_AI_USER", "")

		assert.Equal(t, "local", currentOwnerID())
	})
}

func TestSetServices(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	editor := services.NewEditorService(storemem.NewDocumentStore())
	SetServices(Services{Editor: editor})

	assert.Same(t, editor, editorService)
	assert.Nil(t, shareService)
}
