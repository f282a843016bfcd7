// Command markdown-ai is a terminal markdown editor with live preview,
// bounded undo history, image attachments, document sharing and
// optional AI assistance backed by a local Ollama instance.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/assets/filesystem"
	configfile "github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/config/file"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/llm/ollama"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/storage/sqlite"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/cli"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/services"
	"github.com/vishnuprksh/Markdown-AI/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Driven adapters. Empty directories resolve to ~/.markdown-ai.
	configStore, err := configfile.NewConfigStore(os.Getenv("MARKDOWN_AI_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	store, err := sqlite.NewStore(os.Getenv("MARKDOWN_AI_DATA_DIR"))
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	defer store.Close()

	assetStore, err := filesystem.NewAssetStore(configStore.GetString("assets.dir"))
	if err != nil {
		return fmt.Errorf("initialising asset store: %w", err)
	}

	// Core services.
	editorService := services.NewEditorService(store.DocumentStore())
	shareService := services.NewShareService(store.ShareStore(), configStore.GetString("share.base_url"))
	assistService := services.NewAssistService(newLLMService(configStore))

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		logger.Warn("prompt store unavailable, using built-in prompts: %v", err)
	} else {
		assistService.SetPromptStore(promptStore)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Editor: editorService,
		Share:  shareService,
		Assist: assistService,
		Config: configStore,
		Assets: assetStore,
	})

	return cli.Execute()
}

// newLLMService builds the Ollama client when AI assistance is enabled
// and reachable. Returns nil otherwise, which leaves assist commands
// reporting that the service is unavailable.
func newLLMService(cfg driven.ConfigStore) driven.LLMService {
	enabled, ok := cfg.Get("llm.enabled")
	if ok {
		if b, isBool := enabled.(bool); isBool && !b {
			return nil
		}
	}

	llm := ollama.NewLLMService(ollama.LLMConfig{
		BaseURL: cfg.GetString("llm.base_url"),
		Model:   cfg.GetString("llm.model"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := llm.Ping(ctx); err != nil {
		logger.Debug("ollama not reachable, assist disabled: %v", err)
		return nil
	}
	return llm
}
