package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptEnhance: `You are an expert markdown editor assistant. Improve and enhance the following markdown content while maintaining its structure and meaning. Make the content more engaging, fix any grammatical errors, improve clarity, and enhance formatting where appropriate. Keep all existing markdown syntax and structure intact. Only return the improved markdown content without any additional explanations or wrapper text.`,

	driven.PromptGenerate: `You are an expert markdown content creator. Based on the following prompt, create comprehensive, well-structured markdown content. Use appropriate headers, formatting, lists, and other markdown features to make the content engaging and readable. Only return the markdown content without any additional explanations or wrapper text.`,

	driven.PromptFixGrammar: `Fix any grammatical errors, improve sentence structure, and enhance the clarity of the following markdown content. Maintain all markdown formatting and structure. Only return the corrected content without any additional explanations.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.markdown-ai/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".markdown-ai", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Markdown AI Prompts

This directory contains customisable prompts used by the AI assist features.

## Files

- ` + "`enhance.txt`" + ` - Improves existing markdown while keeping its structure
- ` + "`generate.txt`" + ` - Creates new markdown content from a prompt
- ` + "`fix_grammar.txt`" + ` - Corrects grammar without rewording

## Customisation

Edit any file to customise AI behaviour. Changes take effect on the next
command or after restarting the editor.

Each file is an instruction preamble; the document content or user prompt
is appended after it when the request is sent to the model.
`
	return os.WriteFile(path, []byte(content), 0600)
}
