package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// Built-in prompt templates, used when no prompt store is attached or a
// named prompt cannot be loaded.
const (
	defaultEnhancePrompt = "You are an expert markdown editor assistant. Improve and enhance the following markdown content while maintaining its structure and meaning. Make the content more engaging, fix any grammatical errors, improve clarity, and enhance formatting where appropriate. Keep all existing markdown syntax and structure intact. Only return the improved markdown content without any additional explanations or wrapper text."

	defaultGeneratePrompt = "You are an expert markdown content creator. Based on the following prompt, create comprehensive, well-structured markdown content. Use appropriate headers, formatting, lists, and other markdown features to make the content engaging and readable. Only return the markdown content without any additional explanations or wrapper text."

	defaultFixGrammarPrompt = "Fix any grammatical errors, improve sentence structure, and enhance the clarity of the following markdown content. Maintain all markdown formatting and structure. Only return the corrected content without any additional explanations."
)

// AssistService runs editing assistance through the configured LLM. All
// operations return domain.ErrAssistUnavailable when no LLM is wired,
// so the editor works fully without one.
type AssistService struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

var (
	_ driving.AssistService   = (*AssistService)(nil)
	_ driven.PromptStoreAware = (*AssistService)(nil)
)

// NewAssistService creates an assist service. llm may be nil.
func NewAssistService(llm driven.LLMService) *AssistService {
	return &AssistService{llm: llm}
}

// SetPromptStore attaches a store of user-editable prompt templates.
func (s *AssistService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Available reports whether an LLM is configured.
func (s *AssistService) Available() bool {
	return s.llm != nil
}

// Enhance rewrites content for clarity and formatting. A non-empty
// prompt overrides the default instruction template.
func (s *AssistService) Enhance(ctx context.Context, content, prompt string) (string, error) {
	template := strings.TrimSpace(prompt)
	if template == "" {
		template = s.loadPrompt(driven.PromptEnhance, defaultEnhancePrompt)
	}
	input := fmt.Sprintf("%s\n\nMarkdown content to enhance:\n\n%s", template, content)
	return s.generate(ctx, input)
}

// Generate creates new markdown content from a prompt.
func (s *AssistService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required: %w", domain.ErrInvalidInput)
	}
	template := s.loadPrompt(driven.PromptGenerate, defaultGeneratePrompt)
	input := fmt.Sprintf("%s\n\nPrompt: %s", template, prompt)
	return s.generate(ctx, input)
}

// FixGrammar corrects grammar and sentence structure in content.
func (s *AssistService) FixGrammar(ctx context.Context, content string) (string, error) {
	template := s.loadPrompt(driven.PromptFixGrammar, defaultFixGrammarPrompt)
	input := fmt.Sprintf("%s\n\nContent to fix:\n\n%s", template, content)
	return s.generate(ctx, input)
}

func (s *AssistService) generate(ctx context.Context, input string) (string, error) {
	if s.llm == nil {
		return "", domain.ErrAssistUnavailable
	}
	out, err := s.llm.Generate(ctx, input, driven.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("llm generate: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// loadPrompt resolves a named template from the prompt store, falling
// back to the built-in text when no store is attached or loading fails.
func (s *AssistService) loadPrompt(name, fallback string) string {
	if s.prompts == nil {
		return fallback
	}
	template, err := s.prompts.Load(name)
	if err != nil || strings.TrimSpace(template) == "" {
		return fallback
	}
	return template
}
