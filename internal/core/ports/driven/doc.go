// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Document persistence with owner-scoped title lookup
//   - AssetStore: Binary asset uploads (images pasted into documents)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ShareStore: Published document persistence. Without it, sharing is disabled.
//   - LLMService: Language model operations. Without it, AI assistance is disabled.
//   - PromptStore: Custom prompt templates. Without it, embedded defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
