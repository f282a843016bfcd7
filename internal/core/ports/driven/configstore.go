package driven

// ConfigStore provides access to editor configuration such as the
// default owner identity, LLM connection settings and the share base
// URL. Implementations handle persistence and type conversion; keys
// use dotted notation ("llm.base_url", "editor.history_capacity").
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	// The boolean reports whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value. Returns "" when the key is
	// missing or holds a different type.
	GetString(key string) string

	// GetInt retrieves an integer value. Returns 0 when the key is
	// missing or holds a different type.
	GetInt(key string) int

	// GetBool retrieves a boolean value. Returns false when the key is
	// missing or holds a different type.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value. Returns nil when
	// the key is missing or holds a different type.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
