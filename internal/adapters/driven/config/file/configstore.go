package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// configFileName is the TOML file the editor settings live in.
const configFileName = "config.toml"

// ConfigStore persists editor settings in a TOML file. Nested tables
// are flattened into dotted keys on load, so [llm] base_url = "..."
// and llm.base_url = "..." read back identically. All getters are safe
// for concurrent use with Set.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a TOML-backed config store rooted at
// configDir. An empty configDir defaults to ~/.markdown-ai. Existing
// settings are loaded eagerly; a missing file starts empty.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		configDir = filepath.Join(home, ".markdown-ai")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, configFileName),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a raw configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers unmarshal as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

// GetStringSlice retrieves a string slice configuration value.
// Non-string elements of a mixed TOML array are skipped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

// Set stores a configuration value and persists it immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file. Caller must hold the lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file. A missing file resets
// the store to empty without error.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	s.data = flatten(loaded, "")
	return nil
}

// flatten converts nested tables to dotted keys, so {"llm": {"model":
// "x"}} becomes {"llm.model": "x"}.
func flatten(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any)

	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flatten(nested, full) {
				out[k] = v
			}
			continue
		}
		out[full] = value
	}

	return out
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
