package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/config/file"
)

// setupTestConfig installs a temp-dir config store for settings tests.
func setupTestConfig(t *testing.T) func() {
	t.Helper()

	prev := configStore
	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store

	return func() {
		configStore = prev
	}
}

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commands := settingsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "path")
}

func TestSettingsShowCmd_ListsKeys(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Current Settings")
	assert.Contains(t, buf.String(), "llm.model")
	assert.Contains(t, buf.String(), "Config file:")
}

func TestSettingsSetAndGet_RoundTrip(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "llm.model", "llama3.2"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set llm.model = llama3.2")

	buf.Reset()
	rootCmd.SetArgs([]string{"settings", "get", "llm.model"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "llama3.2")
}

func TestSettingsGetCmd_UnknownKey(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "get", "nope.nothing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestSettingsCmds_NoStoreConfigured(t *testing.T) {
	prev := configStore
	configStore = nil
	defer func() { configStore = prev }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}

func TestParseSettingValue(t *testing.T) {
	assert.Equal(t, true, parseSettingValue("true"))
	assert.Equal(t, 42, parseSettingValue("42"))
	assert.Equal(t, "llama3.2", parseSettingValue("llama3.2"))
}
