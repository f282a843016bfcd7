package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the AI provider, share base URL, and other options.

Settings are stored as TOML and addressed with dot-notation keys, for
example "llm.model" or "share.base_url".`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Set a configuration value. Values are stored as booleans or integers
when they parse as such, otherwise as strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsKeys are the keys shown by the show command, with fallbacks
// applied by the composition root when unset.
var settingsKeys = []string{
	"user.id",
	"llm.base_url",
	"llm.model",
	"llm.enabled",
	"share.base_url",
	"editor.history_capacity",
	"editor.capture_threshold",
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	for _, key := range settingsKeys {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %s: (not set)\n", key)
			continue
		}
		cmd.Printf("  %s: %v\n", key, value)
	}

	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("setting %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseSettingValue(raw)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// parseSettingValue converts a raw CLI string to a typed config value.
func parseSettingValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if b, err := strconv.ParseBool(trimmed); err == nil {
		return b
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	return raw
}
