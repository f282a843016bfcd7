package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "AI-assisted markdown editing",
	Long: `Run AI operations over markdown content.

Content is read from the given file, or from stdin when the file
argument is "-" or omitted. Results are printed to stdout, so output
can be redirected back into a file.`,
}

var assistEnhanceCmd = &cobra.Command{
	Use:   "enhance [file]",
	Short: "Improve formatting and clarity of markdown content",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAssistEnhance,
}

var assistGenerateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate new markdown content from a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAssistGenerate,
}

var assistFixGrammarCmd = &cobra.Command{
	Use:   "fix-grammar [file]",
	Short: "Fix grammar and spelling without rewording",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAssistFixGrammar,
}

// assistPrompt is a flag for the enhance command.
var assistPrompt string

func init() {
	assistEnhanceCmd.Flags().StringVarP(&assistPrompt, "prompt", "p", "", "Custom instruction replacing the default")

	assistCmd.AddCommand(assistEnhanceCmd)
	assistCmd.AddCommand(assistGenerateCmd)
	assistCmd.AddCommand(assistFixGrammarCmd)
	rootCmd.AddCommand(assistCmd)
}

func runAssistEnhance(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	content, err := readAssistInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := assistService.Enhance(cmd.Context(), content, assistPrompt)
	if err != nil {
		return fmt.Errorf("failed to enhance content: %w", err)
	}

	cmd.Println(result)
	return nil
}

func runAssistGenerate(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	prompt := strings.Join(args, " ")
	result, err := assistService.Generate(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("failed to generate content: %w", err)
	}

	cmd.Println(result)
	return nil
}

func runAssistFixGrammar(cmd *cobra.Command, args []string) error {
	if assistService == nil {
		return errors.New("assist service not configured")
	}

	content, err := readAssistInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := assistService.FixGrammar(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("failed to fix grammar: %w", err)
	}

	cmd.Println(result)
	return nil
}

// readAssistInput reads content from the file argument or stdin.
func readAssistInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
