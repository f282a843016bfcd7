package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui"
	"github.com/vishnuprksh/Markdown-AI/internal/logger"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the interactive editor",
	Long: `Launch the terminal markdown editor with live preview.

With a file argument the editor starts from that file's content; the
document is still saved to your collection, not back to the file (use
'document export' for that). The --watch flag reloads the editor when
the file changes on disk.

Controls:
  Ctrl+S     - Save document
  Ctrl+Z/Y   - Undo / Redo
  Ctrl+P     - Toggle preview scroll sync
  Ctrl+O     - Open document list
  Ctrl+Q     - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

// editWatch is a flag for the edit command.
var editWatch bool

func init() {
	editCmd.Flags().BoolVarP(&editWatch, "watch", "w", false, "Reload the editor when the file changes on disk")
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in editor: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Editor:  editorService,
		Share:   shareService,
		Assist:  assistService,
		Assets:  assetStore,
		OwnerID: currentOwnerID(),
	}

	var path string
	if len(args) > 0 {
		path = args[0]
		content, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		ports.InitialTitle = titleFromPath(path)
		ports.InitialContent = string(content)
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if editWatch {
		if path == "" {
			return errors.New("--watch requires a file argument")
		}
		watcher, err := watchFile(path, p)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer watcher.Close() //nolint:errcheck // Best-effort cleanup
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	return nil
}

// watchFile sends a FileReloadedMsg to the program whenever the file is
// written. Watching the directory survives editors that replace the file
// on save instead of writing in place.
func watchFile(path string, p *tea.Program) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close() //nolint:errcheck // Already failing
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close() //nolint:errcheck // Already failing
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				content, err := os.ReadFile(abs)
				if err != nil {
					logger.Debug("watch: failed to re-read %s: %v", abs, err)
					continue
				}
				p.Send(tui.FileReloadedMsg{Path: abs, Content: string(content)})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("watch error: %v", err)
			}
		}
	}()

	return watcher, nil
}

// titleFromPath derives a document title from a file path.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base
}
