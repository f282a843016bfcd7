package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/keymap"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/messages"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/views/documents"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/views/editor"
	"github.com/vishnuprksh/Markdown-AI/internal/core/services"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the active keybindings.
	keymap *keymap.KeyMap

	// editorView is the split source/preview editor.
	editorView *editor.View

	// documentsView lists the user's saved documents.
	documentsView *documents.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	var uploads *services.UploadCoordinator
	if ports.Assets != nil {
		uploads = services.NewUploadCoordinator(ports.Assets)
	}

	editorView := editor.NewView(s, km, ports.Editor, ports.Assist, uploads, ports.OwnerID)
	if ports.InitialTitle != "" || ports.InitialContent != "" {
		editorView.SetInitialDocument(ports.InitialTitle, ports.InitialContent)
	}
	documentsView := documents.NewView(s, ports.Editor, ports.OwnerID)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		editorView:    editorView,
		documentsView: documentsView,
		currentView:   messages.ViewEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Markdown AI"),
		a.editorView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.editorView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global bindings
		switch {
		case msg.String() == "ctrl+c":
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Documents) && a.currentView == messages.ViewEditor:
			a.currentView = messages.ViewDocuments
			return a, a.documentsView.Init()
		case keymap.Matches(msg.String(), a.keymap.Help) && a.currentView != messages.ViewHelp:
			a.currentView = messages.ViewHelp
			return a, nil
		}

		switch a.currentView {
		case messages.ViewEditor:
			a.editorView, cmd = a.editorView.Update(msg)
			a.err = a.editorView.Err()
			return a, cmd

		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewEditor
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewDocuments {
			return a, a.documentsView.Init()
		}
		return a, nil

	case messages.DocumentSelected:
		a.editorView.LoadRecord(&msg.Document)
		a.currentView = messages.ViewEditor
		return a, nil

	case messages.DocumentsLoaded, messages.DocumentDeleted:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case FileReloadedMsg:
		a.editorView.ReloadContent(msg.Content)
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
	}

	// Everything else goes to the active view
	switch a.currentView {
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
		a.err = a.editorView.Err()
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewHelp:
		// Help view does not handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewEditor:
		return a.editorView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.editorView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Editor:
  ctrl+s      Save document
  ctrl+z/y    Undo / Redo
  ctrl+p      Toggle preview scroll sync
  ctrl+b      Attach image at cursor
  ctrl+r      AI enhance document
  ctrl+o      Open document list
  tab         Switch editor/preview pane

Documents:
  j/k, ↑/↓    Navigate
  enter       Open document
  d           Delete document
  esc         Back to editor

Global:
  ctrl+g      This help
  ctrl+q      Quit

[esc] back to editor`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.editorView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
}
