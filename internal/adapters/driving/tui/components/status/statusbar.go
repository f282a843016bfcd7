// Package status provides the editor status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/keymap"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
)

// State represents the current editor state for display.
type State string

const (
	StateReady     State = "ready"
	StateDirty     State = "dirty"
	StateSaving    State = "saving"
	StateSaved     State = "saved"
	StateUploading State = "uploading"
	StateError     State = "error"
)

// Bar displays editor state, document info, and keybinding hints.
type Bar struct {
	styles         *styles.Styles
	keymap         *keymap.KeyMap
	state          State
	message        string
	title          string
	pendingUploads int
	syncEnabled    bool
	width          int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:      s,
		keymap:      km,
		state:       StateReady,
		syncEnabled: true,
		width:       80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders document title and editor state.
func (s *Bar) renderLeft() string {
	title := s.title
	if title == "" {
		title = "Untitled"
	}

	parts := []string{s.styles.Normal.Render(title)}

	switch s.state {
	case StateDirty:
		parts = append(parts, s.styles.Warning.Render("modified"))
	case StateSaving:
		parts = append(parts, s.styles.Muted.Render("saving..."))
	case StateSaved:
		parts = append(parts, s.styles.Success.Render("saved"))
	case StateUploading:
		parts = append(parts, s.styles.Muted.Render("uploading..."))
	case StateError:
		if s.message != "" {
			parts = append(parts, s.styles.Error.Render(fmt.Sprintf("error: %s", s.message)))
		} else {
			parts = append(parts, s.styles.Error.Render("error"))
		}
	case StateReady:
		// Title alone is enough
	}

	if s.pendingUploads > 0 {
		parts = append(parts, s.styles.Muted.Render(fmt.Sprintf("%d upload(s)", s.pendingUploads)))
	}
	if !s.syncEnabled {
		parts = append(parts, s.styles.Muted.Render("sync off"))
	}

	return strings.Join(parts, s.styles.Muted.Render(" | "))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateError {
		bindings = s.keymap.ShortHelp()
	} else {
		bindings = s.keymap.EditorHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message, shown in the error state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetTitle sets the displayed document title.
func (s *Bar) SetTitle(title string) {
	s.title = title
}

// Title returns the displayed document title.
func (s *Bar) Title() string {
	return s.title
}

// SetPendingUploads sets the in-flight upload count.
func (s *Bar) SetPendingUploads(count int) {
	s.pendingUploads = count
}

// PendingUploads returns the in-flight upload count.
func (s *Bar) PendingUploads() int {
	return s.pendingUploads
}

// SetSyncEnabled records whether preview scroll sync is on.
func (s *Bar) SetSyncEnabled(enabled bool) {
	s.syncEnabled = enabled
}

// SyncEnabled returns whether preview scroll sync is on.
func (s *Bar) SyncEnabled() bool {
	return s.syncEnabled
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.pendingUploads = 0
}
