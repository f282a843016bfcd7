// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI. Editor bindings use
// control chords so plain keystrokes always insert text.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Save persists the current document.
	Save key.Binding

	// Undo steps the document back in history.
	Undo key.Binding

	// Redo steps the document forward in history.
	Redo key.Binding

	// ToggleSync enables or disables preview scroll sync.
	ToggleSync key.Binding

	// Documents opens the saved document list.
	Documents key.Binding

	// Attach starts an image upload at the cursor.
	Attach key.Binding

	// Enhance runs AI enhancement over the document.
	Enhance key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Cancel cancels the current operation.
	Cancel key.Binding

	// Delete removes the selected document.
	Delete key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		ToggleSync: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "scroll sync"),
		),
		Documents: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "documents"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "attach image"),
		),
		Enhance: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "enhance"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// EditorHelp returns keybindings for the editor view.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Save, k.Undo, k.Redo, k.ToggleSync, k.Documents}
}

// AssistHelp returns keybindings for AI and upload operations.
func (k *KeyMap) AssistHelp() []key.Binding {
	return []key.Binding{k.Attach, k.Enhance}
}

// ListHelp returns keybindings for the document list view.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Delete, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Undo, k.Redo},
		{k.ToggleSync, k.Documents, k.Back},
		{k.Attach, k.Enhance},
		{k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
