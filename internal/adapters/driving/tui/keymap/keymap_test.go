package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "ctrl+q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_SaveBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Save.Keys()
	assert.Contains(t, keys, "ctrl+s")
}

func TestDefaultKeyMap_UndoRedoBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Undo.Keys(), "ctrl+z")
	assert.Contains(t, km.Redo.Keys(), "ctrl+y")
}

func TestDefaultKeyMap_ToggleSyncBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.ToggleSync.Keys()
	assert.Contains(t, keys, "ctrl+p")
}

func TestDefaultKeyMap_DocumentsBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Documents.Keys()
	assert.Contains(t, keys, "ctrl+o")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_UpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Up.Keys()
	assert.Contains(t, keys, "up")
	assert.Contains(t, keys, "k")
}

func TestDefaultKeyMap_DownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Down.Keys()
	assert.Contains(t, keys, "down")
	assert.Contains(t, keys, "j")
}

func TestDefaultKeyMap_SelectBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Select.Keys()
	assert.Contains(t, keys, "enter")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestEditorHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.EditorHelp()

	assert.Len(t, bindings, 5)
	assert.Equal(t, km.Save, bindings[0])
	assert.Equal(t, km.Undo, bindings[1])
}

func TestListHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ListHelp()

	assert.Len(t, bindings, 4)
	assert.Equal(t, km.Up, bindings[0])
	assert.Equal(t, km.Select, bindings[1])
}

func TestAssistHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.AssistHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Attach, bindings[0])
	assert.Equal(t, km.Enhance, bindings[1])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 5)    // 5 groups
	assert.Len(t, bindings[0], 3) // Save, Undo, Redo
	assert.Len(t, bindings[1], 3) // ToggleSync, Documents, Back
	assert.Len(t, bindings[2], 2) // Attach, Enhance
	assert.Len(t, bindings[3], 3) // Up, Down, Select
	assert.Len(t, bindings[4], 2) // Help, Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("ctrl+s", km.Save))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("k", km.Up))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Save))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Back", km.Back},
		{"Save", km.Save},
		{"Undo", km.Undo},
		{"Redo", km.Redo},
		{"ToggleSync", km.ToggleSync},
		{"Documents", km.Documents},
		{"Attach", km.Attach},
		{"Enhance", km.Enhance},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Select", km.Select},
		{"Cancel", km.Cancel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
