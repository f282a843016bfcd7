package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/keymap"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.True(t, bar.SyncEnabled())
}

func TestNewBar_NilDefaults(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, 80, bar.Width())
}

func TestBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateSaving)

	assert.Equal(t, StateSaving, bar.State())
}

func TestBar_SetTitle(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetTitle("Meeting Notes")

	assert.Equal(t, "Meeting Notes", bar.Title())
	assert.Contains(t, bar.View(), "Meeting Notes")
}

func TestBar_View_UntitledFallback(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "Untitled")
}

func TestBar_View_States(t *testing.T) {
	testCases := []struct {
		state State
		want  string
	}{
		{StateDirty, "modified"},
		{StateSaving, "saving..."},
		{StateSaved, "saved"},
		{StateUploading, "uploading..."},
	}

	for _, tc := range testCases {
		t.Run(string(tc.state), func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(200)
			bar.SetState(tc.state)

			assert.Contains(t, bar.View(), tc.want)
		})
	}
}

func TestBar_View_ErrorMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetState(StateError)
	bar.SetMessage("title is taken")

	assert.Contains(t, bar.View(), "error: title is taken")
}

func TestBar_View_PendingUploads(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetPendingUploads(2)

	assert.Equal(t, 2, bar.PendingUploads())
	assert.Contains(t, bar.View(), "2 upload(s)")
}

func TestBar_View_SyncDisabled(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(200)
	bar.SetSyncEnabled(false)

	assert.False(t, bar.SyncEnabled())
	assert.Contains(t, bar.View(), "sync off")
}

func TestBar_View_ShowsEditorHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(250)

	view := bar.View()

	assert.Contains(t, view, "ctrl+s: save")
	assert.Contains(t, view, "ctrl+z: undo")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetPendingUploads(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.PendingUploads())
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}
