// Package editor provides the split source/preview editor view for the TUI.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/components/status"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/keymap"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/messages"
	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driving/tui/styles"
	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
	"github.com/vishnuprksh/Markdown-AI/internal/core/services"
)

// promptMode identifies which inline prompt is active, if any.
type promptMode int

const (
	promptNone promptMode = iota
	promptTitle
	promptAttach
)

// focusPane identifies which pane receives navigation keys.
type focusPane int

const (
	focusSource focusPane = iota
	focusPreview
)

// View is the split editor and preview view. The source pane edits the
// markdown; the preview pane renders it; a scroll sync controller keeps
// their relative positions aligned.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	editor  driving.EditorService
	assist  driving.AssistService
	uploads *services.UploadCoordinator
	ownerID string

	session    *services.Session
	scrollSync *services.ScrollSyncController

	textarea  textarea.Model
	preview   viewport.Model
	prompt    textinput.Model
	statusBar *status.Bar

	promptMode promptMode
	focus      focusPane
	width      int
	height     int
	ready      bool
	err        error
}

// NewView creates the editor view. The upload coordinator and assist
// service may be nil; the matching keys become no-ops.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	editor driving.EditorService,
	assist driving.AssistService,
	uploads *services.UploadCoordinator,
	ownerID string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Start writing markdown..."
	ta.ShowLineNumbers = true
	ta.Focus()

	prompt := textinput.New()
	prompt.CharLimit = 256

	return &View{
		styles:     s,
		keymap:     km,
		editor:     editor,
		assist:     assist,
		uploads:    uploads,
		ownerID:    ownerID,
		session:    services.NewSession(ownerID, ""),
		scrollSync: services.NewScrollSyncController(),
		textarea:   ta,
		preview:    viewport.New(40, 20),
		prompt:     prompt,
		statusBar:  status.NewBar(s, km),
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// SetInitialDocument seeds the session with a title and content without
// marking the buffer dirty.
func (v *View) SetInitialDocument(title, content string) {
	v.session = services.NewSession(v.ownerID, content)
	if title != "" {
		v.session.SetTitle(title)
	}
	v.textarea.SetValue(content)
	v.statusBar.SetTitle(v.session.Title())
	v.refreshPreview()
}

// LoadRecord replaces the session with a stored document.
func (v *View) LoadRecord(rec *domain.DocumentRecord) {
	v.session.LoadRecord(rec)
	v.textarea.SetValue(rec.Content)
	v.statusBar.SetTitle(rec.Title)
	v.statusBar.SetState(status.StateReady)
	v.refreshPreview()
}

// Session exposes the editing session, primarily for tests.
func (v *View) Session() *services.Session {
	return v.session
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.promptMode != promptNone {
			return v.handlePromptKey(msg)
		}
		return v.handleKey(msg)

	case messages.DocumentSaved:
		return v.handleSaved(msg)

	case messages.UploadFinished:
		return v.handleUploadFinished(msg)

	case messages.AssistCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.session.SetContent(msg.Output)
		v.textarea.SetValue(msg.Output)
		v.statusBar.SetState(status.StateDirty)
		v.refreshPreview()
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

// ReloadContent replaces the buffer with content that changed outside
// the editor, such as a watched file rewritten on disk. The replacement
// is recorded as a single history step.
func (v *View) ReloadContent(content string) {
	v.session.SetContent(content)
	v.textarea.SetValue(content)
	v.statusBar.SetState(status.StateDirty)
	v.refreshPreview()
}

// handleKey routes a keypress in normal editing mode.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Save):
		return v.openTitlePrompt()

	case key.Matches(msg, v.keymap.Undo):
		v.applyHistory(v.session.Undo)
		return v, nil

	case key.Matches(msg, v.keymap.Redo):
		v.applyHistory(v.session.Redo)
		return v, nil

	case key.Matches(msg, v.keymap.ToggleSync):
		enabled := v.scrollSync.Toggle()
		v.statusBar.SetSyncEnabled(enabled)
		return v, nil

	case key.Matches(msg, v.keymap.Attach):
		if v.uploads == nil {
			v.setError(errors.New("uploads are not configured"))
			return v, nil
		}
		return v.openAttachPrompt()

	case key.Matches(msg, v.keymap.Enhance):
		return v, v.enhanceCmd()

	case msg.String() == "tab":
		if v.focus == focusSource {
			v.focus = focusPreview
			v.textarea.Blur()
		} else {
			v.focus = focusSource
			return v, v.textarea.Focus()
		}
		return v, nil
	}

	if v.focus == focusPreview {
		return v.updatePreviewPane(msg)
	}
	return v.updateSourcePane(msg)
}

// updateSourcePane feeds the key to the textarea and syncs state.
func (v *View) updateSourcePane(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)

	content := v.textarea.Value()
	if content != v.session.Content() {
		v.session.SetContent(content)
		v.refreshPreview()
		if v.session.Dirty() {
			v.statusBar.SetState(status.StateDirty)
		}
	}

	if offset, ok := v.scrollSync.OnSourceScroll(v.sourceSurface(), v.previewSurface()); ok {
		v.preview.SetYOffset(int(offset))
	}

	return v, cmd
}

// updatePreviewPane feeds the key to the viewport and mirrors the scroll
// back onto the source pane.
func (v *View) updatePreviewPane(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.preview, cmd = v.preview.Update(msg)

	if offset, ok := v.scrollSync.OnRenderedScroll(v.previewSurface(), v.sourceSurface()); ok {
		v.scrollSourceTo(int(offset))
	}

	return v, cmd
}

// scrollSourceTo moves the textarea cursor toward the given line.
func (v *View) scrollSourceTo(line int) {
	for v.textarea.Line() < line {
		v.textarea.CursorDown()
		if v.textarea.Line() >= v.textarea.LineCount()-1 {
			break
		}
	}
	for v.textarea.Line() > line {
		v.textarea.CursorUp()
		if v.textarea.Line() <= 0 {
			break
		}
	}
}

// sourceSurface reports the source pane's scroll metrics.
func (v *View) sourceSurface() domain.Surface {
	return domain.Surface{
		ScrollTop:    float64(v.textarea.Line()),
		ScrollHeight: float64(v.textarea.LineCount()),
		ClientHeight: float64(v.textarea.Height()),
	}
}

// previewSurface reports the preview pane's scroll metrics.
func (v *View) previewSurface() domain.Surface {
	return domain.Surface{
		ScrollTop:    float64(v.preview.YOffset),
		ScrollHeight: float64(v.preview.TotalLineCount()),
		ClientHeight: float64(v.preview.Height),
	}
}

// applyHistory runs an undo or redo step and reflects it in the UI.
func (v *View) applyHistory(step func() (string, error)) {
	content, err := step()
	if err != nil {
		// At a history boundary; nothing to do.
		return
	}
	v.textarea.SetValue(content)
	v.refreshPreview()
	if v.session.Dirty() {
		v.statusBar.SetState(status.StateDirty)
	} else {
		v.statusBar.SetState(status.StateReady)
	}
}

// openTitlePrompt opens the save prompt prefilled with the current title.
func (v *View) openTitlePrompt() (*View, tea.Cmd) {
	v.promptMode = promptTitle
	v.prompt.Placeholder = domain.DefaultTitle
	v.prompt.SetValue(v.session.Title())
	v.textarea.Blur()
	return v, v.prompt.Focus()
}

// openAttachPrompt opens the image path prompt.
func (v *View) openAttachPrompt() (*View, tea.Cmd) {
	v.promptMode = promptAttach
	v.prompt.Placeholder = "path/to/image.png"
	v.prompt.SetValue("")
	v.textarea.Blur()
	return v, v.prompt.Focus()
}

// handlePromptKey routes a keypress while a prompt is open.
func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(v.prompt.Value())
		mode := v.promptMode
		v.closePrompt()
		if mode == promptTitle {
			return v.saveWithTitle(value)
		}
		return v.attachImage(value)

	case "esc":
		v.closePrompt()
		return v, nil
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

// closePrompt returns focus to the source pane.
func (v *View) closePrompt() {
	v.promptMode = promptNone
	v.prompt.Blur()
	v.textarea.Focus()
}

// saveWithTitle kicks off an asynchronous save.
func (v *View) saveWithTitle(title string) (*View, tea.Cmd) {
	v.session.SetTitle(title)
	v.session.SetSaveStatus(services.SaveInFlight)
	v.statusBar.SetState(status.StateSaving)

	owner := v.ownerID
	content := v.session.Content()
	docID := v.session.DocumentID()
	normalized := v.session.Title()
	editor := v.editor

	return v, func() tea.Msg {
		id, err := editor.Save(context.Background(), owner, normalized, content, docID)
		if err != nil {
			if conflict, ok := domain.IsTitleConflict(err); ok {
				return messages.DocumentSaved{Title: normalized, Conflict: conflict}
			}
			return messages.DocumentSaved{Title: normalized, Err: err}
		}
		return messages.DocumentSaved{DocumentID: id, Title: normalized}
	}
}

// handleSaved applies a save outcome.
func (v *View) handleSaved(msg messages.DocumentSaved) (*View, tea.Cmd) {
	if msg.Conflict != nil {
		v.session.SetSaveStatus(services.SaveError)
		v.statusBar.SetState(status.StateError)
		v.statusBar.SetMessage(fmt.Sprintf("title %q is taken", msg.Conflict.Title))
		// Reopen the prompt with the suggested title so the user can
		// accept it with a single keystroke.
		view, cmd := v.openTitlePrompt()
		view.prompt.SetValue(msg.Conflict.Suggested)
		return view, cmd
	}
	if msg.Err != nil {
		v.session.SetSaveStatus(services.SaveError)
		v.setError(msg.Err)
		return v, nil
	}

	v.session.MarkSaved(msg.DocumentID, msg.Title)
	v.statusBar.SetTitle(msg.Title)
	v.statusBar.SetState(status.StateSaved)
	v.statusBar.SetMessage("")
	return v, nil
}

// attachImage begins an upload and inserts its placeholder at the cursor.
func (v *View) attachImage(path string) (*View, tea.Cmd) {
	if path == "" {
		return v, nil
	}

	task := v.uploads.Begin(filepath.Base(path))
	v.session.InsertMarkerAt(v.cursorOffset(), task.Placeholder)
	v.textarea.SetValue(v.session.Content())
	v.refreshPreview()
	v.statusBar.SetState(status.StateUploading)
	v.statusBar.SetPendingUploads(v.uploads.Pending())

	uploads := v.uploads
	token := task.Token
	return v, func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return messages.UploadFinished{
				Result: domain.UploadResult{Token: token, Err: fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)},
			}
		}
		return messages.UploadFinished{Result: uploads.Transfer(context.Background(), token, data)}
	}
}

// handleUploadFinished resolves the upload's placeholder.
func (v *View) handleUploadFinished(msg messages.UploadFinished) (*View, tea.Cmd) {
	if v.uploads == nil {
		return v, nil
	}

	_, err := v.uploads.Resolve(v.session, msg.Result)
	v.textarea.SetValue(v.session.Content())
	v.refreshPreview()
	v.statusBar.SetPendingUploads(v.uploads.Pending())
	if err != nil {
		v.setError(err)
	} else if v.statusBar.State() == status.StateUploading {
		v.statusBar.SetState(status.StateDirty)
	}
	return v, nil
}

// enhanceCmd runs AI enhancement over the whole buffer.
func (v *View) enhanceCmd() tea.Cmd {
	if v.assist == nil {
		v.setError(domain.ErrAssistUnavailable)
		return nil
	}

	assist := v.assist
	content := v.session.Content()
	return func() tea.Msg {
		output, err := assist.Enhance(context.Background(), content, "")
		return messages.AssistCompleted{Output: output, Err: err}
	}
}

// cursorOffset converts the textarea cursor position to a byte offset
// into the session content.
func (v *View) cursorOffset() int {
	content := v.session.Content()
	lines := strings.Split(content, "\n")
	row := v.textarea.Line()
	if row >= len(lines) {
		return len(content)
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	col := v.textarea.LineInfo().ColumnOffset
	if col > len(lines[row]) {
		col = len(lines[row])
	}
	return offset + col
}

// refreshPreview re-renders the markdown into the preview pane.
func (v *View) refreshPreview() {
	v.preview.SetContent(v.renderMarkdown(v.session.Content()))
}

// renderMarkdown applies light terminal styling to markdown source.
// Headings and list bullets are emphasised; everything else passes
// through wrapped by the viewport.
func (v *View) renderMarkdown(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return v.styles.Muted.Render("Nothing to preview")
	}

	lines := strings.Split(markdown, "\n")
	rendered := make([]string, 0, len(lines))
	inCode := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			inCode = !inCode
			rendered = append(rendered, v.styles.Muted.Render(line))
		case inCode:
			rendered = append(rendered, v.styles.Muted.Render(line))
		case strings.HasPrefix(trimmed, "# "):
			rendered = append(rendered, v.styles.Title.Render(strings.TrimPrefix(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "## "):
			rendered = append(rendered, v.styles.Subtitle.Render(strings.TrimPrefix(trimmed, "## ")))
		case strings.HasPrefix(trimmed, "### "):
			rendered = append(rendered, v.styles.Subtitle.Render(strings.TrimPrefix(trimmed, "### ")))
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			rendered = append(rendered, v.styles.Normal.Render("  • "+trimmed[2:]))
		default:
			rendered = append(rendered, v.styles.Normal.Render(line))
		}
	}
	return strings.Join(rendered, "\n")
}

// setError surfaces an error on the status bar.
func (v *View) setError(err error) {
	v.err = err
	v.statusBar.SetState(status.StateError)
	if err != nil {
		v.statusBar.SetMessage(err.Error())
	}
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// SyncEnabled reports whether preview scroll sync is on.
func (v *View) SyncEnabled() bool {
	return v.scrollSync.Enabled()
}

// SetDimensions sets the view dimensions and lays out the panes.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	paneWidth := width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := height - 6
	if paneHeight < 5 {
		paneHeight = 5
	}

	v.textarea.SetWidth(paneWidth)
	v.textarea.SetHeight(paneHeight)
	v.preview.Width = paneWidth
	v.preview.Height = paneHeight
	v.statusBar.SetWidth(width)
	v.refreshPreview()
}

// View renders the editor.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sourceStyle := v.styles.Pane
	previewStyle := v.styles.Pane
	if v.focus == focusSource {
		sourceStyle = v.styles.ActivePane
	} else {
		previewStyle = v.styles.ActivePane
	}

	source := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.PaneHeader.Render("Editor"),
		sourceStyle.Render(v.textarea.View()),
	)
	preview := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.PaneHeader.Render("Preview"),
		previewStyle.Render(v.preview.View()),
	)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, source, preview)

	var b strings.Builder
	b.WriteString(panes)
	b.WriteString("\n")
	if v.promptMode != promptNone {
		label := "Title: "
		if v.promptMode == promptAttach {
			label = "Image path: "
		}
		b.WriteString(v.styles.Title.Render(label))
		b.WriteString(v.styles.InputField.Render(v.prompt.View()))
		b.WriteString("\n")
	}
	b.WriteString(v.statusBar.View())
	return b.String()
}
