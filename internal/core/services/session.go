package services

import (
	"strings"
	"sync"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// SaveStatus describes where a session is in its save lifecycle.
type SaveStatus string

const (
	SaveIdle     SaveStatus = "idle"
	SaveInFlight SaveStatus = "saving"
	SaveDone     SaveStatus = "saved"
	SaveError    SaveStatus = "error"
)

// Session is the live state of one open document: its content, identity,
// dirty flag and undo history. It is safe for concurrent use; upload
// completions and UI edits may arrive from different goroutines.
type Session struct {
	mu sync.Mutex

	ownerID string
	docID   string
	title   string

	content      string
	savedContent string

	history    *HistoryManager
	saveStatus SaveStatus
}

// NewSession creates a session for the given owner with the initial
// content as the first history snapshot.
func NewSession(ownerID, content string) *Session {
	h := NewHistoryManager(0, 0)
	h.Capture(content)
	return &Session{
		ownerID:      ownerID,
		title:        domain.DefaultTitle,
		content:      content,
		savedContent: content,
		history:      h,
		saveStatus:   SaveIdle,
	}
}

// OwnerID returns the owning user of the session.
func (s *Session) OwnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownerID
}

// DocumentID returns the persisted document id, or "" when the session
// has never been saved.
func (s *Session) DocumentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docID
}

// Title returns the working title of the session.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetTitle updates the working title.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = domain.NormalizeTitle(title)
}

// Content returns the current document content.
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Dirty reports whether the content has diverged from the last saved
// state.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content != s.savedContent
}

// SaveStatus returns the current save lifecycle state.
func (s *Session) SaveStatus() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveStatus
}

// SetSaveStatus records a save lifecycle transition.
func (s *Session) SetSaveStatus(status SaveStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveStatus = status
}

// SetContent replaces the content with next, capturing the previous
// content as an undo step when the edit is significant. Insignificant
// edits (small whitespace adjustments) still apply but do not grow the
// history.
func (s *Session) SetContent(next string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next == s.content {
		return
	}
	if s.history.ShouldCapture(s.content, next) {
		s.captureLocked(next)
	}
	s.content = next
}

// Undo steps the content back one history entry. Returns
// domain.ErrAtBoundary when at the oldest state.
func (s *Session) Undo() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Live content may be ahead of the last snapshot when recent edits
	// were below the capture threshold. Record it first so redo can
	// return here.
	if snap, ok := s.history.Current(); ok && snap != s.content {
		s.history.Capture(s.content)
	}
	snap, err := s.history.Undo()
	if err != nil {
		return s.content, err
	}
	s.content = snap
	return snap, nil
}

// Redo steps the content forward one history entry. Returns
// domain.ErrAtBoundary when at the newest state.
func (s *Session) Redo() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.history.Redo()
	if err != nil {
		return s.content, err
	}
	s.content = snap
	return snap, nil
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// InsertAtCursor inserts text at the byte offset cursor, clamped to the
// content bounds, and captures the insertion as one undo step.
func (s *Session) InsertAtCursor(cursor int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(s.content) {
		cursor = len(s.content)
	}
	next := s.content[:cursor] + text + s.content[cursor:]
	s.captureLocked(next)
	s.content = next
}

// InsertMarkerAt inserts an upload placeholder at the byte offset
// cursor, clamped to the content bounds, without recording an undo
// step. History only moves when the upload later resolves, so a failed
// upload leaves no trace.
func (s *Session) InsertMarkerAt(cursor int, marker string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(s.content) {
		cursor = len(s.content)
	}
	s.content = s.content[:cursor] + marker + s.content[cursor:]
}

// ResolveMarker replaces the first occurrence of marker with replacement,
// capturing the replacement as a single undo step. Returns false without
// mutating anything when the marker is no longer present.
func (s *Session) ResolveMarker(marker, replacement string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !strings.Contains(s.content, marker) {
		return false
	}
	next := strings.Replace(s.content, marker, replacement, 1)
	s.captureLocked(next)
	s.content = next
	return true
}

// DiscardMarker removes the first occurrence of marker without recording
// an undo step. Used when an upload fails and the placeholder should
// vanish as if it was never inserted.
func (s *Session) DiscardMarker(marker string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !strings.Contains(s.content, marker) {
		return false
	}
	s.content = strings.Replace(s.content, marker, "", 1)
	return true
}

// MarkSaved records a successful persist of the current content under
// the given document id.
func (s *Session) MarkSaved(docID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docID = docID
	s.title = title
	s.savedContent = s.content
	s.saveStatus = SaveDone
}

// LoadRecord replaces the session state with a persisted document and
// resets the history to a single snapshot.
func (s *Session) LoadRecord(rec *domain.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docID = rec.ID
	s.title = rec.Title
	s.content = rec.Content
	s.savedContent = rec.Content
	s.history = NewHistoryManager(0, 0)
	s.history.Capture(rec.Content)
	s.saveStatus = SaveIdle
}

// captureLocked records next as the new head snapshot. Callers hold mu.
// The live content is pushed first when it is ahead of the history so an
// undo from next lands on what the user last saw.
func (s *Session) captureLocked(next string) {
	if snap, ok := s.history.Current(); !ok || snap != s.content {
		s.history.Capture(s.content)
	}
	s.history.Capture(next)
}
