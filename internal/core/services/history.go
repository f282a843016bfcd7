package services

import (
	"strings"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

const (
	// DefaultHistoryCapacity is the maximum number of snapshots kept
	// before the oldest entry is evicted.
	DefaultHistoryCapacity = 50

	// DefaultCaptureThreshold is the minimum length delta, in bytes,
	// above which an edit is always captured as an undo step.
	DefaultCaptureThreshold = 10
)

// HistoryManager keeps a bounded, linear undo/redo history of content
// snapshots. It is not safe for concurrent use; callers serialise access
// (Session holds one behind its own lock).
type HistoryManager struct {
	capacity  int
	threshold int
	snapshots []string
	cursor    int
}

// NewHistoryManager creates a history with the given capacity and capture
// threshold. Non-positive values fall back to the defaults.
func NewHistoryManager(capacity, threshold int) *HistoryManager {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	if threshold <= 0 {
		threshold = DefaultCaptureThreshold
	}
	return &HistoryManager{
		capacity:  capacity,
		threshold: threshold,
		cursor:    -1,
	}
}

// Capture records a snapshot as the new head of history. Any redo tail
// past the cursor is discarded, and when the capacity is exceeded the
// oldest snapshot is evicted.
func (h *HistoryManager) Capture(content string) {
	h.snapshots = append(h.snapshots[:h.cursor+1], content)
	if len(h.snapshots) > h.capacity {
		h.snapshots = h.snapshots[1:]
	}
	h.cursor = len(h.snapshots) - 1
}

// ShouldCapture reports whether the transition from prev to next is
// significant enough to record. Small whitespace-only adjustments are
// skipped so that every keystroke does not become its own undo step.
func (h *HistoryManager) ShouldCapture(prev, next string) bool {
	delta := len(next) - len(prev)
	if delta < 0 {
		delta = -delta
	}
	if delta > h.threshold {
		return true
	}
	return strings.TrimSpace(prev) != strings.TrimSpace(next)
}

// Undo moves the cursor one step back and returns the snapshot now
// pointed to. At the oldest entry it returns domain.ErrAtBoundary and
// leaves the cursor unchanged.
func (h *HistoryManager) Undo() (string, error) {
	if h.cursor <= 0 {
		return "", domain.ErrAtBoundary
	}
	h.cursor--
	return h.snapshots[h.cursor], nil
}

// Redo moves the cursor one step forward and returns the snapshot now
// pointed to. At the newest entry it returns domain.ErrAtBoundary.
func (h *HistoryManager) Redo() (string, error) {
	if h.cursor >= len(h.snapshots)-1 {
		return "", domain.ErrAtBoundary
	}
	h.cursor++
	return h.snapshots[h.cursor], nil
}

// Current returns the snapshot under the cursor. The second return is
// false when no snapshot has been captured yet.
func (h *HistoryManager) Current() (string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return "", false
	}
	return h.snapshots[h.cursor], true
}

// CanUndo reports whether a call to Undo would succeed.
func (h *HistoryManager) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a call to Redo would succeed.
func (h *HistoryManager) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Len returns the number of snapshots currently held.
func (h *HistoryManager) Len() int { return len(h.snapshots) }

// Cursor returns the index of the current snapshot, or -1 when empty.
func (h *HistoryManager) Cursor() int { return h.cursor }
