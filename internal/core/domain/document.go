package domain

import (
	"strings"
	"time"
)

// DefaultTitle is used when a document is saved with an empty title.
const DefaultTitle = "Untitled"

// DocumentRecord represents a persisted markdown document.
// Titles are unique per owner: no two records owned by the same OwnerID
// may carry an identical trimmed title.
type DocumentRecord struct {
	// ID is the unique identifier. Empty until the first successful save.
	ID string

	// OwnerID is the identity that owns this document.
	OwnerID string

	// Title is the human-readable title, trimmed, unique per owner.
	Title string

	// Content is the full markdown text.
	Content string

	// CreatedAt is when the record was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the record was last saved.
	UpdatedAt time.Time
}

// NormalizeTitle trims surrounding whitespace and substitutes the default
// title for empty input. All uniqueness checks operate on normalised titles.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// SharedDocument is a read-only published copy of a document.
// It is decoupled from the source DocumentRecord: later edits to the
// original do not affect an existing share.
type SharedDocument struct {
	// ID is the share identifier embedded in share URLs.
	ID string

	// OwnerID is the identity that created the share.
	OwnerID string

	// Title is the document title at share time.
	Title string

	// Content is the markdown text at share time.
	Content string

	// Public marks the share as publicly listed rather than view-only.
	Public bool

	// Views counts how many times the share has been fetched.
	Views int

	// CreatedAt is when the share was created.
	CreatedAt time.Time
}
