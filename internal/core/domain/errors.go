package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// History Errors.

	// ErrAtBoundary indicates an undo at the oldest snapshot or a redo at
	// the newest one. The history is left unchanged.
	ErrAtBoundary = errors.New("at history boundary")

	// Upload Errors.

	// ErrUploadFailed indicates the asset store rejected an upload or the
	// transfer failed. The placeholder marker is removed from content.
	ErrUploadFailed = errors.New("upload failed")

	// ErrUnknownToken indicates an upload completion arrived for a token
	// the coordinator does not track.
	ErrUnknownToken = errors.New("unknown upload token")

	// Assist Errors.

	// ErrAssistUnavailable indicates no LLM service is configured.
	// AI enhancement features are disabled.
	ErrAssistUnavailable = errors.New("assist service unavailable")
)

// TitleConflictError is returned when a save would violate per-owner title
// uniqueness. It is a structured outcome rather than a hard failure: it
// carries a suggested alternative so the caller can offer the user a choice.
type TitleConflictError struct {
	// OwnerID is the owner whose collection holds the conflicting title.
	OwnerID string

	// Title is the normalised title that collided.
	Title string

	// Suggested is an alternative title with no known conflict.
	Suggested string
}

// Error implements the error interface.
func (e *TitleConflictError) Error() string {
	return fmt.Sprintf("a document titled %q already exists; suggested alternative: %q", e.Title, e.Suggested)
}

// IsTitleConflict reports whether err is a TitleConflictError and returns it.
func IsTitleConflict(err error) (*TitleConflictError, bool) {
	var conflict *TitleConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
