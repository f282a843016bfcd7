package domain

import "fmt"

// UploadStatus tracks the lifecycle of an asset upload.
type UploadStatus string

// Upload lifecycle states.
const (
	// UploadPending means the transfer has started but not finished.
	UploadPending UploadStatus = "pending"

	// UploadSucceeded means the asset store returned a remote reference.
	UploadSucceeded UploadStatus = "succeeded"

	// UploadFailed means the transfer was rejected or aborted.
	UploadFailed UploadStatus = "failed"
)

// UploadTask represents one in-flight asset upload. Tasks are owned
// exclusively by the upload coordinator for their lifetime and are
// discarded once resolved into a single content mutation.
type UploadTask struct {
	// Token uniquely identifies this task. Placeholder resolution is
	// scoped to the token so concurrent uploads cannot corrupt each
	// other's markers.
	Token string

	// Name is the suggested asset name shown inside the placeholder.
	Name string

	// Placeholder is the exact marker text spliced into content while
	// the upload is in flight.
	Placeholder string

	// Status is the current lifecycle state.
	Status UploadStatus

	// RemoteRef is the asset store reference (URL) on success.
	RemoteRef string
}

// PlaceholderMarker builds the transient marker text for an in-flight
// upload. The token is embedded in the link target so the marker is
// unambiguous even when two uploads of the same file start within the
// same clock tick.
func PlaceholderMarker(token, name string) string {
	return fmt.Sprintf("\n![Uploading %s...](upload://%s)\n", name, token)
}

// UploadResult carries the outcome of an asset transfer back to the
// coordinator as a discrete event.
type UploadResult struct {
	// Token identifies the task this result belongs to.
	Token string

	// RemoteRef is the asset store reference on success.
	RemoteRef string

	// Err is the transfer failure, nil on success.
	Err error
}
