package driven

import "context"

// AssetStore uploads binary assets (images pasted or dropped into a
// document) and returns a remote reference for embedding into markdown.
//
// Failures are reported as errors, never as an empty reference. The store
// does not implement timeouts itself; callers bound the transfer through
// the context.
type AssetStore interface {
	// Upload stores the asset bytes under a name derived from
	// suggestedName and returns the remote reference (a URL or an
	// opaque handle the renderer understands).
	Upload(ctx context.Context, data []byte, suggestedName string) (string, error)
}
