// Package domain defines the core business entities for the Markdown AI
// editing session.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentRecord: A persisted markdown document owned by a user
//   - SharedDocument: A read-only published copy of a document
//   - UploadTask: An in-flight asset upload with its placeholder marker
//   - Surface: Scroll metrics for one scrollable pane
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
