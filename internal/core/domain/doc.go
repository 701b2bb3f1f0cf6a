// Package domain defines the core business entities for annotate-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dataset: An annotation dataset with its schema
//   - Field: A per-record input surface defined by the dataset schema
//   - Question: A dataset-wide annotation prompt requiring a response
//   - Record: One unit of annotation work (fields + questions + answer)
//   - RecordAnswer: The current user's response to a record
//   - Suggestion: A non-authoritative hint value for a question
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
