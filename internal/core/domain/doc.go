// Package domain defines the core business entities for kbserve.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The knowledge-base document loaded from disk
//   - Section: A named block of text within the document
//   - SearchResult: An excerpt-level search hit
//   - Entity: A text span identified by pattern matching
//   - EntityContext: One-hop relationships for a queried entity
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
