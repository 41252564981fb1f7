// Package domain defines the core business entities for MindVault.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A stored piece of personal knowledge
//   - Chunk: A fixed-size overlapping word window, the unit of retrieval
//   - SearchResult / SearchResponse: The outcome of one search call
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
