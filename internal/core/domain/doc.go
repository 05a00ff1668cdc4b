// Package domain defines the core business entities for Exporta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Issue: A normalised work item extracted from a tracker export
//   - Project: The project reference carried by an issue
//   - Weight: The structural completeness metric used for deduplication
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
