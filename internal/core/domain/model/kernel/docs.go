// Package kernel provides shared value objects for the dispatch domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Coordinates: a latitude/longitude pair of non-blank strings, kept as
//     opaque strings because the distance provider owns their format
//
// All value objects are immutable, validate themselves on construction, and
// reject zero values through constructor guards.
package kernel
