// Package services provides domain services for the dispatch system.
//
// The package includes:
//   - DistanceClassifier: a pure decision pipeline that validates a raw
//     provider response and extracts a distance or a typed failure
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services
