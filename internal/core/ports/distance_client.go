package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// TopLevelStatus is the request-level status of a Distance Matrix response.
// The provider's vocabulary evolves independently of this client, so the
// type is an open string: values outside the enumerated constants must be
// handled by a default branch, never assumed away.
type TopLevelStatus string

// Request-level statuses the provider is contractually allowed to return.
const (
	TopLevelOK                  TopLevelStatus = "OK"
	TopLevelInvalidRequest      TopLevelStatus = "INVALID_REQUEST"
	TopLevelMaxElementsExceeded TopLevelStatus = "MAX_ELEMENTS_EXCEEDED"
	TopLevelOverDailyLimit      TopLevelStatus = "OVER_DAILY_LIMIT"
	TopLevelOverQueryLimit      TopLevelStatus = "OVER_QUERY_LIMIT"
	TopLevelRequestDenied       TopLevelStatus = "REQUEST_DENIED"
	TopLevelUnknownError        TopLevelStatus = "UNKNOWN_ERROR"
)

// ElementStatus is the per-pair status carried by each element of a
// Distance Matrix response. Open string for the same reason as
// TopLevelStatus.
type ElementStatus string

// Element-level statuses the provider is contractually allowed to return.
const (
	ElementOK                     ElementStatus = "OK"
	ElementNotFound               ElementStatus = "NOT_FOUND"
	ElementZeroResults            ElementStatus = "ZERO_RESULTS"
	ElementMaxRouteLengthExceeded ElementStatus = "MAX_ROUTE_LENGTH_EXCEEDED"
)

// DistanceValue is the distance of one origin/destination pair as returned
// by the provider: an integer value in meters plus a human-readable text the
// classifier ignores.
type DistanceValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// DurationValue is the travel time of one origin/destination pair. Carried
// for completeness of the wire model; nothing downstream inspects it.
type DurationValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// MatrixElement is one origin/destination cell of the matrix. Distance is a
// pointer because the provider omits it on non-OK elements; the distinction
// between zero and absent matters to the classifier.
type MatrixElement struct {
	Status   ElementStatus  `json:"status"`
	Distance *DistanceValue `json:"distance,omitempty"`
	Duration *DurationValue `json:"duration,omitempty"`
}

// MatrixRow groups the elements for one origin.
type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// DistanceMatrixResponse is the raw provider response, consumed but not
// owned by this system. Only row 0 / element 0 is ever inspected: the
// provider supports multi-origin batching, this client never requests it.
type DistanceMatrixResponse struct {
	Status               TopLevelStatus `json:"status"`
	OriginAddresses      []string       `json:"origin_addresses"`
	DestinationAddresses []string       `json:"destination_addresses"`
	Rows                 []MatrixRow    `json:"rows"`
}

// DistanceClient is the outbound contract for the external routing provider.
// Implementations perform exactly one network request per call, with no
// retry; transport failures surface as errs.InternalError with key
// "googleApiException".
type DistanceClient interface {
	// GetDistance fetches the raw distance matrix for a single
	// origin/destination pair. The returned response is unclassified; run
	// it through the distance classifier before use.
	GetDistance(ctx context.Context, origin, destination kernel.Coordinates) (*DistanceMatrixResponse, error)
}
