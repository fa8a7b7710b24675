package services

import (
	"fmt"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DistanceClassifier is a domain service that turns a raw provider response
// into either a usable distance or a classified failure. It is a pure
// function of the response content: no side effects, no hidden state.
//
// The provider exposes a two-level status hierarchy (request-level and
// per-pair-level) because it is built for batch queries. This system only
// ever issues single-pair requests, so classification degrades the
// hierarchy into one ordered list of checks; the first failing check
// determines the outcome and no further checks run. Every status the
// provider is contractually allowed to return is handled, and both levels
// keep a default arm because the provider's vocabulary evolves
// independently of this client.
//
// Example usage:
//
//	classifier := services.NewDistanceClassifier()
//	distance, err := classifier.Classify(response)
//	if err != nil {
//	    // err is one of the errs boundary kinds, propagate unchanged
//	    return err
//	}
//	// distance is the road distance in provider units (meters)
type DistanceClassifier struct{}

// NewDistanceClassifier creates a new DistanceClassifier instance.
func NewDistanceClassifier() DistanceClassifier {
	return DistanceClassifier{}
}

// Classify validates a provider response and extracts the distance of
// row 0 / element 0.
//
// The checks run in order; the first failure wins:
//  1. nil response                -> internal (nullResponseError)
//  2. top-level status            -> bad request / internal per status
//  3. empty rows                  -> internal (emptyRowsError)
//  4. empty elements in row 0     -> internal (emptyElementsError)
//  5. element status              -> bad request / not found /
//     precondition failed per status
//  6. missing distance value      -> internal (nullDistanceError)
//
// On success it returns the element's integer distance.
func (c DistanceClassifier) Classify(response *ports.DistanceMatrixResponse) (int, error) {
	if response == nil {
		return 0, errs.NewInternalError("nullResponseError",
			"distance provider returned a null response")
	}

	if err := c.classifyTopLevelStatus(response.Status); err != nil {
		return 0, err
	}

	if len(response.Rows) == 0 {
		return 0, errs.NewInternalError("emptyRowsError",
			"distance provider returned an empty rows result")
	}

	if len(response.Rows[0].Elements) == 0 {
		return 0, errs.NewInternalError("emptyElementsError",
			"distance provider returned an empty elements result")
	}

	element := response.Rows[0].Elements[0]
	if err := c.classifyElementStatus(element.Status); err != nil {
		return 0, err
	}

	if element.Distance == nil {
		return 0, errs.NewInternalError("nullDistanceError",
			"distance provider returned a null distance result")
	}

	return element.Distance.Value, nil
}

// classifyTopLevelStatus dispatches on the request-level status. OK
// continues the pipeline; everything else is terminal.
func (c DistanceClassifier) classifyTopLevelStatus(status ports.TopLevelStatus) error {
	switch status {
	case ports.TopLevelOK:
		return nil
	case ports.TopLevelInvalidRequest, ports.TopLevelMaxElementsExceeded:
		return errs.NewBadRequestError("badRequestError",
			fmt.Sprintf("distance provider returned a bad request error: %s", status))
	case ports.TopLevelUnknownError, ports.TopLevelOverDailyLimit,
		ports.TopLevelOverQueryLimit, ports.TopLevelRequestDenied:
		return errs.NewInternalError("clientErrorResponse",
			fmt.Sprintf("distance provider returned a client error response: %s", status))
	default:
		return errs.NewInternalError("unknownErrorResponse",
			fmt.Sprintf("distance provider returned an unknown response status: %s", status))
	}
}

// classifyElementStatus dispatches on the per-pair status of row 0 /
// element 0. ZERO_RESULTS maps to precondition failed and NOT_FOUND to not
// found; the two are deliberately kept distinct.
func (c DistanceClassifier) classifyElementStatus(status ports.ElementStatus) error {
	switch status {
	case ports.ElementOK:
		return nil
	case ports.ElementMaxRouteLengthExceeded:
		return errs.NewBadRequestError("badRequestError",
			fmt.Sprintf("distance provider returned a bad request error: %s", status))
	case ports.ElementNotFound:
		return errs.NewNotFoundError("notFoundError",
			"distance provider returned a not found error")
	case ports.ElementZeroResults:
		return errs.NewPreconditionFailedError("zeroResultsError",
			"distance provider returned zero results")
	default:
		return errs.NewInternalError("unknownErrorResponse",
			fmt.Sprintf("distance provider returned an unknown response status: %s", status))
	}
}
