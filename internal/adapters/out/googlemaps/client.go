// Package googlemaps provides the outbound adapter for the Google Distance
// Matrix API. The adapter only moves bytes: it performs the HTTP request and
// decodes the body, leaving all interpretation of statuses to the domain
// classifier.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client implements ports.DistanceClient against the Distance Matrix
// endpoint. One call is one request; there is no retry and no caching, so a
// provider hiccup surfaces immediately to the caller.
//
// The client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewClient creates a Distance Matrix client. apiURL is the full endpoint
// URL; apiKey is appended to every request.
func NewClient(apiURL, apiKey string) (*Client, error) {
	if apiURL == "" {
		return nil, errs.NewValueIsRequiredError("apiURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
	}, nil
}

// GetDistance fetches the raw distance matrix for one origin/destination
// pair. Transport failures, non-2xx responses and undecodable bodies all
// surface as internal errors with key "googleApiException"; a well-formed
// body is returned verbatim, whatever its statuses say.
func (c *Client) GetDistance(
	ctx context.Context,
	origin, destination kernel.Coordinates,
) (*ports.DistanceMatrixResponse, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause(
			"googleApiException", "create distance matrix request", err)
	}

	query := url.Values{}
	query.Set("origins", origin.String())
	query.Set("destinations", destination.String())
	query.Set("key", c.apiKey)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause(
			"googleApiException", "distance matrix request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.NewInternalError(
			"googleApiException",
			fmt.Sprintf("distance matrix request returned HTTP %d", resp.StatusCode))
	}

	var matrix ports.DistanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return nil, errs.NewInternalErrorWithCause(
			"googleApiException", "decode distance matrix response", err)
	}

	return &matrix, nil
}
