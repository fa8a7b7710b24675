package googlemaps_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/internal/adapters/out/googlemaps"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixBody = `{
	"status": "OK",
	"origin_addresses": ["Tour Eiffel, Paris"],
	"destination_addresses": ["Disneyland Paris"],
	"rows": [{
		"elements": [{
			"status": "OK",
			"distance": {"value": 66473, "text": "66.5 km"},
			"duration": {"value": 2946, "text": "49 mins"}
		}]
	}]
}`

func testCoordinates(t *testing.T) (kernel.Coordinates, kernel.Coordinates) {
	t.Helper()
	origin, err := kernel.NewCoordinates("48.858245", "2.294642")
	require.NoError(t, err)
	destination, err := kernel.NewCoordinates("48.868480", "2.781909")
	require.NoError(t, err)
	return origin, destination
}

func TestNewClient_RequiresURLAndKey(t *testing.T) {
	_, err := googlemaps.NewClient("", "key")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = googlemaps.NewClient("https://example.com/maps", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClient_GetDistance_SendsCoordinatesAndKey(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"origins":      r.URL.Query().Get("origins"),
			"destinations": r.URL.Query().Get("destinations"),
			"key":          r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(matrixBody))
	}))
	defer server.Close()

	client, err := googlemaps.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	origin, destination := testCoordinates(t)
	matrix, err := client.GetDistance(t.Context(), origin, destination)
	require.NoError(t, err)

	assert.Equal(t, "48.858245,2.294642", gotQuery["origins"])
	assert.Equal(t, "48.868480,2.781909", gotQuery["destinations"])
	assert.Equal(t, "secret-key", gotQuery["key"])

	require.NotNil(t, matrix)
	assert.Equal(t, ports.TopLevelOK, matrix.Status)
	require.Len(t, matrix.Rows, 1)
	require.Len(t, matrix.Rows[0].Elements, 1)
	element := matrix.Rows[0].Elements[0]
	assert.Equal(t, ports.ElementOK, element.Status)
	require.NotNil(t, element.Distance)
	assert.Equal(t, 66473, element.Distance.Value)
	require.NotNil(t, element.Duration)
	assert.Equal(t, 2946, element.Duration.Value)
}

func TestClient_GetDistance_NonOKStatusesPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]
		}`))
	}))
	defer server.Close()

	client, err := googlemaps.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	origin, destination := testCoordinates(t)
	matrix, err := client.GetDistance(t.Context(), origin, destination)
	require.NoError(t, err, "the adapter must not interpret element statuses")

	element := matrix.Rows[0].Elements[0]
	assert.Equal(t, ports.ElementZeroResults, element.Status)
	assert.Nil(t, element.Distance)
}

func TestClient_GetDistance_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := googlemaps.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	origin, destination := testCoordinates(t)
	_, err = client.GetDistance(t.Context(), origin, destination)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInternal)

	var internal *errs.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "googleApiException", internal.Key)
}

func TestClient_GetDistance_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := googlemaps.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	origin, destination := testCoordinates(t)
	_, err = client.GetDistance(t.Context(), origin, destination)
	require.Error(t, err)

	var internal *errs.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "googleApiException", internal.Key)
}

func TestClient_GetDistance_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	client, err := googlemaps.NewClient(server.URL, "secret-key")
	require.NoError(t, err)

	origin, destination := testCoordinates(t)
	_, err = client.GetDistance(t.Context(), origin, destination)
	require.Error(t, err)

	var internal *errs.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "googleApiException", internal.Key)
}

func TestClient_GetDistance_InvalidCoordinates(t *testing.T) {
	client, err := googlemaps.NewClient("https://example.com/maps", "secret-key")
	require.NoError(t, err)

	_, destination := testCoordinates(t)
	_, err = client.GetDistance(t.Context(), kernel.Coordinates{}, destination)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}
