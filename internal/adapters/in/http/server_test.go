package http_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubOrderRepository struct {
	mock.Mock
}

func (m *stubOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *stubOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *stubOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in stub")
}

func (m *stubOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *stubOrderRepository) GetPage(_ context.Context, _ int, _ int) ([]*order.Order, error) {
	return nil, errors.New("not implemented in stub")
}

type stubUoW struct {
	repo *stubOrderRepository
}

func (u *stubUoW) Begin(_ context.Context) error          { return nil }
func (u *stubUoW) Commit(_ context.Context) error         { return nil }
func (u *stubUoW) Rollback(_ context.Context) error       { return nil }
func (u *stubUoW) OrderRepository() ports.OrderRepository { return u.repo }

type stubUoWFactory struct {
	repo *stubOrderRepository
}

func (f *stubUoWFactory) Create() commands.OrderUoW { return &stubUoW{repo: f.repo} }

type stubDistanceClient struct {
	response *ports.DistanceMatrixResponse
	err      error
}

func (c *stubDistanceClient) GetDistance(
	_ context.Context, _, _ kernel.Coordinates,
) (*ports.DistanceMatrixResponse, error) {
	return c.response, c.err
}

func newTestServer(repo *stubOrderRepository, client *stubDistanceClient) *adapter.Server {
	factory := &stubUoWFactory{repo: repo}
	return adapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, client),
		commands.NewTakeOrderCommandHandler(factory),
		queries.GetOrdersQueryHandler{},
	)
}

func doRequest(
	t *testing.T, method, target, body string, handle func(echo.Context) error,
) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	require.NoError(t, handle(ctx))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var e servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func okResponse(meters int) *ports.DistanceMatrixResponse {
	return &ports.DistanceMatrixResponse{
		Status: ports.TopLevelOK,
		Rows: []ports.MatrixRow{{
			Elements: []ports.MatrixElement{{
				Status:   ports.ElementOK,
				Distance: &ports.DistanceValue{Value: meters},
			}},
		}},
	}
}

const validCoordinatesBody = `{
	"origin": ["48.858245", "2.294642"],
	"destination": ["48.868480", "2.781909"]
}`

func TestCreateOrder_Success(t *testing.T) {
	repo := new(stubOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	server := newTestServer(repo, &stubDistanceClient{response: okResponse(66473)})

	rec := doRequest(t, nethttp.MethodPost, "/orders", validCoordinatesBody, server.CreateOrder)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var created servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 66473, created.Distance)
	assert.Equal(t, servers.UNASSIGNED, created.Status)
	assert.Equal(t, int64(1), created.Version)
	repo.AssertExpectations(t)
}

func TestCreateOrder_MalformedCoordinates(t *testing.T) {
	repo := new(stubOrderRepository)
	server := newTestServer(repo, &stubDistanceClient{response: okResponse(1)})

	body := `{"origin": ["48.858245"], "destination": ["48.868480", "2.781909"]}`
	rec := doRequest(t, nethttp.MethodPost, "/orders", body, server.CreateOrder)

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "badRequestError", decodeError(t, rec).Key)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrder_ClassifierOutcomes(t *testing.T) {
	testCases := []struct {
		name         string
		response     *ports.DistanceMatrixResponse
		expectedCode int
		expectedKey  string
	}{
		{
			name:         "invalid request",
			response:     &ports.DistanceMatrixResponse{Status: ports.TopLevelInvalidRequest},
			expectedCode: nethttp.StatusBadRequest,
			expectedKey:  "badRequestError",
		},
		{
			name: "coordinates not found",
			response: &ports.DistanceMatrixResponse{
				Status: ports.TopLevelOK,
				Rows: []ports.MatrixRow{{
					Elements: []ports.MatrixElement{{Status: ports.ElementNotFound}},
				}},
			},
			expectedCode: nethttp.StatusNotFound,
			expectedKey:  "notFoundError",
		},
		{
			name: "no route",
			response: &ports.DistanceMatrixResponse{
				Status: ports.TopLevelOK,
				Rows: []ports.MatrixRow{{
					Elements: []ports.MatrixElement{{Status: ports.ElementZeroResults}},
				}},
			},
			expectedCode: nethttp.StatusPreconditionFailed,
			expectedKey:  "zeroResultsError",
		},
		{
			name:         "provider quota exhausted",
			response:     &ports.DistanceMatrixResponse{Status: ports.TopLevelOverQueryLimit},
			expectedCode: nethttp.StatusInternalServerError,
			expectedKey:  "clientErrorResponse",
		},
		{
			name:         "nil response",
			response:     nil,
			expectedCode: nethttp.StatusInternalServerError,
			expectedKey:  "nullResponseError",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(stubOrderRepository)
			server := newTestServer(repo, &stubDistanceClient{response: tc.response})

			rec := doRequest(t, nethttp.MethodPost, "/orders", validCoordinatesBody, server.CreateOrder)

			require.Equal(t, tc.expectedCode, rec.Code)
			assert.Equal(t, tc.expectedKey, decodeError(t, rec).Key)
			repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_ProviderTransportFailure(t *testing.T) {
	repo := new(stubOrderRepository)
	server := newTestServer(repo, &stubDistanceClient{
		err: errs.NewInternalError("googleApiException", "connection refused"),
	})

	rec := doRequest(t, nethttp.MethodPost, "/orders", validCoordinatesBody, server.CreateOrder)

	require.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "googleApiException", decodeError(t, rec).Key)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestTakeOrder_Success(t *testing.T) {
	id := kernel.NewUUID()
	target, err := order.NewOrder(id, 1000)
	require.NoError(t, err)

	repo := new(stubOrderRepository)
	repo.On("GetForUpdate", mock.Anything, id).Return(target, nil).Once()
	repo.On("Update", mock.Anything, target).Return(nil).Once()

	server := newTestServer(repo, &stubDistanceClient{})

	rec := doRequest(t, nethttp.MethodPatch, "/orders/"+id.String(),
		`{"status": "TAKEN"}`, func(ctx echo.Context) error {
			return server.TakeOrder(ctx, id.Bytes())
		})

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var response servers.PatchOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, servers.SUCCESS, response.Status)
	repo.AssertExpectations(t)
}

func TestTakeOrder_NullStatus(t *testing.T) {
	id := kernel.NewUUID()
	repo := new(stubOrderRepository)
	server := newTestServer(repo, &stubDistanceClient{})

	rec := doRequest(t, nethttp.MethodPatch, "/orders/"+id.String(),
		`{}`, func(ctx echo.Context) error {
			return server.TakeOrder(ctx, id.Bytes())
		})

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "nullObjectError", errBody.Key)
	assert.Equal(t, "Status parameter is null", errBody.Message)
}

func TestTakeOrder_WrongStatusLiteral(t *testing.T) {
	id := kernel.NewUUID()
	repo := new(stubOrderRepository)
	server := newTestServer(repo, &stubDistanceClient{})

	rec := doRequest(t, nethttp.MethodPatch, "/orders/"+id.String(),
		`{"status": "DONE"}`, func(ctx echo.Context) error {
			return server.TakeOrder(ctx, id.Bytes())
		})

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "badRequestError", decodeError(t, rec).Key)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestTakeOrder_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	repo := new(stubOrderRepository)
	repo.On("GetForUpdate", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	server := newTestServer(repo, &stubDistanceClient{})

	rec := doRequest(t, nethttp.MethodPatch, "/orders/"+id.String(),
		`{"status": "TAKEN"}`, func(ctx echo.Context) error {
			return server.TakeOrder(ctx, id.Bytes())
		})

	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "orderNotFound", decodeError(t, rec).Key)
}

func TestTakeOrder_AlreadyTaken(t *testing.T) {
	id := kernel.NewUUID()
	taken, err := order.RestoreOrder(id, 1000, order.Taken, 2)
	require.NoError(t, err)

	repo := new(stubOrderRepository)
	repo.On("GetForUpdate", mock.Anything, id).Return(taken, nil).Once()

	server := newTestServer(repo, &stubDistanceClient{})

	rec := doRequest(t, nethttp.MethodPatch, "/orders/"+id.String(),
		`{"status": "TAKEN"}`, func(ctx echo.Context) error {
			return server.TakeOrder(ctx, id.Bytes())
		})

	require.Equal(t, nethttp.StatusPreconditionFailed, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "orderAlreadyTaken", errBody.Key)
	assert.Equal(t, "order already taken", errBody.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetOrders_InvalidPaging(t *testing.T) {
	repo := new(stubOrderRepository)
	server := newTestServer(repo, &stubDistanceClient{})

	testCases := []struct {
		name   string
		params servers.GetOrdersParams
	}{
		{"zero page", servers.GetOrdersParams{Page: 0, Limit: 10}},
		{"zero limit", servers.GetOrdersParams{Page: 1, Limit: 0}},
		{"negative page", servers.GetOrdersParams{Page: -2, Limit: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, nethttp.MethodGet, "/orders", "", func(ctx echo.Context) error {
				return server.GetOrders(ctx, tc.params)
			})

			require.Equal(t, nethttp.StatusBadRequest, rec.Code)
			assert.Equal(t, "badRequestError", decodeError(t, rec).Key)
		})
	}
}
