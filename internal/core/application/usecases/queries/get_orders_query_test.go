package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, query.Page())
	assert.Equal(t, 20, query.Limit())
	assert.Equal(t, 40, query.Offset())
}

func TestNewGetOrdersQuery_FirstPageOffsetIsZero(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, query.Offset())
}

func TestNewGetOrdersQuery_InvalidPage(t *testing.T) {
	for _, page := range []int{0, -1, -100} {
		_, err := queries.NewGetOrdersQuery(page, 20)
		require.Error(t, err, "page %d must be rejected", page)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "page", outOfRange.ParamName)
	}
}

func TestNewGetOrdersQuery_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1, queries.MaxLimit + 1} {
		_, err := queries.NewGetOrdersQuery(1, limit)
		require.Error(t, err, "limit %d must be rejected", limit)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "limit", outOfRange.ParamName)
	}
}

func TestNewGetOrdersQuery_BothInvalid(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(0, 0)
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
