package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsPerStatus() {
	suite.seedOrders(3, false)
	suite.seedOrders(2, true)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(order.Unassigned, result[0].Status)
	suite.Equal(int64(3), result[0].Count)
	suite.Equal(order.Taken, result[1].Status)
	suite.Equal(int64(2), result[1].Count)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_SkipsAbsentStatuses() {
	suite.seedOrders(1, true)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Taken, result[0].Status)
	suite.Equal(int64(1), result[0].Count)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var query queries.GetOrderStatsQuery

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderStatsQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) seedOrders(n int, taken bool) {
	for i := range n {
		o, err := order.NewOrder(kernel.NewUUID(), 1000*(i+1))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
		if taken {
			suite.Require().NoError(o.Take())
			suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
		}
	}
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
