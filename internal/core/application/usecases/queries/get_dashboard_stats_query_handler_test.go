package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDashboardStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDashboardStatsQueryHandler
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDashboardStatsQueryHandler(db)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) saveOrder(
	number string, method order.PaymentMethod, totalCents int64, target order.Status,
) {
	customerID := kernel.NewUUID()

	c, err := cart.NewCart(customerID)
	suite.Require().NoError(err)
	price, err := kernel.MoneyFromCents(totalCents)
	suite.Require().NoError(err)
	item, err := cart.NewMenuItem(kernel.NewUUID(), "Pad Thai", price, true)
	suite.Require().NoError(err)
	_, err = c.AddItem(item, 1, "")
	suite.Require().NoError(err)

	addr, err := kernel.NewAddress("Jane Doe", "123 Main St", "Springfield", "10001", "+1 555 0100", "")
	suite.Require().NoError(err)
	total, err := kernel.MoneyFromCents(totalCents)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, customerID, c.Items(), total, method, addr)
	suite.Require().NoError(err)

	statusPath := map[order.Status][]order.Status{
		order.StatusPending:   {},
		order.StatusPreparing: {order.StatusConfirmed, order.StatusPreparing},
		order.StatusDelivered: {
			order.StatusConfirmed, order.StatusPreparing, order.StatusReady,
			order.StatusOutForDelivery, order.StatusDelivered,
		},
		order.StatusCancelled: {order.StatusCancelled},
	}
	for _, next := range statusPath[target] {
		suite.Require().NoError(testOrder.ChangeStatus(next))
	}

	repo := orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroes() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Zero(result.OrdersToday)
	suite.Zero(result.RevenueTodayCents)
	suite.Zero(result.ActiveOrders)
	suite.Empty(result.CountsByStatus)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_CountsAndRevenue() {
	suite.saveOrder("ORD-1-AAAAAAAAA", order.PaymentMethodCard, 2500, order.StatusPending)
	suite.saveOrder("ORD-2-BBBBBBBBB", order.PaymentMethodCard, 1000, order.StatusPreparing)
	suite.saveOrder("ORD-3-CCCCCCCCC", order.PaymentMethodCash, 4200, order.StatusPending)
	suite.saveOrder("ORD-4-DDDDDDDDD", order.PaymentMethodCash, 1800, order.StatusDelivered)
	suite.saveOrder("ORD-5-EEEEEEEEE", order.PaymentMethodCash, 9900, order.StatusCancelled)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.OrdersToday)
	// Card orders are paid up front; the delivered cash order collected on handoff.
	suite.Equal(int64(2500+1000+1800), result.RevenueTodayCents)
	suite.Equal(int64(3), result.ActiveOrders)
	suite.Equal(map[string]int64{
		"pending":   2,
		"preparing": 1,
		"delivered": 1,
		"cancelled": 1,
	}, result.CountsByStatus)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDashboardStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func TestGetDashboardStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDashboardStatsQueryHandlerTestSuite))
}
