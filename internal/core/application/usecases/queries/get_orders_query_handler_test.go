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

// mockAggregateTracker satisfies the repositories' tracker dependency in read-model tests.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrdersQueryHandler(db)
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

// saveOrder builds and persists an order for the given customer name,
// walking the status machine until target is reached.
func (suite *GetOrdersQueryHandlerTestSuite) saveOrder(number, fullName string, target order.Status) *order.Order {
	customerID := kernel.NewUUID()

	c, err := cart.NewCart(customerID)
	suite.Require().NoError(err)
	price, err := kernel.MoneyFromCents(1299)
	suite.Require().NoError(err)
	item, err := cart.NewMenuItem(kernel.NewUUID(), "Margherita Pizza", price, true)
	suite.Require().NoError(err)
	_, err = c.AddItem(item, 3, "")
	suite.Require().NoError(err)

	addr, err := kernel.NewAddress(fullName, "123 Main St", "Springfield", "10001", "+1 555 0100", "")
	suite.Require().NoError(err)
	total, err := kernel.MoneyFromCents(3897)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, customerID, c.Items(), total, order.PaymentMethodCash, addr)
	suite.Require().NoError(err)

	statusPath := map[order.Status][]order.Status{
		order.StatusPending:   {},
		order.StatusConfirmed: {order.StatusConfirmed},
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
	return testOrder
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Time{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsAllWithItemCounts() {
	suite.saveOrder("ORD-1-AAAAAAAAA", "Jane Doe", order.StatusPending)
	suite.saveOrder("ORD-2-BBBBBBBBB", "Bob Smith", order.StatusConfirmed)

	query, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Time{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, summary := range result {
		suite.Equal(3, summary.ItemCount)
		suite.Equal(int64(3897), summary.TotalCents)
		suite.Equal("cash", summary.PaymentMethod)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	suite.saveOrder("ORD-1-AAAAAAAAA", "Jane Doe", order.StatusPending)
	suite.saveOrder("ORD-2-BBBBBBBBB", "Bob Smith", order.StatusDelivered)

	query, err := queries.NewGetOrdersQuery(order.StatusDelivered, time.Time{}, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-2-BBBBBBBBB", result[0].Number)
	suite.Equal("delivered", result[0].Status)
	suite.Equal("paid", result[0].PaymentStatus, "cash is collected on delivery")
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_DayFilter() {
	suite.saveOrder("ORD-1-AAAAAAAAA", "Jane Doe", order.StatusPending)

	today, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Now().UTC(), "")
	suite.Require().NoError(err)
	result, err := suite.handler.Handle(context.Background(), today)
	suite.Require().NoError(err)
	suite.Len(result, 1)

	yesterday, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Now().UTC().AddDate(0, 0, -1), "")
	suite.Require().NoError(err)
	result, err = suite.handler.Handle(context.Background(), yesterday)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_SearchMatchesNameAndNumber() {
	suite.saveOrder("ORD-1-AAAAAAAAA", "Jane Doe", order.StatusPending)
	suite.saveOrder("ORD-2-BBBBBBBBB", "Bob Smith", order.StatusPending)

	byName, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Time{}, "jane")
	suite.Require().NoError(err)
	result, err := suite.handler.Handle(context.Background(), byName)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Jane Doe", result[0].CustomerName)

	byNumber, err := queries.NewGetOrdersQuery(order.StatusUnknown, time.Time{}, "ord-2")
	suite.Require().NoError(err)
	result, err = suite.handler.Handle(context.Background(), byNumber)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-2-BBBBBBBBB", result[0].Number)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
