package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCartQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartQueryHandler
}

func (suite *GetCartQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCartQueryHandler(db)
}

func (suite *GetCartQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCartQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts CASCADE").Error)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_NoCart_ReturnsEmptyView() {
	query, err := queries.NewGetCartQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Zero(result.TotalCents)
	suite.Zero(result.ItemCount)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_ReturnsLinesInOrderWithTotals() {
	customerID := kernel.NewUUID()

	testCart, err := cart.NewCart(customerID)
	suite.Require().NoError(err)

	pizzaPrice, err := kernel.MoneyFromCents(1299)
	suite.Require().NoError(err)
	pizza, err := cart.NewMenuItem(kernel.NewUUID(), "Margherita Pizza", pizzaPrice, true)
	suite.Require().NoError(err)
	_, err = testCart.AddItem(pizza, 2, "extra basil")
	suite.Require().NoError(err)

	colaPrice, err := kernel.MoneyFromCents(350)
	suite.Require().NoError(err)
	cola, err := cart.NewMenuItem(kernel.NewUUID(), "Cola", colaPrice, true)
	suite.Require().NoError(err)
	_, err = testCart.AddItem(cola, 3, "")
	suite.Require().NoError(err)

	repo := cartrepo.NewGormCartRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testCart))

	query, err := queries.NewGetCartQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 2)

	suite.Equal("Margherita Pizza", result.Items[0].Name)
	suite.Equal(2, result.Items[0].Quantity)
	suite.Equal("extra basil", result.Items[0].SpecialInstructions)
	suite.Equal(int64(2598), result.Items[0].SubtotalCents)

	suite.Equal("Cola", result.Items[1].Name)
	suite.Equal(int64(1050), result.Items[1].SubtotalCents)

	suite.Equal(int64(3648), result.TotalCents)
	suite.Equal(5, result.ItemCount)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCartQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func TestGetCartQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerTestSuite))
}
