package cmd

import (
	"math/rand"
	"time"

	"storefront/internal/adapters/out/payment"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	gateway, err := payment.NewSimulatedGateway(
		config.CardDeclineRate,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	if err != nil {
		log.Fatalf("cannot create payment gateway: %v", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCartItemQuantityCommandHandler() commands.ChangeCartItemQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCartItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAbandonedCartsCommandHandler() commands.RemoveAbandonedCartsCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAbandonedCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateBeginCheckoutCommandHandler() commands.BeginCheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBeginCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitShippingDetailsCommandHandler() commands.SubmitShippingDetailsCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitShippingDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectPaymentMethodCommandHandler() commands.SelectPaymentMethodCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectPaymentMethodCommandHandler(f)
}

func (c *CompositionRoot) CreateNavigateBackCommandHandler() commands.NavigateBackCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNavigateBackCommandHandler(f)
}

func (c *CompositionRoot) CreateResetCheckoutCommandHandler() commands.ResetCheckoutCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCheckoutSessionQueryHandler() queries.GetCheckoutSessionQueryHandler {
	return queries.NewGetCheckoutSessionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
