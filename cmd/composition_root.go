package cmd

import (
	"log/slog"
	"os"

	httpin "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/identity"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/ports"
	"bookstore/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, use case handlers, the identity
// provider, jobs, and the HTTP server together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the object graph root over one database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Logger returns the root structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateIdentityProvider builds the identity adapter. Each identity operation
// gets its own repository so concurrent requests never share unit-of-work
// state.
func (c *CompositionRoot) CreateIdentityProvider() *identity.Provider {
	factory := FuncUserRepositoryFactory(func() ports.UserRepository {
		return c.uowFactory.Create().UserRepository()
	})
	return identity.NewProvider(factory, identity.DefaultTokenLifetime)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateAddFundsCommandHandler() commands.AddFundsCommandHandler {
	return commands.NewAddFundsCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateAddBookCommandHandler() commands.AddBookCommandHandler {
	return commands.NewAddBookCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateAddStockLevelCommandHandler() commands.AddStockLevelCommandHandler {
	return commands.NewAddStockLevelCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateReceiveOrderCommandHandler() commands.ReceiveOrderCommandHandler {
	return commands.NewReceiveOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelOvertimeOrdersCommandHandler() commands.CancelOvertimeOrdersCommandHandler {
	return commands.NewCancelOvertimeOrdersCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreStockQueryHandler() queries.GetStoreStockQueryHandler {
	return queries.NewGetStoreStockQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager with the overtime sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelOvertimeOrdersCommandHandler(),
		c.config.OrderTimeout,
		c.logger,
	)
}

// CreateHTTPServer builds the inbound HTTP adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateIdentityProvider(),
		c.logger,
		c.CreateRegisterUserCommandHandler(),
		c.CreateChangePasswordCommandHandler(),
		c.CreateAddFundsCommandHandler(),
		c.CreateCreateStoreCommandHandler(),
		c.CreateAddBookCommandHandler(),
		c.CreateAddStockLevelCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreatePayOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateReceiveOrderCommandHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetStoreStockQueryHandler(),
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserRepositoryFactory func() ports.UserRepository

func (f FuncUserRepositoryFactory) Create() ports.UserRepository {
	return f()
}
