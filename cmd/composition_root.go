package cmd

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's use cases onto shared
// infrastructure: the database connection, the unit of work factory, and the
// authorization service.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	authorizer services.Authorizer
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		authorizer: services.NewAuthorizer(),
	}
}

func (c *CompositionRoot) CreateRegisterActorCommandHandler() commands.RegisterActorCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterActorCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateActorRoleCommandHandler() commands.UpdateActorRoleCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateActorRoleCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreateEventCommandHandler() commands.CreateEventCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEventCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateResolveTrackingQueryHandler() queries.ResolveTrackingQueryHandler {
	return queries.NewResolveTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDailyCountsQueryHandler() queries.DailyCountsQueryHandler {
	return queries.NewDailyCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrdersByStatusQueryHandler() queries.OrdersByStatusQueryHandler {
	return queries.NewOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAverageDeliveryDurationQueryHandler() queries.AverageDeliveryDurationQueryHandler {
	return queries.NewAverageDeliveryDurationQueryHandler(c.gormDB)
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}
