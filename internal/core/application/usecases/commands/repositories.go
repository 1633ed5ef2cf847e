// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Every unit of work exposes the actor repository because handlers load the
// acting actor to evaluate authorization inside the same transaction.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ActorRepoFactory provides access to the actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EventRepoFactory provides access to the event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// ActorUoW manages transactions for actor-only operations such as
	// registration and role changes.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// ShipmentUoW manages transactions for shipment operations.
	ShipmentUoW interface {
		TxManager
		ActorRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		ActorRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EventUoW manages transactions for event operations.
	EventUoW interface {
		TxManager
		ActorRepoFactory
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}

	// WarehouseUoW manages transactions for warehouse operations.
	WarehouseUoW interface {
		TxManager
		ActorRepoFactory
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}
)
