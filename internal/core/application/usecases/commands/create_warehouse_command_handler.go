package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"
)

var createWarehousePolicy = services.NewPolicy(
	"warehouse.create", actor.RoleAdmin, actor.RoleWarehouseManager,
)

// CreateWarehouseCommandHandler handles warehouse registration.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	authorizer services.Authorizer
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	authorizer services.Authorizer,
) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the warehouse creation command.
// When a manager is supplied the handler verifies the actor exists before
// assigning it, so a warehouse never references a phantom manager.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorRepo := uow.ActorRepository()
	if err := authorizeActing(
		ctx, actorRepo, h.authorizer, cmd.ActingActorID(), createWarehousePolicy,
	); err != nil {
		return err
	}

	warehouseEntity, err := warehouse.NewWarehouse(
		cmd.WarehouseID(), cmd.Name(), cmd.Location(), cmd.Capacity(),
	)
	if err != nil {
		return err
	}

	if managerID := cmd.ManagerID(); managerID != nil {
		if _, err = actorRepo.Get(ctx, *managerID); err != nil {
			return err
		}
		if err = warehouseEntity.AssignManager(*managerID); err != nil {
			return err
		}
	}

	if err = uow.WarehouseRepository().Add(ctx, warehouseEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
