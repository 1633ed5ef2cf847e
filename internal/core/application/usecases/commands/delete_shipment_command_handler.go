package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/services"
)

var deleteShipmentPolicy = services.NewPolicy(
	"shipment.delete", actor.RoleAdmin, actor.RoleWarehouseManager,
)

// DeleteShipmentCommandHandler handles shipment deletion. The repository
// cascades the delete to the shipment's owned delivery legs, so no orphaned
// legs survive the operation.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer services.Authorizer
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	authorizer services.Authorizer,
) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the deletion command.
// Verifies the shipment exists before deleting so an unknown ID surfaces as
// a not-found error rather than a silent no-op.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	if err := authorizeActing(
		ctx, uow.ActorRepository(), h.authorizer, cmd.ActingActorID(), deleteShipmentPolicy,
	); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	if _, err := shipmentRepo.Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := shipmentRepo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
