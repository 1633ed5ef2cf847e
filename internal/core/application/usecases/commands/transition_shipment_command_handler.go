package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

var transitionShipmentPolicy = services.NewPolicy(
	"shipment.transition", actor.RoleAdmin, actor.RoleWarehouseManager, actor.RoleDeliveryPerson,
)

// TransitionShipmentCommandHandler handles shipment lifecycle transitions.
// Each observed movement is journaled as a delivery leg owned by the
// shipment: departure opens an in-progress leg at the origin, arrival
// records a completed leg at the destination.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer services.Authorizer
}

// NewTransitionShipmentCommandHandler creates a handler for shipment transitions.
func NewTransitionShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	authorizer services.Authorizer,
) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the transition command.
// Loads the shipment, applies the forward-only transition, journals the
// matching delivery leg, and persists everything within one transaction.
func (h *TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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
		ctx, uow.ActorRepository(), h.authorizer, cmd.ActingActorID(), transitionShipmentPolicy,
	); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	shipmentEntity, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shipmentEntity.TransitionTo(cmd.Next(), cmd.DeliveredAt()); err != nil {
		return err
	}

	if err = h.journalLeg(ctx, shipmentRepo, shipmentEntity, cmd.Next()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *TransitionShipmentCommandHandler) journalLeg(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	shipmentEntity *shipment.Shipment,
	next shipment.Status,
) error {
	var location string
	switch next {
	case shipment.StatusInTransit:
		location = shipmentEntity.Origin()
	case shipment.StatusDelivered:
		location = shipmentEntity.Destination()
	default:
		return nil
	}

	leg, err := shipment.NewDelivery(kernel.NewUUID(), shipmentEntity.ID(), location)
	if err != nil {
		return err
	}

	if assignee := shipmentEntity.DeliveryPerson(); assignee != nil {
		if err = leg.Assign(*assignee); err != nil {
			return err
		}
	}

	if next == shipment.StatusDelivered {
		if err = leg.Complete(); err != nil {
			return err
		}
	}

	return shipmentRepo.AddDelivery(ctx, leg)
}
