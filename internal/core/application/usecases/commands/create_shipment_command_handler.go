package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var createShipmentPolicy = services.NewPolicy(
	"shipment.create", actor.RoleAdmin, actor.RoleWarehouseManager,
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Generates the tracking code and persists the shipment; the
// store's unique constraint is the hard uniqueness guarantee, so on a code
// collision the handler regenerates once and retries before giving up.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer services.Authorizer
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	authorizer services.Authorizer,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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
		ctx, uow.ActorRepository(), h.authorizer, cmd.ActingActorID(), createShipmentPolicy,
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	shipmentRepo := uow.ShipmentRepository()

	if err := h.addWithRetry(ctx, shipmentRepo, cmd, now); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// addWithRetry persists the shipment, regenerating the tracking code exactly
// once if the store reports a uniqueness conflict.
func (h *CreateShipmentCommandHandler) addWithRetry(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	cmd CreateShipmentCommand,
	now time.Time,
) error {
	err := h.addShipment(ctx, shipmentRepo, cmd, now)

	var conflict *errs.ConstraintConflictError
	if errors.As(err, &conflict) {
		return h.addShipment(ctx, shipmentRepo, cmd, now)
	}

	return err
}

func (h *CreateShipmentCommandHandler) addShipment(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	cmd CreateShipmentCommand,
	now time.Time,
) error {
	code, err := shipment.NewTrackingCode(now)
	if err != nil {
		return err
	}

	shipmentEntity, err := shipment.NewShipment(
		cmd.ShipmentID(), code, cmd.Origin(), cmd.Destination(), cmd.Contents(), now,
	)
	if err != nil {
		return err
	}

	if eventID := cmd.EventID(); eventID != nil {
		if err = shipmentEntity.AttachEvent(*eventID); err != nil {
			return err
		}
	}

	return shipmentRepo.Add(ctx, shipmentEntity)
}
