package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var createOrderPolicy = services.AnyAuthenticated("order.create")

// CreateOrderCommandHandler handles order placement. Any authenticated actor
// may place an order for itself. When the caller supplies no order number the
// handler generates one; on a number collision it regenerates once and
// retries before giving up, mirroring tracking-code generation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.Authorizer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.Authorizer,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
		ctx, uow.ActorRepository(), h.authorizer, cmd.ActingActorID(), createOrderPolicy,
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	err := h.addOrder(ctx, orderRepo, cmd, now)

	// A caller-supplied number that collides is the caller's problem; only a
	// generated number earns a second attempt.
	var conflict *errs.ConstraintConflictError
	if errors.As(err, &conflict) && cmd.Number() == nil {
		err = h.addOrder(ctx, orderRepo, cmd, now)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *CreateOrderCommandHandler) addOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd CreateOrderCommand,
	now time.Time,
) error {
	number := cmd.Number()
	if number == nil {
		generated, err := order.NewNumber(now)
		if err != nil {
			return err
		}
		number = &generated
	}

	orderEntity, err := order.NewOrder(
		cmd.OrderID(), *number, cmd.ActingActorID(), cmd.ItemIDs(), cmd.TotalCents(), now,
	)
	if err != nil {
		return err
	}

	return orderRepo.Add(ctx, orderEntity)
}
