package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/event"
	"logistics/internal/core/domain/services"
)

var createEventPolicy = services.NewPolicy("event.create", actor.RoleAdmin)

// CreateEventCommandHandler handles event creation. Only administrators may
// create events.
type CreateEventCommandHandler struct {
	uowFactory EventUoWFactory
	authorizer services.Authorizer
}

// NewCreateEventCommandHandler creates a handler for event creation.
func NewCreateEventCommandHandler(
	uowFactory EventUoWFactory,
	authorizer services.Authorizer,
) CreateEventCommandHandler {
	return CreateEventCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the event creation command.
func (h *CreateEventCommandHandler) Handle(ctx context.Context, cmd CreateEventCommand) error {
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
		ctx, uow.ActorRepository(), h.authorizer, cmd.ActingActorID(), createEventPolicy,
	); err != nil {
		return err
	}

	eventEntity, err := event.NewEvent(
		cmd.EventID(), cmd.Name(), cmd.Date(), cmd.Location(), cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, eventEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
