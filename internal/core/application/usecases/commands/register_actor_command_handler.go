package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
)

// RegisterActorCommandHandler handles the business logic for actor
// registration. Registration is open; no acting actor is required.
type RegisterActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterActorCommandHandler creates a handler for actor registration.
func NewRegisterActorCommandHandler(uowFactory ActorUoWFactory) RegisterActorCommandHandler {
	return RegisterActorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the actor registration command.
// Creates a new actor aggregate, with its role assignment, within a transaction.
func (h *RegisterActorCommandHandler) Handle(ctx context.Context, cmd RegisterActorCommand) error {
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
	actorEntity, err := actor.NewActor(cmd.ActorID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	if err = actorRepo.Add(ctx, actorEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
