package commands

import (
	"context"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/services"
)

var updateActorRolePolicy = services.NewPolicy("actor.role.update", actor.RoleAdmin)

// UpdateActorRoleCommandHandler handles the business logic for role changes.
// Only administrators may replace another actor's role.
type UpdateActorRoleCommandHandler struct {
	uowFactory ActorUoWFactory
	authorizer services.Authorizer
}

// NewUpdateActorRoleCommandHandler creates a handler for role changes.
func NewUpdateActorRoleCommandHandler(
	uowFactory ActorUoWFactory,
	authorizer services.Authorizer,
) UpdateActorRoleCommandHandler {
	return UpdateActorRoleCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the role change command.
// Authorizes the acting actor, loads the target, replaces its role, and
// persists the change within a transaction.
func (h *UpdateActorRoleCommandHandler) Handle(ctx context.Context, cmd UpdateActorRoleCommand) error {
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
	if err := authorizeActing(ctx, actorRepo, h.authorizer, cmd.ActingActorID(), updateActorRolePolicy); err != nil {
		return err
	}

	target, err := actorRepo.Get(ctx, cmd.TargetActorID())
	if err != nil {
		return err
	}

	if err = target.ChangeRole(cmd.Role()); err != nil {
		return err
	}

	if err = actorRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
