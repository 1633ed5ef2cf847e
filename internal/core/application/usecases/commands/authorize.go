package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// authorizeActing loads the acting actor and evaluates the policy against it.
// An unknown acting actor is treated as anonymous, so the caller gets a
// permission denial rather than a not-found leak about the identity store.
func authorizeActing(
	ctx context.Context,
	actorRepo ports.ActorRepository,
	authorizer services.Authorizer,
	actingActorID kernel.UUID,
	policy services.Policy,
) error {
	acting, err := actorRepo.Get(ctx, actingActorID)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return authorizer.Authorize(nil, policy)
		}
		return err
	}

	return authorizer.Authorize(acting, policy)
}
