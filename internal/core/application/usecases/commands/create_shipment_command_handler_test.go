package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	// Arrange
	manager := storedActor(t, actor.RoleWarehouseManager)

	// Act
	cmd, err := commands.NewCreateShipmentCommand(manager.ID(), "Berlin", "Hamburg", "10 crates", nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, manager.ID(), cmd.ActingActorID())
	assert.Equal(t, "Berlin", cmd.Origin())
	assert.Equal(t, "Hamburg", cmd.Destination())
	assert.Equal(t, "10 crates", cmd.Contents())
	assert.Nil(t, cmd.EventID())
	assert.NoError(t, cmd.ShipmentID().Validate())
}

func TestNewCreateShipmentCommand_MissingOriginAndDestination(t *testing.T) {
	manager := storedActor(t, actor.RoleWarehouseManager)

	_, err := commands.NewCreateShipmentCommand(manager.ID(), "", "", "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin")
	assert.Contains(t, err.Error(), "destination")
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	manager := storedActor(t, actor.RoleWarehouseManager)

	cmd, err := commands.NewCreateShipmentCommand(manager.ID(), "Berlin", "Hamburg", "10 crates", nil)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	var captured *shipment.Shipment
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, manager.ID()).Return(manager, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			captured = s
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, cmd.ShipmentID(), captured.ID())
	assert.Equal(t, shipment.StatusPending, captured.Status())
	assert.Nil(t, captured.DeliveredAt())
	assert.NoError(t, captured.TrackingCode().Validate())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnceOnCodeCollision(t *testing.T) {
	// A tracking-code collision is resolved by regenerating the code and
	// retrying exactly once.
	ctx := t.Context()
	manager := storedActor(t, actor.RoleWarehouseManager)

	cmd, err := commands.NewCreateShipmentCommand(manager.ID(), "Berlin", "Hamburg", "", nil)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	var firstCode, secondCode shipment.TrackingCode
	conflict := errs.NewConstraintConflictError("trackingCode", "TRK20260831AAAAAA")
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, manager.ID()).Return(manager, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			firstCode = s.TrackingCode()
			return true
		})).Return(conflict).Once(),
		mockShipmentRepo.On("Add", ctx, mock.MatchedBy(func(s *shipment.Shipment) bool {
			secondCode = s.TrackingCode()
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, firstCode.IsEqual(secondCode), "retry must regenerate the tracking code")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_SecondCollisionSurfaces(t *testing.T) {
	// Two consecutive collisions exhaust the retry budget; the conflict
	// reaches the caller.
	ctx := t.Context()
	admin := storedActor(t, actor.RoleAdmin)

	cmd, err := commands.NewCreateShipmentCommand(admin.ID(), "Berlin", "Hamburg", "", nil)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	conflict := errs.NewConstraintConflictError("trackingCode", "TRK20260831AAAAAA")
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, admin.ID()).Return(admin, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(conflict).Twice(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConstraintConflict)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DeniedForCustomer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	customer := storedActor(t, actor.RoleCustomer)

	cmd, err := commands.NewCreateShipmentCommand(customer.ID(), "Berlin", "Hamburg", "", nil)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockActorRepo.AssertExpectations(t)
}
