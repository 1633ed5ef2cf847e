package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	code, err := shipment.NewTrackingCode(time.Now().UTC())
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), code, "Berlin", "Hamburg", "10 crates", time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)
	return s
}

func TestTransitionShipmentCommandHandler_Handle_ToInTransit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courier := storedActor(t, actor.RoleDeliveryPerson)
	shipmentEntity := storedShipment(t)

	cmd, err := commands.NewTransitionShipmentCommand(
		courier.ID(), shipmentEntity.ID(), shipment.StatusInTransit, nil,
	)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	var capturedLeg *shipment.Delivery
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockShipmentRepo.On("AddDelivery", ctx, mock.MatchedBy(func(d *shipment.Delivery) bool {
			capturedLeg = d
			return true
		})).Return(nil).Once(),
		mockShipmentRepo.On("Update", ctx, shipmentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewTransitionShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInTransit, shipmentEntity.Status())
	assert.Nil(t, shipmentEntity.DeliveredAt())
	require.NotNil(t, capturedLeg)
	assert.Equal(t, shipmentEntity.ID(), capturedLeg.ShipmentID())
	assert.Equal(t, "Berlin", capturedLeg.Location())
	assert.Equal(t, shipment.DeliveryInProgress, capturedLeg.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_ToDelivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courier := storedActor(t, actor.RoleDeliveryPerson)
	shipmentEntity := storedShipment(t)
	require.NoError(t, shipmentEntity.TransitionTo(shipment.StatusInTransit, nil))

	deliveredAt := time.Now().UTC()
	cmd, err := commands.NewTransitionShipmentCommand(
		courier.ID(), shipmentEntity.ID(), shipment.StatusDelivered, &deliveredAt,
	)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	var capturedLeg *shipment.Delivery
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockShipmentRepo.On("AddDelivery", ctx, mock.MatchedBy(func(d *shipment.Delivery) bool {
			capturedLeg = d
			return true
		})).Return(nil).Once(),
		mockShipmentRepo.On("Update", ctx, shipmentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewTransitionShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusDelivered, shipmentEntity.Status())
	require.NotNil(t, shipmentEntity.DeliveredAt())
	assert.Equal(t, deliveredAt, *shipmentEntity.DeliveredAt())
	require.NotNil(t, capturedLeg)
	assert.Equal(t, "Hamburg", capturedLeg.Location())
	assert.Equal(t, shipment.DeliveryCompleted, capturedLeg.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_BackwardTransitionRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	admin := storedActor(t, actor.RoleAdmin)
	shipmentEntity := storedShipment(t)
	require.NoError(t, shipmentEntity.TransitionTo(shipment.StatusInTransit, nil))

	cmd, err := commands.NewTransitionShipmentCommand(
		admin.ID(), shipmentEntity.ID(), shipment.StatusPending, nil,
	)
	require.NoError(t, err)

	mockActorRepo := new(MockActorRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockShipmentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, admin.ID()).Return(admin, nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, shipmentEntity.ID()).Return(shipmentEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewTransitionShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, shipment.StatusInTransit, shipmentEntity.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipmentRepo.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_DeniedForCustomer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	customer := storedActor(t, actor.RoleCustomer)
	shipmentEntity := storedShipment(t)

	cmd, err := commands.NewTransitionShipmentCommand(
		customer.ID(), shipmentEntity.ID(), shipment.StatusInTransit, nil,
	)
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

	handler := commands.NewTransitionShipmentCommandHandler(mockFactory, services.NewAuthorizer())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockActorRepo.AssertExpectations(t)
}

func TestNewTransitionShipmentCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewTransitionShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.StatusUnknown, nil,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
