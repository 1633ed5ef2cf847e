package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	code, err := shipment.NewTrackingCode(time.Now())
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), code, "Warehouse A", "Stadium", "Equipment", time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	validCode, _ := shipment.TrackingCodeFromString("TRK20260831X7Q4R2")
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("should create pending shipment with nil delivery timestamp", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validCode, "CityA", "CityB", "Gear", createdAt)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.TrackingCode().IsEqual(validCode))
		assert.Equal(t, shipment.StatusPending, s.Status())
		assert.Equal(t, createdAt, s.CreatedAt())
		assert.Nil(t, s.DeliveredAt())
		assert.Nil(t, s.Event())
		assert.Nil(t, s.DeliveryPerson())
	})

	t.Run("should allow empty contents", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validCode, "CityA", "CityB", "", createdAt)

		require.NoError(t, err)
		assert.Empty(t, s.Contents())
	})

	t.Run("should fail with missing origin", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validCode, "", "CityB", "Gear", createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "value is required: origin")
	})

	t.Run("should fail with missing destination", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validCode, "CityA", "", "Gear", createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "value is required: destination")
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validCode, "CityA", "CityB", "Gear", time.Time{})

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with unconstructed tracking code", func(t *testing.T) {
		var code shipment.TrackingCode

		s, err := shipment.NewShipment(validID, code, "CityA", "CityB", "Gear", createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var code shipment.TrackingCode

		s, err := shipment.NewShipment(invalidID, code, "", "", "Gear", time.Time{})

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
	})
}

func TestShipment_TransitionTo(t *testing.T) {
	t.Run("should move to IN_TRANSIT without delivery timestamp", func(t *testing.T) {
		s := validTestShipment(t)

		err := s.TransitionTo(shipment.StatusInTransit, nil)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusInTransit, s.Status())
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("should set delivery timestamp when reaching DELIVERED", func(t *testing.T) {
		s := validTestShipment(t)
		require.NoError(t, s.TransitionTo(shipment.StatusInTransit, nil))

		deliveredAt := s.CreatedAt().Add(2 * time.Hour)
		err := s.TransitionTo(shipment.StatusDelivered, &deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDelivered, s.Status())
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, deliveredAt, *s.DeliveredAt())
	})

	t.Run("should reject DELIVERED without timestamp", func(t *testing.T) {
		s := validTestShipment(t)

		err := s.TransitionTo(shipment.StatusDelivered, nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.StatusPending, s.Status())
	})

	t.Run("should reject delivery timestamp before creation", func(t *testing.T) {
		s := validTestShipment(t)
		tooEarly := s.CreatedAt().Add(-time.Minute)

		err := s.TransitionTo(shipment.StatusDelivered, &tooEarly)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("should reject timestamp supplied for non-DELIVERED target", func(t *testing.T) {
		s := validTestShipment(t)
		now := time.Now()

		err := s.TransitionTo(shipment.StatusInTransit, &now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject any transition out of DELIVERED", func(t *testing.T) {
		s := validTestShipment(t)
		deliveredAt := s.CreatedAt().Add(time.Hour)
		require.NoError(t, s.TransitionTo(shipment.StatusDelivered, &deliveredAt))

		err := s.TransitionTo(shipment.StatusInTransit, nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, shipment.StatusDelivered, s.Status())
		assert.NotNil(t, s.DeliveredAt())
	})

	t.Run("should allow skipping IN_TRANSIT entirely", func(t *testing.T) {
		s := validTestShipment(t)
		deliveredAt := s.CreatedAt()

		err := s.TransitionTo(shipment.StatusDelivered, &deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDelivered, s.Status())
	})
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	code, _ := shipment.TrackingCodeFromString("TRK20260831X7Q4R2")
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	deliveredAt := createdAt.Add(26 * time.Hour)

	t.Run("should restore delivered shipment with references", func(t *testing.T) {
		eventID := kernel.NewUUID()
		personID := kernel.NewUUID()

		s, err := shipment.RestoreShipment(
			id, code, shipment.StatusDelivered,
			"CityA", "CityB", "Gear", createdAt, &deliveredAt, &eventID, &personID,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusDelivered, s.Status())
		require.NotNil(t, s.DeliveredAt())
		assert.Equal(t, deliveredAt, *s.DeliveredAt())
		require.NotNil(t, s.Event())
		assert.True(t, s.Event().IsEqual(eventID))
		require.NotNil(t, s.DeliveryPerson())
		assert.True(t, s.DeliveryPerson().IsEqual(personID))
	})

	t.Run("should reject DELIVERED row without delivery timestamp", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, code, shipment.StatusDelivered,
			"CityA", "CityB", "Gear", createdAt, nil, nil, nil,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should reject non-DELIVERED row carrying a delivery timestamp", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, code, shipment.StatusInTransit,
			"CityA", "CityB", "Gear", createdAt, &deliveredAt, nil, nil,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should reject delivery timestamp preceding creation", func(t *testing.T) {
		tooEarly := createdAt.Add(-time.Hour)

		s, err := shipment.RestoreShipment(
			id, code, shipment.StatusDelivered,
			"CityA", "CityB", "Gear", createdAt, &tooEarly, nil, nil,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should fail validation for nil shipment", func(t *testing.T) {
		var s *shipment.Shipment

		require.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
	})

	t.Run("should fail validation for zero value shipment", func(t *testing.T) {
		var s shipment.Shipment

		require.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
	})
}

func TestDelivery(t *testing.T) {
	t.Run("should create in-progress delivery leg", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "Stadium")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, shipment.DeliveryInProgress, d.Status())
		assert.Nil(t, d.AssignedPerson())
	})

	t.Run("should require a location", func(t *testing.T) {
		d, err := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should assign and complete", func(t *testing.T) {
		d, _ := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "Stadium")
		personID := kernel.NewUUID()

		require.NoError(t, d.Assign(personID))
		require.NotNil(t, d.AssignedPerson())

		require.NoError(t, d.Complete())
		assert.Equal(t, shipment.DeliveryCompleted, d.Status())
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		d, _ := shipment.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "Stadium")
		require.NoError(t, d.Complete())

		err := d.Complete()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
