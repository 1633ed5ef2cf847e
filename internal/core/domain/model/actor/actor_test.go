package actor_test

import (
	"testing"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid actor with explicit role", func(t *testing.T) {
		a, err := actor.NewActor(validID, "manager", actor.RoleWarehouseManager)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, "manager", a.Name())
		assert.Equal(t, actor.RoleWarehouseManager, a.Role())
		assert.False(t, a.IsElevated())
	})

	t.Run("should assign default role when none supplied", func(t *testing.T) {
		a, err := actor.NewActor(validID, "newcomer", actor.RoleUnknown)

		require.NoError(t, err)
		assert.Equal(t, actor.RoleCustomer, a.Role())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := actor.NewActor(invalidID, "manager", actor.RoleAdmin)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		a, err := actor.NewActor(validID, "", actor.RoleAdmin)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with out-of-set role", func(t *testing.T) {
		a, err := actor.NewActor(validID, "manager", actor.Role(42))

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "role")
	})
}

func TestRestoreActor(t *testing.T) {
	t.Run("should restore elevated actor", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.RestoreActor(id, "root", actor.RoleAdmin, true)

		require.NoError(t, err)
		assert.True(t, a.IsElevated())
		assert.Equal(t, actor.RoleAdmin, a.Role())
	})

	t.Run("should re-validate stored values", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.RestoreActor(id, "", actor.RoleAdmin, false)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("should fail validation for nil actor", func(t *testing.T) {
		var a *actor.Actor

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value actor", func(t *testing.T) {
		var a actor.Actor

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})
}

func TestActor_ChangeRole(t *testing.T) {
	t.Run("should change role explicitly", func(t *testing.T) {
		a, _ := actor.NewActor(kernel.NewUUID(), "worker", actor.RoleCustomer)

		err := a.ChangeRole(actor.RoleDeliveryPerson)

		require.NoError(t, err)
		assert.Equal(t, actor.RoleDeliveryPerson, a.Role())
	})

	t.Run("should reject invalid role and keep the old one", func(t *testing.T) {
		a, _ := actor.NewActor(kernel.NewUUID(), "worker", actor.RoleCustomer)

		err := a.ChangeRole(actor.RoleUnknown)

		require.Error(t, err)
		assert.Equal(t, actor.RoleCustomer, a.Role())
	})
}

func TestActor_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should return true for actors with same ID", func(t *testing.T) {
		a1, _ := actor.NewActor(id1, "one", actor.RoleAdmin)
		a2, _ := actor.NewActor(id1, "two", actor.RoleCustomer)

		assert.True(t, a1.IsEqual(a2))
	})

	t.Run("should return false for different IDs or nil", func(t *testing.T) {
		a1, _ := actor.NewActor(id1, "one", actor.RoleAdmin)
		a2, _ := actor.NewActor(id2, "one", actor.RoleAdmin)

		assert.False(t, a1.IsEqual(a2))
		assert.False(t, a1.IsEqual(nil))
	})
}
