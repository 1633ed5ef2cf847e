package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterActorCommand_ValidInput(t *testing.T) {
	// Arrange
	name := "Jane Smith"
	role := actor.RoleWarehouseManager

	// Act
	cmd, err := commands.NewRegisterActorCommand(name, role)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, name, cmd.Name())
	assert.Equal(t, role, cmd.Role())
	assert.NotZero(t, cmd.ActorID())
	assert.NoError(t, cmd.ActorID().Validate())
}

func TestNewRegisterActorCommand_UnknownRoleIsAccepted(t *testing.T) {
	// RoleUnknown means "no role requested"; the aggregate resolves it to the
	// default role during registration.
	cmd, err := commands.NewRegisterActorCommand("Jane Smith", actor.RoleUnknown)

	require.NoError(t, err)
	assert.Equal(t, actor.RoleUnknown, cmd.Role())
}

func TestNewRegisterActorCommand_EmptyName(t *testing.T) {
	// Act
	_, err := commands.NewRegisterActorCommand("", actor.RoleCustomer)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorNameIsRequired)
}

func TestNewRegisterActorCommand_InvalidRole(t *testing.T) {
	// Act
	_, err := commands.NewRegisterActorCommand("Jane Smith", actor.Role(42))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterActorCommand_MultipleCommandsGenerateUniqueIDs(t *testing.T) {
	cmd1, err := commands.NewRegisterActorCommand("Actor 1", actor.RoleCustomer)
	require.NoError(t, err)

	cmd2, err := commands.NewRegisterActorCommand("Actor 2", actor.RoleCustomer)
	require.NoError(t, err)

	assert.NotEqual(t, cmd1.ActorID(), cmd2.ActorID())
}

func TestRegisterActorCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.RegisterActorCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterActorCommandIsNotConstructed)
}
