package commands_test

import (
	"testing"

	"propertyservice/internal/core/application/usecases/commands"
	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateListingCommand(t *testing.T) {
	propertyID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	t.Run("should create valid command with all parameters", func(t *testing.T) {
		lat := float32(27.7)

		cmd, err := commands.NewCreateListingCommand(
			propertyID, ownerID, "Sunny plot", "desc",
			listing.TypeHouse, listing.StatusSold,
			"Durbar Marg", "Kathmandu", listing.RegionBagmati,
			"Nepal", 44600, &lat, nil, true,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.PropertyID().IsEqual(propertyID))
		assert.True(t, cmd.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Sunny plot", cmd.Title())
		assert.Equal(t, listing.TypeHouse, cmd.Type())
		assert.Equal(t, listing.StatusSold, cmd.Status())
		assert.Equal(t, "Kathmandu", cmd.City())
		assert.Equal(t, 44600, cmd.Zipcode())
		assert.Equal(t, &lat, cmd.Latitude())
		assert.Nil(t, cmd.Longitude())
		assert.True(t, cmd.AdminApproved())
	})

	t.Run("should allow empty type, status, country and zipcode", func(t *testing.T) {
		cmd, err := commands.NewCreateListingCommand(
			propertyID, ownerID, "Sunny plot", "",
			"", "",
			"Durbar Marg", "Kathmandu", listing.RegionBagmati,
			"", 0, nil, nil, false,
		)

		require.NoError(t, err)
		assert.Empty(t, cmd.Type())
		assert.Empty(t, cmd.Status())
		assert.Empty(t, cmd.Country())
		assert.Zero(t, cmd.Zipcode())
	})

	t.Run("should fail with invalid property ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateListingCommand(
			invalidID, ownerID, "Sunny plot", "",
			"", "", "Durbar Marg", "Kathmandu", listing.RegionBagmati,
			"", 0, nil, nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with missing owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		_, err := commands.NewCreateListingCommand(
			propertyID, invalidOwner, "Sunny plot", "",
			"", "", "Durbar Marg", "Kathmandu", listing.RegionBagmati,
			"", 0, nil, nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ownerId")
	})

	t.Run("should fail with empty required strings", func(t *testing.T) {
		_, err := commands.NewCreateListingCommand(
			propertyID, ownerID, "", "",
			"", "", "", "", listing.RegionBagmati,
			"", 0, nil, nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail with invalid enums", func(t *testing.T) {
		_, err := commands.NewCreateListingCommand(
			propertyID, ownerID, "Sunny plot", "",
			listing.PropertyType("castle"), listing.Status("reserved"),
			"Durbar Marg", "Kathmandu", listing.Region("atlantis"),
			"", 0, nil, nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "type")
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "state")
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.CreateListingCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateListingCommandIsNotConstructed, err)
	})
}
