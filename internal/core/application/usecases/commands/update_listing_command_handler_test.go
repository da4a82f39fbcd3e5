package commands_test

import (
	"testing"
	"time"

	"propertyservice/internal/core/application/usecases/commands"
	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredProperty(t *testing.T, id kernel.UUID) *listing.Property {
	t.Helper()
	loc, err := listing.RestoreLocation(3, "Durbar Marg", "Kathmandu", listing.RegionBagmati, "Nepal", 44600, nil, nil)
	require.NoError(t, err)
	p, err := listing.RestoreProperty(id, "Sunny plot", "Old description",
		listing.TypeLand, listing.StatusAvailable, listing.ApprovalApproved,
		loc, kernel.NewUUID(), time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	return p
}

func TestUpdateListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	property := restoredProperty(t, id)

	newTitle := "Shady plot"
	newStatus := listing.StatusRented
	newCity := "Lalitpur"
	cmd, err := commands.NewUpdateListingCommand(id, &newTitle, nil, nil, &newStatus,
		listing.LocationPatch{City: &newCity})
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(property, nil).Once(),
		repo.On("Update", mock.Anything, property).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Shady plot", property.Title())
	assert.Equal(t, "Old description", property.Description())
	assert.Equal(t, listing.StatusRented, property.Status())
	assert.Equal(t, "Lalitpur", property.Location().City())
	assert.Equal(t, "Durbar Marg", property.Location().Address())
	assert.Equal(t, int64(3), property.Location().ID())
	assert.Equal(t, listing.ApprovalApproved, property.ApprovalStatus()) // untouched

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateListingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateListingCommand(id, nil, nil, nil, nil, listing.LocationPatch{})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("propertyId", id)
	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateListingCommandHandler_Handle_InvalidPatchValue(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	property := restoredProperty(t, id)

	emptyAddress := ""
	cmd, err := commands.NewUpdateListingCommand(id, nil, nil, nil, nil,
		listing.LocationPatch{Address: &emptyAddress})
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(property, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, "Durbar Marg", property.Location().Address())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdateListingCommand(t *testing.T) {
	t.Run("should reject empty title", func(t *testing.T) {
		empty := ""

		_, err := commands.NewUpdateListingCommand(kernel.NewUUID(), &empty, nil, nil, nil, listing.LocationPatch{})

		require.Error(t, err)
	})

	t.Run("should reject invalid enums", func(t *testing.T) {
		bad := listing.PropertyType("castle")

		_, err := commands.NewUpdateListingCommand(kernel.NewUUID(), nil, nil, &bad, nil, listing.LocationPatch{})

		require.Error(t, err)
	})

	t.Run("should reject invalid region in location patch", func(t *testing.T) {
		bad := listing.Region("atlantis")

		_, err := commands.NewUpdateListingCommand(kernel.NewUUID(), nil, nil, nil, nil,
			listing.LocationPatch{State: &bad})

		require.Error(t, err)
	})

	t.Run("should accept all-nil update", func(t *testing.T) {
		cmd, err := commands.NewUpdateListingCommand(kernel.NewUUID(), nil, nil, nil, nil, listing.LocationPatch{})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})
}
