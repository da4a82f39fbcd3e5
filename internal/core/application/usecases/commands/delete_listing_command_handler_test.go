package commands_test

import (
	"testing"

	"propertyservice/internal/core/application/usecases/commands"
	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewDeleteListingCommand(id)
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteListingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewDeleteListingCommand(id)
	require.NoError(t, err)

	repo := new(MockListingRepository)
	uow := new(MockListingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(errs.NewObjectNotFoundError("propertyId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteListingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewDeleteListingCommand_InvalidID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewDeleteListingCommand(invalidID)

	require.Error(t, err)
}
