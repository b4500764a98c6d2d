package commands_test

import (
	"testing"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := ownerCaller(t)
	cmd, err := commands.NewApplyRiderCommand(caller, "Nadia", "+8801900000000", "Khulna")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockRiderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByEmail", ctx, caller.Email()).Return(nil, errs.NewObjectNotFoundError("rider", caller.Email())).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	applied, err := commands.NewApplyRiderCommandHandler(factory, fixedClock{now}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.Pending, applied.Status())
	assert.Equal(t, rider.Idle, applied.WorkStatus())
	assert.Equal(t, "Khulna", applied.District().String())
	assert.Equal(t, now, applied.AppliedAt())
	mock.AssertExpectationsForObjects(t, factory, uow, riderRepo)
}

func TestApplyRiderCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	existing := newRider(t, rider.Pending, rider.Idle)
	cmd, err := commands.NewApplyRiderCommand(riderCaller(existing), "Karim", "", "Dhaka")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockRiderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	riderRepo.On("GetByEmail", ctx, existing.Email()).Return(existing, nil).Once()

	_, err = commands.NewApplyRiderCommandHandler(factory, fixedClock{now}).Handle(ctx, cmd)

	require.ErrorContains(t, err, commands.ErrRiderAlreadyApplied.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	riderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewApplyRiderCommand_Anonymous(t *testing.T) {
	_, err := commands.NewApplyRiderCommand(authz.Caller{}, "Karim", "", "Dhaka")

	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}
