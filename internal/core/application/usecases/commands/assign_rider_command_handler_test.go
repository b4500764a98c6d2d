package commands_test

import (
	"errors"
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignRiderHandler(factory commands.DeliveryUoWFactory, publisher ports.EventPublisher) commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(factory, fixedClock{now}, publisher, discardLogger, commands.DefaultMaxAttempts)
}

func TestAssignRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	r := newRider(t, rider.Active, rider.Idle)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		riderRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.MatchedBy(func(e tracking.Event) bool {
			return e.Status == "rider-assigned" && e.Message == "Assigned to rider Karim" && e.UpdatedBy == "admin@zapshift.io"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
	)

	assigned, err := newAssignRiderHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.RiderAssigned, assigned.DeliveryStatus())
	assert.True(t, assigned.IsAssignedTo(r.ID()))
	assert.Equal(t, rider.InDelivery, r.WorkStatus())
	assert.Equal(t, now, *r.LastAssignedAt())
	mock.AssertExpectationsForObjects(t, factory, uow, parcelRepo, riderRepo, trackingRepo, publisher)
}

func TestAssignRiderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockDeliveryUoWFactory)

	_, err := newAssignRiderHandler(factory, nil).Handle(t.Context(), commands.AssignRiderCommand{})

	require.ErrorIs(t, err, commands.ErrAssignRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignRiderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignRiderCommand(
		newParcel(t, parcel.NotCollected, nil, "Dhaka").ID(),
		newRider(t, rider.Active, rider.Idle).ID(),
		mustEmail(t, "admin@zapshift.io"),
	)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err = newAssignRiderHandler(factory, nil).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_RiderNotFound(t *testing.T) {
	ctx := t.Context()
	p := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	r := newRider(t, rider.Active, rider.Idle)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, r.ID()).Return(nil, errs.NewObjectNotFoundError("rider", r.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = newAssignRiderHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_RiderInDeliveryLeavesRecordsUnchanged(t *testing.T) {
	ctx := t.Context()
	p := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	r := newRider(t, rider.Active, rider.InDelivery)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = newAssignRiderHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, rider.ErrRiderUnavailable)
	assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
	assert.Nil(t, p.Rider())
	assert.Nil(t, r.LastAssignedAt())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	riderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_RetriesAfterConflict(t *testing.T) {
	ctx := t.Context()
	stale := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	fresh, err := parcel.RestoreParcel(parcel.State{
		ID:             stale.ID(),
		TrackingNumber: stale.TrackingNumber(),
		Booking:        stale.Booking(),
		CreatedAt:      stale.CreatedAt(),
		DeliveryStatus: parcel.NotCollected,
		PaymentStatus:  parcel.Paid,
		Version:        2,
	})
	require.NoError(t, err)
	staleRider := newRider(t, rider.Active, rider.Idle)
	freshRider := newRider(t, rider.Active, rider.Idle)
	cmd, err := commands.NewAssignRiderCommand(stale.ID(), staleRider.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, stale.ID()).Return(stale, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, staleRider.ID()).Return(staleRider, nil).Once(),
		parcelRepo.On("Update", ctx, stale).Return(errs.NewVersionIsInvalidError("parcel")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),

		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, stale.ID()).Return(fresh, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, staleRider.ID()).Return(freshRider, nil).Once(),
		parcelRepo.On("Update", ctx, fresh).Return(nil).Once(),
		riderRepo.On("Update", ctx, freshRider).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	assigned, err := newAssignRiderHandler(factory, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, fresh, assigned)
	assert.Equal(t, parcel.Paid, assigned.PaymentStatus())
	mock.AssertExpectationsForObjects(t, factory, uow, parcelRepo, riderRepo, trackingRepo)
}

// A losing concurrent assignment replays against the winner's committed state.
func TestAssignRiderCommandHandler_Handle_ConcurrentAssignmentLoses(t *testing.T) {
	ctx := t.Context()
	stale := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	ours := newRider(t, rider.Active, rider.Idle)
	winner := newRider(t, rider.Active, rider.InDelivery)
	committed, err := parcel.RestoreParcel(parcel.State{
		ID:             stale.ID(),
		TrackingNumber: stale.TrackingNumber(),
		Booking:        stale.Booking(),
		CreatedAt:      stale.CreatedAt(),
		DeliveryStatus: parcel.RiderAssigned,
		PaymentStatus:  parcel.Unpaid,
		Rider:          snapshot(winner),
		Version:        2,
	})
	require.NoError(t, err)
	cmd, err := commands.NewAssignRiderCommand(stale.ID(), ours.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, stale.ID()).Return(stale, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, ours.ID()).Return(ours, nil).Once(),
		parcelRepo.On("Update", ctx, stale).Return(errs.NewVersionIsInvalidError("parcel")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),

		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, stale.ID()).Return(committed, nil).Once(),
		riderRepo.On("GetForUpdate", ctx, ours.ID()).Return(newRider(t, rider.Active, rider.Idle), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = newAssignRiderHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, parcel.ErrParcelNotAssignable)
	assert.True(t, committed.IsAssignedTo(winner.ID()))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := t.Context()
	cmdParcel := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	cmdRider := newRider(t, rider.Active, rider.Idle)
	cmd, err := commands.NewAssignRiderCommand(cmdParcel.ID(), cmdRider.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	factory.On("Create").Return(uow).Times(2)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ParcelRepository").Return(parcelRepo).Times(2)
	uow.On("RiderRepository").Return(riderRepo).Times(2)
	uow.On("Rollback", ctx).Return(nil).Times(2)
	parcelRepo.On("GetForUpdate", ctx, cmdParcel.ID()).Return(newParcel(t, parcel.NotCollected, nil, "Dhaka"), nil).Once()
	parcelRepo.On("GetForUpdate", ctx, cmdParcel.ID()).Return(newParcel(t, parcel.NotCollected, nil, "Dhaka"), nil).Once()
	riderRepo.On("GetForUpdate", ctx, cmdRider.ID()).Return(newRider(t, rider.Active, rider.Idle), nil).Once()
	riderRepo.On("GetForUpdate", ctx, cmdRider.ID()).Return(newRider(t, rider.Active, rider.Idle), nil).Once()
	parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(errs.NewVersionIsInvalidError("parcel")).Times(2)

	handler := commands.NewAssignRiderCommandHandler(factory, fixedClock{now}, nil, discardLogger, 2)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	mock.AssertExpectationsForObjects(t, factory, uow, parcelRepo, riderRepo)
}

func TestAssignRiderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	p := newParcel(t, parcel.NotCollected, nil, "Dhaka")
	r := newRider(t, rider.Active, rider.Idle)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), mustEmail(t, "admin@zapshift.io"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockDeliveryUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	riderRepo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	parcelRepo.On("Update", ctx, p).Return(nil).Once()
	riderRepo.On("Update", ctx, r).Return(nil).Once()
	trackingRepo.On("Add", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("tracking.Event")).Return(errors.New("redis down")).Once()

	_, err = newAssignRiderHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
