package commands

import (
	"context"
	"fmt"
	"log/slog"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// RecordPaymentCommandHandler stores a confirmed payment and flips the parcel
// to Paid in the same transaction. A parcel can be paid once.
type RecordPaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	clock       ports.Clock
	publisher   ports.EventPublisher
	logger      *slog.Logger
	maxAttempts int
}

func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	maxAttempts int,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		publisher:   publisher,
		logger:      logger.With("component", "RecordPaymentCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		recorded *payment.Payment
		event    tracking.Event
	)
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		recorded, event, err = h.record(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return recorded, nil
}

func (h RecordPaymentCommandHandler) record(
	ctx context.Context,
	cmd RecordPaymentCommand,
) (*payment.Payment, tracking.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, tracking.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, tracking.Event{}, err
	}

	caller := cmd.Caller()
	if !caller.IsAdmin() && !p.IsOwnedBy(caller.Email()) {
		return nil, tracking.Event{}, errs.NewForbiddenError("parcel owner", caller.Role().String())
	}

	if err = p.MarkPaid(); err != nil {
		return nil, tracking.Event{}, err
	}

	now := h.clock.Now()
	paid, err := payment.NewPayment(kernel.NewUUID(), payment.Receipt{
		ParcelID:      p.ID(),
		PayerEmail:    p.Booking().Sender.Email,
		Amount:        cmd.Amount(),
		Currency:      cmd.Currency(),
		Method:        cmd.Method(),
		TransactionID: cmd.TransactionID(),
	}, now)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, paid); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, tracking.Event{}, err
	}

	event, err := tracking.NewEvent(
		p.ID(),
		p.TrackingNumber(),
		p.DeliveryStatus().String(),
		"",
		fmt.Sprintf("Payment %s received", paid.TransactionID()),
		caller.Email().String(),
		now,
	)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, tracking.Event{}, err
	}

	return paid, event, nil
}
