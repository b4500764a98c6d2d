package commands

import (
	"context"

	"zapshift/internal/core/ports"
)

type CreatePaymentIntentCommandHandler struct {
	processor ports.PaymentProcessor
}

func NewCreatePaymentIntentCommandHandler(processor ports.PaymentProcessor) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{processor: processor}
}

func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (ports.PaymentIntent, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}
	return h.processor.CreateIntent(ctx, cmd.Amount(), cmd.Currency())
}
