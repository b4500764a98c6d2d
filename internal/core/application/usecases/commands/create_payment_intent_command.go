package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

type CreatePaymentIntentCommand struct {
	amount   int64
	currency string

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand takes the amount in the smallest currency unit.
func NewCreatePaymentIntentCommand(amount int64, currency string) (CreatePaymentIntentCommand, error) {
	if amount <= 0 {
		return CreatePaymentIntentCommand{}, errs.NewValueIsRequiredError("amountInCents")
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = payment.DefaultCurrency
	}

	return CreatePaymentIntentCommand{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) Amount() int64    { return c.amount }
func (c CreatePaymentIntentCommand) Currency() string { return c.currency }
