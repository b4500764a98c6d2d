package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

type RecordPaymentCommand struct {
	caller        authz.Caller
	parcelID      kernel.UUID
	amount        int64
	currency      string
	method        string
	transactionID string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	caller authz.Caller,
	parcelID kernel.UUID,
	amount int64,
	currency, method, transactionID string,
) (RecordPaymentCommand, error) {
	var problems []error
	problems = append(problems, parcelID.Validate())
	if amount <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("amount", amount, 1, "+inf"))
	}
	if strings.TrimSpace(transactionID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("transactionId"))
	}
	if err := errors.Join(problems...); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		caller:        caller,
		parcelID:      parcelID,
		amount:        amount,
		currency:      currency,
		method:        method,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) Caller() authz.Caller  { return c.caller }
func (c RecordPaymentCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c RecordPaymentCommand) Amount() int64         { return c.amount }
func (c RecordPaymentCommand) Currency() string      { return c.currency }
func (c RecordPaymentCommand) Method() string        { return c.method }
func (c RecordPaymentCommand) TransactionID() string { return c.transactionID }
