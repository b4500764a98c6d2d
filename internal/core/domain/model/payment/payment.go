// Package payment implements the immutable record of a sender's payment for a parcel.
package payment

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

const (
	DefaultCurrency = "usd"
	DefaultMethod   = "card"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is immutable once created.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	payerEmail    kernel.Email
	amount        int64
	currency      string
	method        string
	transactionID string
	paidAt        time.Time
	guard         guard.ConstructorGuard
}

// Receipt carries the confirmed payment as reported by the payment processor.
type Receipt struct {
	ParcelID      kernel.UUID
	PayerEmail    kernel.Email
	Amount        int64
	Currency      string
	Method        string
	TransactionID string
}

// NewPayment records a confirmed payment. Empty currency and method fall
// back to "usd" and "card".
func NewPayment(id kernel.UUID, r Receipt, paidAt time.Time) (*Payment, error) {
	var problems []error
	problems = append(problems, id.Validate(), r.ParcelID.Validate(), r.PayerEmail.Validate())
	if r.Amount <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("amount", r.Amount, 1, "+inf"))
	}
	if strings.TrimSpace(r.TransactionID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("transactionId"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	currency := strings.ToLower(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	method := strings.TrimSpace(r.Method)
	if method == "" {
		method = DefaultMethod
	}

	return &Payment{
		id:            id,
		parcelID:      r.ParcelID,
		payerEmail:    r.PayerEmail,
		amount:        r.Amount,
		currency:      currency,
		method:        method,
		transactionID: strings.TrimSpace(r.TransactionID),
		paidAt:        paidAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID          { return p.id }
func (p *Payment) ParcelID() kernel.UUID    { return p.parcelID }
func (p *Payment) PayerEmail() kernel.Email { return p.payerEmail }
func (p *Payment) Amount() int64            { return p.amount }
func (p *Payment) Currency() string         { return p.currency }
func (p *Payment) Method() string           { return p.method }
func (p *Payment) TransactionID() string    { return p.transactionID }
func (p *Payment) PaidAt() time.Time        { return p.paidAt }
