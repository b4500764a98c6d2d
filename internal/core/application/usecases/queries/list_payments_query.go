package queries

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery lists payments, latest first. Admins may list everything
// or filter by payer; other callers get their own payments only.
type ListPaymentsQuery struct {
	payerEmail string

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(caller authz.Caller, payerEmail string) (ListPaymentsQuery, error) {
	if err := authz.RequireAuthenticated.Check(caller); err != nil {
		return ListPaymentsQuery{}, err
	}

	if payerEmail != "" {
		email, err := kernel.NewEmail(payerEmail)
		if err != nil {
			return ListPaymentsQuery{}, err
		}
		payerEmail = email.String()
	}

	if !caller.IsAdmin() {
		if payerEmail != "" && payerEmail != caller.Email().String() {
			return ListPaymentsQuery{}, errs.NewForbiddenError("payer", caller.Role().String())
		}
		payerEmail = caller.Email().String()
	}

	return ListPaymentsQuery{
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) PayerEmail() string { return q.payerEmail }

type PaymentView struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	PayerEmail    string    `json:"userEmail"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, parcel_id, payer_email, amount, currency, method, transaction_id, paid_at
		FROM payments`
	var args []any
	if query.PayerEmail() != "" {
		sql += " WHERE payer_email = ?"
		args = append(args, query.PayerEmail())
	}
	sql += " ORDER BY paid_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, pgerr.Classify("list payments", err)
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var (
			p            PaymentView
			id, parcelID uuid.UUID
		)
		if err := rows.Scan(&id, &parcelID, &p.PayerEmail, &p.Amount, &p.Currency, &p.Method, &p.TransactionID, &p.PaidAt); err != nil {
			return nil, err
		}
		p.ID = id.String()
		p.ParcelID = parcelID.String()
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Classify("list payments", err)
	}

	return payments, nil
}
