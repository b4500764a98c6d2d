package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// PaymentStatus tells whether the sender has paid the delivery charge.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	Unpaid
	Paid
)

func (s PaymentStatus) String() string {
	switch s {
	case Unpaid:
		return "unpaid"
	case Paid:
		return "paid"
	default:
		return "unknown"
	}
}

func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParsePaymentStatus maps "unpaid" or "paid" to a PaymentStatus.
func ParsePaymentStatus(label string) (PaymentStatus, error) {
	switch label {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a payment status", label),
	)
}

// CashOutStatus tracks the rider payout of a delivered parcel.
// CashOutNone means the parcel never reached Delivered.
type CashOutStatus int

const (
	CashOutNone CashOutStatus = iota
	CashOutUnpaid
	CashOutPaid
)

func (s CashOutStatus) String() string {
	switch s {
	case CashOutUnpaid:
		return "unpaid"
	case CashOutPaid:
		return "paid"
	default:
		return ""
	}
}

// ParseCashOutStatus accepts "", "unpaid" and "paid".
func ParseCashOutStatus(label string) (CashOutStatus, error) {
	switch label {
	case "":
		return CashOutNone, nil
	case "unpaid":
		return CashOutUnpaid, nil
	case "paid":
		return CashOutPaid, nil
	}
	return CashOutNone, errs.NewValueIsInvalidErrorWithCause(
		"cashOutStatus",
		fmt.Errorf("%q is not a cash-out status", label),
	)
}
