package ports

import (
	"context"

	"zapshift/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	// Add inserts an immutable payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error
}
