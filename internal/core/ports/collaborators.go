package ports

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/tracking"
)

// IdentityVerifier turns a bearer credential into a verified e-mail.
// Invalid or expired credentials return errs.UnauthenticatedError.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (kernel.Email, error)
}

// PaymentIntent is the client-confirmable handle returned by the payment processor.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentProcessor creates payment intents with an external gateway.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (PaymentIntent, error)
}

// EventPublisher fans committed tracking events out to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event tracking.Event) error
}

// Clock supplies the current time to command handlers.
type Clock interface {
	Now() time.Time
}
