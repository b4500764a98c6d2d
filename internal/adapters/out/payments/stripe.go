// Package payments creates payment intents with Stripe.
package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"zapshift/internal/core/ports"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

const maxNetworkRetries = 1

var ErrAPIKeyIsRequired = errors.New("payment gateway key is required")

// GatewayError is an error answer from the gateway.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned %d: %s", e.StatusCode, e.Message)
}

type StripeProcessor struct {
	intents paymentintent.Client
}

// NewStripeProcessor builds a processor talking to apiURL, or to Stripe's
// public API when apiURL is empty.
func NewStripeProcessor(apiURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*StripeProcessor, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyIsRequired
	}

	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		LeveledLogger:     leveledLogger{logger: logger.With("component", "stripe")},
		MaxNetworkRetries: stripe.Int64(maxNetworkRetries),
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}

	return &StripeProcessor{
		intents: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: apiKey,
		},
	}, nil
}

// CreateIntent asks the gateway for a card payment intent of amount in the
// currency's smallest unit.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return ports.PaymentIntent{}, &GatewayError{StatusCode: stripeErr.HTTPStatusCode, Message: stripeErr.Msg}
		}
		return ports.PaymentIntent{}, fmt.Errorf("payment gateway unreachable: %w", err)
	}

	return ports.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}

// leveledLogger routes the SDK's request logging into slog.
type leveledLogger struct {
	logger *slog.Logger
}

func (l leveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l leveledLogger) Infof(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l leveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l leveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
