package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeFacade creates card payment intents and verifies webhook payloads.
type StripeFacade struct {
	api           *client.API
	webhookSecret string
}

// NewStripeFacade creates a facade for the given secret key. backends may be nil
// to talk to the real Stripe API.
func NewStripeFacade(secretKey, webhookSecret string, backends *stripe.Backends) *StripeFacade {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeFacade{api: api, webhookSecret: webhookSecret}
}

// CreatePaymentIntent creates a payment intent. The ledger transaction id is used
// as the idempotency key so a retried request never creates a second intent.
func (f *StripeFacade) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.TransactionID.String())
	params.AddMetadata("transactionId", req.TransactionID.String())
	params.AddMetadata("accountId", req.AccountID.String())
	params.AddMetadata("accountName", req.AccountName)

	pi, err := f.api.PaymentIntents.New(params)
	if err != nil {
		logger.Log.Errorw("failed to create payment intent", "transaction_id", req.TransactionID, "amount_cents", req.AmountCents, "error", err)
		return nil, fmt.Errorf("%w: %v", models.ErrProvider, err)
	}

	logger.Log.Infow("payment intent created", "payment_intent_id", pi.ID, "transaction_id", req.TransactionID)

	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event.
// Payment intent events carry the intent id, charge id and failure message. A
// signed event whose payment intent cannot be decoded yields ErrMalformedEvent.
func (f *StripeFacade) ParseWebhook(payload []byte, signature string) (*models.ProviderEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, f.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		logger.Log.Warnw("webhook signature verification failed", "error", err)
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSignature, err)
	}

	out := &models.ProviderEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if !strings.HasPrefix(out.Type, "payment_intent.") || event.Data == nil {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		logger.Log.Warnw("webhook payment intent undecodable", "event_id", event.ID, "type", out.Type, "error", err)
		return nil, fmt.Errorf("%w: decode payment intent: %v", models.ErrMalformedEvent, err)
	}

	out.PaymentIntentID = pi.ID
	out.AmountCents = pi.Amount
	out.Metadata = pi.Metadata
	if pi.LatestCharge != nil {
		out.ChargeID = pi.LatestCharge.ID
	}
	if pi.LastPaymentError != nil {
		out.FailureReason = pi.LastPaymentError.Msg
	}
	return out, nil
}
