package models

import "github.com/google/uuid"

// Provider event types the settlement layer reacts to.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentIntentRequest asks the payment provider to create a card payment intent.
type PaymentIntentRequest struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	AccountName   string
	AmountCents   int64
	Currency      string
	Description   string
}

// PaymentIntent is the provider-side payment object a client completes.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
}

// ProviderEvent is a verified webhook notification from the payment provider.
type ProviderEvent struct {
	ID              string
	Type            string
	PaymentIntentID string
	ChargeID        string
	AmountCents     int64
	FailureReason   string
	Metadata        map[string]string
}

// DepositOutcome is the result reported for an externally funded deposit.
type DepositOutcome struct {
	Success       bool
	ChargeID      string
	FailureReason string
}
