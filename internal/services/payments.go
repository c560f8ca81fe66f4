package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=services

// Payment errors
var (
	ErrProviderNotConfigured = models.NewError(models.ErrProviderDisabled, "Stripe is not configured")
	ErrPaymentProvider       = models.NewError(models.ErrProvider, "Payment provider request failed")
	ErrUnsupportedCurrency   = models.NewError(models.ErrValidation, "Unsupported currency")
)

// PaymentProvider creates card payment intents and verifies provider webhooks.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error)
	ParseWebhook(payload []byte, signature string) (*models.ProviderEvent, error)
}

// DepositSettler records and settles externally funded deposits.
type DepositSettler interface {
	CreatePendingDeposit(ctx context.Context, d PendingDeposit) (*models.TransactionDB, error)
	FinalizeExternalDeposit(ctx context.Context, reference string, outcome models.DepositOutcome) (*models.TransactionDB, error)
}

// AccountReader reads accounts by id.
type AccountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error)
}

// RateQuoter quotes crypto units per one USD.
type RateQuoter interface {
	Quote(ctx context.Context, currency string) (decimal.Decimal, error)
}

// PaymentsConfig holds deposit limits and the simulated crypto receiving addresses.
type PaymentsConfig struct {
	CardMin   money.Amount
	CardMax   money.Amount
	CryptoMin money.Amount
	CryptoMax money.Amount
	CryptoTTL time.Duration
	Addresses map[string]string // receiving address per currency
}

// DefaultPaymentsConfig returns the marketplace deposit limits.
func DefaultPaymentsConfig() PaymentsConfig {
	return PaymentsConfig{
		CardMin:   money.FromUnits(5),
		CardMax:   money.FromUnits(10_000),
		CryptoMin: money.FromUnits(10),
		CryptoMax: money.FromUnits(50_000),
		CryptoTTL: 30 * time.Minute,
		Addresses: map[string]string{
			"ETH":  "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			"BTC":  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			"USDC": "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			"USDT": "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
		},
	}
}

// CardDepositResult is returned to the client that completes the payment intent.
type CardDepositResult struct {
	ClientSecret  string
	TransactionID uuid.UUID
	Amount        money.Amount
}

// CryptoDepositResult carries the payment instructions for a crypto deposit.
type CryptoDepositResult struct {
	PaymentID      string
	TransactionID  uuid.UUID
	Currency       string
	Address        string
	ExpectedAmount decimal.Decimal
	Amount         money.Amount
	QRCode         string
	ExpiresAt      time.Time
}

// PaymentsService integrates the payment provider with the settlement engine.
type PaymentsService struct {
	provider PaymentProvider
	settler  DepositSettler
	accounts AccountReader
	quoter   RateQuoter
	cfg      PaymentsConfig
	now      func() time.Time
}

// NewPaymentsService creates a PaymentsService. provider may be nil when card
// payments are not configured.
func NewPaymentsService(
	provider PaymentProvider,
	settler DepositSettler,
	accounts AccountReader,
	quoter RateQuoter,
	cfg PaymentsConfig,
) *PaymentsService {
	return &PaymentsService{
		provider: provider,
		settler:  settler,
		accounts: accounts,
		quoter:   quoter,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateCardDeposit opens a payment intent for the amount and records a PENDING
// DEPOSIT keyed by the intent id.
func (s *PaymentsService) CreateCardDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount) (*CardDepositResult, error) {
	if s.provider == nil {
		return nil, ErrProviderNotConfigured
	}
	if amount < s.cfg.CardMin || amount > s.cfg.CardMax {
		return nil, models.NewError(models.ErrValidation,
			fmt.Sprintf("Amount must be between %s and %s USD", s.cfg.CardMin, s.cfg.CardMax))
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	txID := uuid.New()
	intent, err := s.provider.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
		TransactionID: txID,
		AccountID:     accountID,
		AccountName:   account.Name,
		AmountCents:   amount.Cents(),
		Currency:      "usd",
		Description:   fmt.Sprintf("SHELL deposit: %s credits", amount),
	})
	if err != nil {
		logger.Log.Errorw("failed to create payment intent", "account_id", accountID, "amount", amount, "error", err)
		if errors.Is(err, models.ErrProvider) {
			return nil, err
		}
		return nil, ErrPaymentProvider
	}

	t, err := s.settler.CreatePendingDeposit(ctx, PendingDeposit{
		ID:          txID,
		AccountID:   accountID,
		Amount:      amount,
		Reference:   intent.ID,
		Description: "Stripe Deposit (Pending)",
		Metadata: models.CardMetadata{
			Currency:        "USD",
			PaymentIntentID: intent.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("card deposit initiated", "transaction_id", t.ID, "payment_intent_id", intent.ID, "amount", amount)
	return &CardDepositResult{
		ClientSecret:  intent.ClientSecret,
		TransactionID: t.ID,
		Amount:        amount,
	}, nil
}

// CreateCryptoDeposit records a PENDING DEPOSIT for a simulated crypto payment
// and returns the address, expected amount and a QR code to pay it.
func (s *PaymentsService) CreateCryptoDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, currency string) (*CryptoDepositResult, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "ETH"
	}
	address, ok := s.cfg.Addresses[currency]
	if !ok {
		return nil, ErrUnsupportedCurrency
	}
	if amount < s.cfg.CryptoMin || amount > s.cfg.CryptoMax {
		return nil, models.NewError(models.ErrValidation,
			fmt.Sprintf("Amount must be between %s and %s USD", s.cfg.CryptoMin, s.cfg.CryptoMax))
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	rate, err := s.quoter.Quote(ctx, currency)
	if err != nil {
		return nil, err
	}
	expected := amount.Decimal().Mul(rate).Round(8)

	now := s.now()
	id := accountID.String()
	paymentID := fmt.Sprintf("crypto_%d_%s", now.UnixMilli(), id[len(id)-8:])
	expiresAt := now.Add(s.cfg.CryptoTTL)

	qr, err := paymentQRCode(currency, address, expected)
	if err != nil {
		logger.Log.Errorw("failed to render payment QR code", "payment_id", paymentID, "error", err)
		return nil, err
	}

	t, err := s.settler.CreatePendingDeposit(ctx, PendingDeposit{
		AccountID:   accountID,
		Amount:      amount,
		Reference:   paymentID,
		Description: fmt.Sprintf("Crypto Deposit %s (Pending)", currency),
		Metadata: models.CryptoMetadata{
			Currency:       currency,
			Address:        address,
			ExpectedAmount: expected,
			PaymentID:      paymentID,
			USDAmount:      amount,
			ExpiresAt:      expiresAt,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("crypto deposit initiated", "transaction_id", t.ID, "payment_id", paymentID, "currency", currency, "expected", expected.String())
	return &CryptoDepositResult{
		PaymentID:      paymentID,
		TransactionID:  t.ID,
		Currency:       currency,
		Address:        address,
		ExpectedAmount: expected,
		Amount:         amount,
		QRCode:         qr,
		ExpiresAt:      expiresAt,
	}, nil
}

// HandleProviderWebhook verifies a provider notification and settles the deposit
// it refers to. Unknown event types and unknown references are acknowledged, as
// are signed events that cannot be decoded.
func (s *PaymentsService) HandleProviderWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.provider == nil {
		return ErrProviderNotConfigured
	}

	event, err := s.provider.ParseWebhook(payload, signature)
	if errors.Is(err, models.ErrMalformedEvent) {
		// signed by the provider, so redelivery would fail the same way
		webhookEventsTotal.WithLabelValues("unknown", "malformed").Inc()
		logger.Log.Warnw("acknowledging undecodable provider event", "error", err)
		return nil
	}
	if err != nil {
		webhookEventsTotal.WithLabelValues("unknown", "invalid_signature").Inc()
		logger.Log.Warnw("rejected provider webhook", "error", err)
		return err
	}

	var outcome models.DepositOutcome
	switch event.Type {
	case models.EventPaymentSucceeded:
		outcome = models.DepositOutcome{Success: true, ChargeID: event.ChargeID}
	case models.EventPaymentFailed:
		reason := event.FailureReason
		if reason == "" {
			reason = "payment failed"
		}
		outcome = models.DepositOutcome{ChargeID: event.ChargeID, FailureReason: reason}
	default:
		webhookEventsTotal.WithLabelValues(event.Type, "ignored").Inc()
		logger.Log.Infow("ignoring provider event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	_, err = s.settler.FinalizeExternalDeposit(ctx, event.PaymentIntentID, outcome)
	switch {
	case errors.Is(err, models.ErrNotFound):
		webhookEventsTotal.WithLabelValues(event.Type, "unknown_reference").Inc()
		logger.Log.Warnw("provider event for unknown deposit", "event_id", event.ID, "payment_intent_id", event.PaymentIntentID)
		return nil
	case err != nil:
		webhookEventsTotal.WithLabelValues(event.Type, "error").Inc()
		return err
	}

	webhookEventsTotal.WithLabelValues(event.Type, "ok").Inc()
	return nil
}

// SettleDeposit finalizes a pending deposit by its external reference. It is the
// manual confirmation step for crypto deposits.
func (s *PaymentsService) SettleDeposit(ctx context.Context, reference string, outcome models.DepositOutcome) (*models.TransactionDB, error) {
	if !outcome.Success && outcome.FailureReason == "" {
		outcome.FailureReason = "rejected by administrator"
	}
	t, err := s.settler.FinalizeExternalDeposit(ctx, reference, outcome)
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("deposit settled manually", "reference", reference, "status", t.Status)
	return t, nil
}

// paymentQRCode renders <currency>:<address>?amount=<expected> as a PNG data URI.
func paymentQRCode(currency, address string, expected decimal.Decimal) (string, error) {
	uri := fmt.Sprintf("%s:%s?amount=%s", strings.ToLower(currency), address, expected.String())

	qr, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
