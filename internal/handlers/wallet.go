package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=handlers

// WalletReader defines the interface for retrieving the wallet of an account.
type WalletReader interface {
	GetWallet(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error)
}

// InstantDepositor credits simulated fiat deposits.
type InstantDepositor interface {
	InstantDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, method string) (*services.DepositResult, error)
}

// ExternalDepositCreator starts deposits funded outside the platform.
type ExternalDepositCreator interface {
	CreateCardDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount) (*services.CardDepositResult, error)
	CreateCryptoDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, currency string) (*services.CryptoDepositResult, error)
}

// Withdrawer debits withdrawals.
type Withdrawer interface {
	Withdraw(ctx context.Context, accountID uuid.UUID, amount money.Amount, destination string) (*services.WithdrawalResult, error)
}

// DepositRequest represents the JSON body for an instant deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount in SHELL
	// required: true
	// default: 50
	Amount money.Amount `json:"amount" swaggertype:"number"`

	// Funding method label
	// default: stripe_test
	Method string `json:"method" validate:"max=50"`
}

// DepositResponse represents a credited deposit
// swagger:model DepositResponse
type DepositResponse struct {
	NewBalance  money.Amount         `json:"newBalance" swaggertype:"number"`
	Transaction models.TransactionDB `json:"transaction"`
}

// CardDepositRequest represents the JSON body for a card deposit
// swagger:model CardDepositRequest
type CardDepositRequest struct {
	// Amount in SHELL, 1 SHELL = 1 USD
	// required: true
	// default: 25
	Amount money.Amount `json:"amount" swaggertype:"number"`
}

// CardDepositResponse carries the payment intent to confirm on the client
// swagger:model CardDepositResponse
type CardDepositResponse struct {
	ClientSecret  string       `json:"clientSecret"`
	TransactionID uuid.UUID    `json:"transactionId"`
	Amount        money.Amount `json:"amount" swaggertype:"number"`
}

// CryptoDepositRequest represents the JSON body for a crypto deposit
// swagger:model CryptoDepositRequest
type CryptoDepositRequest struct {
	// Amount in SHELL
	// required: true
	// default: 25
	Amount money.Amount `json:"amount" swaggertype:"number"`

	// BTC, ETH, USDC or USDT
	// required: true
	// default: USDC
	Currency string `json:"currency" validate:"required"`
}

// CryptoDepositResponse carries the payment instructions for a crypto deposit
// swagger:model CryptoDepositResponse
type CryptoDepositResponse struct {
	PaymentID      string          `json:"paymentId"`
	TransactionID  uuid.UUID       `json:"transactionId"`
	Currency       string          `json:"currency"`
	Address        string          `json:"address"`
	ExpectedAmount decimal.Decimal `json:"expectedAmount" swaggertype:"string"`
	Amount         money.Amount    `json:"amount" swaggertype:"number"`

	// PNG data URI of the payment URI
	QRCode    string    `json:"qrCode"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// WithdrawRequest represents the JSON body for a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount in SHELL, at least 10
	// required: true
	// default: 100
	Amount money.Amount `json:"amount" swaggertype:"number"`

	// Payout destination
	// default: bank_account
	Destination string `json:"destination" validate:"max=200"`
}

// WithdrawTransaction summarizes the pending withdrawal row
// swagger:model WithdrawTransaction
type WithdrawTransaction struct {
	ID        uuid.UUID                `json:"id"`
	Hash      string                   `json:"hash"`
	Amount    money.Amount             `json:"amount" swaggertype:"number"`
	Fee       money.Amount             `json:"fee" swaggertype:"number"`
	NetAmount money.Amount             `json:"netAmount" swaggertype:"number"`
	Status    models.TransactionStatus `json:"status"`
}

// WithdrawResponse represents an accepted withdrawal
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	NewBalance  money.Amount        `json:"newBalance" swaggertype:"number"`
	Transaction WithdrawTransaction `json:"transaction"`
}

// NewWalletHandler returns an HTTP handler for the wallet of the caller.
// @Summary Get wallet
// @Description Balance and the 50 most recent transactions
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Wallet
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /wallet [get]
func NewWalletHandler(svc WalletReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		wallet, err := svc.GetWallet(r.Context(), p.AccountID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, wallet)
	}
}

// NewDepositHandler returns an HTTP handler for instant deposits.
// @Summary Instant deposit
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param depositRequest body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /wallet/deposit [post]
func NewDepositHandler(svc InstantDepositor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req DepositRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.InstantDeposit(r.Context(), p.AccountID, req.Amount, req.Method)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, DepositResponse{
			NewBalance:  res.NewBalance,
			Transaction: res.Transaction,
		})
	}
}

// NewCardDepositHandler returns an HTTP handler that opens a card payment intent.
// @Summary Card deposit
// @Description Create a pending deposit and a payment intent; the balance is credited by the webhook
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cardDepositRequest body handlers.CardDepositRequest true "Card Deposit Request"
// @Success 200 {object} handlers.CardDepositResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 502 {object} handlers.ErrorResponse "Payment provider error"
// @Failure 503 {object} handlers.ErrorResponse "Payment provider not configured"
// @Router /wallet/deposit/card [post]
func NewCardDepositHandler(svc ExternalDepositCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req CardDepositRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.CreateCardDeposit(r.Context(), p.AccountID, req.Amount)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CardDepositResponse{
			ClientSecret:  res.ClientSecret,
			TransactionID: res.TransactionID,
			Amount:        res.Amount,
		})
	}
}

// NewCryptoDepositHandler returns an HTTP handler that issues crypto payment instructions.
// @Summary Crypto deposit
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cryptoDepositRequest body handlers.CryptoDepositRequest true "Crypto Deposit Request"
// @Success 200 {object} handlers.CryptoDepositResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or unsupported currency"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /wallet/deposit/crypto [post]
func NewCryptoDepositHandler(svc ExternalDepositCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req CryptoDepositRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.CreateCryptoDeposit(r.Context(), p.AccountID, req.Amount, req.Currency)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, CryptoDepositResponse{
			PaymentID:      res.PaymentID,
			TransactionID:  res.TransactionID,
			Currency:       res.Currency,
			Address:        res.Address,
			ExpectedAmount: res.ExpectedAmount,
			Amount:         res.Amount,
			QRCode:         res.QRCode,
			ExpiresAt:      res.ExpiresAt,
		})
	}
}

// NewWithdrawHandler returns an HTTP handler for withdrawals.
// @Summary Withdraw
// @Description Debit the amount now; the withdrawal completes asynchronously
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawRequest body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, below minimum or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /wallet/withdraw [post]
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req WithdrawRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Withdraw(r.Context(), p.AccountID, req.Amount, req.Destination)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawResponse{
			NewBalance: res.NewBalance,
			Transaction: WithdrawTransaction{
				ID:        res.Transaction.ID,
				Hash:      res.Transaction.Ref(),
				Amount:    res.Transaction.Amount,
				Fee:       res.Fee,
				NetAmount: res.NetAmount,
				Status:    res.Transaction.Status,
			},
		})
	}
}
