package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

// RecentTransactionsLimit is how many rows the wallet view returns.
const RecentTransactionsLimit = 50

// MaxInstantDeposit caps a single instant deposit.
var MaxInstantDeposit = money.FromUnits(10_000)

// TransactionLister lists the ledger rows of an account.
type TransactionLister interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// InstantDepositor credits an account immediately.
type InstantDepositor interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, description string, metadata models.Metadata) (*DepositResult, error)
}

// WalletService serves balance lookups and instant deposits.
type WalletService struct {
	accounts     AccountReader
	transactions TransactionLister
	depositor    InstantDepositor
}

// NewWalletService creates a new WalletService.
func NewWalletService(accounts AccountReader, transactions TransactionLister, depositor InstantDepositor) *WalletService {
	return &WalletService{
		accounts:     accounts,
		transactions: transactions,
		depositor:    depositor,
	}
}

// GetWallet returns the account balance and its most recent transactions.
func (s *WalletService) GetWallet(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "account_id", accountID, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	txs, err := s.transactions.ListByAccount(ctx, accountID, RecentTransactionsLimit)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "account_id", accountID, "error", err)
		return nil, err
	}

	return &models.Wallet{Balance: account.Balance, Transactions: txs}, nil
}

// InstantDeposit credits the account right away, as a simulated fiat top-up.
func (s *WalletService) InstantDeposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, method string) (*DepositResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > MaxInstantDeposit {
		return nil, models.NewError(models.ErrValidation, fmt.Sprintf("Maximum deposit is %s SHELL", MaxInstantDeposit))
	}
	method = strings.TrimSpace(method)
	if method == "" {
		method = "stripe_test"
	}

	return s.depositor.Deposit(ctx, accountID, amount, "Fiat Deposit via "+method, models.InstantMetadata{
		Source:   method,
		Currency: "USD",
	})
}
