package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/money"
)

// TransactionType is the kind of ledger entry.
type TransactionType string

const (
	TxDeposit    TransactionType = "DEPOSIT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxPurchase   TransactionType = "PURCHASE"
	TxSale       TransactionType = "SALE"
	TxFee        TransactionType = "FEE"
	TxRefund     TransactionType = "REFUND"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
)

// TransactionDB is an append-only ledger row. Once COMPLETED or FAILED it is never changed.
type TransactionDB struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	Type          TransactionType   `json:"type" db:"type"`
	Amount        money.Amount      `json:"amount" db:"amount"`
	Description   string            `json:"description" db:"description"`
	Status        TransactionStatus `json:"status" db:"status"`
	Reference     *string           `json:"hash,omitempty" db:"reference"`
	FromAccountID uuid.NullUUID     `json:"from_account_id" db:"from_account_id"`
	ToAccountID   uuid.NullUUID     `json:"to_account_id" db:"to_account_id"`
	Metadata      MetadataColumn    `json:"metadata" db:"metadata"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
}

// BalanceEffect returns how much this row contributes to the balance of account.
//
// DEPOSIT, SALE and REFUND credit the destination once COMPLETED. PURCHASE debits
// the source once COMPLETED. WITHDRAWAL debits the source from the moment it is
// recorded, because funds leave the balance before maturation. FEE rows only
// record platform revenue; the balance change they describe is already netted
// into the SALE or WITHDRAWAL they accompany.
func (t *TransactionDB) BalanceEffect(account uuid.UUID) money.Amount {
	switch t.Type {
	case TxDeposit, TxSale, TxRefund:
		if t.Status == TxCompleted && t.ToAccountID.Valid && t.ToAccountID.UUID == account {
			return t.Amount
		}
	case TxPurchase:
		if t.Status == TxCompleted && t.FromAccountID.Valid && t.FromAccountID.UUID == account {
			return t.Amount
		}
	case TxWithdrawal:
		if t.Status != TxFailed && t.FromAccountID.Valid && t.FromAccountID.UUID == account {
			return t.Amount
		}
	}
	return 0
}

// Ref returns the external reference or an empty string.
func (t *TransactionDB) Ref() string {
	if t.Reference == nil {
		return ""
	}
	return *t.Reference
}

// TransactionEvent is published to Kafka after a ledger change is committed.
type TransactionEvent struct {
	TransactionID string            `json:"transaction_id"`
	Timestamp     int64             `json:"timestamp"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        money.Amount      `json:"amount"`
	AccountID     string            `json:"account_id"`
	Reference     string            `json:"reference,omitempty"`
}

// Reconciliation compares a stored balance with the one implied by the ledger.
type Reconciliation struct {
	AccountID uuid.UUID    `json:"account_id"`
	Actual    money.Amount `json:"actual"`
	Expected  money.Amount `json:"expected"`
	Drift     money.Amount `json:"drift"`
}

// Wallet is an account balance with its most recent ledger entries.
type Wallet struct {
	Balance      money.Amount    `json:"balance"`
	Transactions []TransactionDB `json:"transactions"`
}
