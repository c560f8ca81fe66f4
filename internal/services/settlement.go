package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

//go:generate mockgen -source=settlement.go -destination=settlement_mock.go -package=services

// Settlement errors
var (
	ErrListingNotFound  = models.NewError(models.ErrNotFound, "Listing not found")
	ErrListingInactive  = models.NewError(models.ErrInvalidState, "Listing is no longer available")
	ErrOwnListing       = models.NewError(models.ErrInvalidState, "Cannot buy your own listing")
	ErrAlreadyPurchased = models.NewError(models.ErrInvalidState, "You already own this item")
	ErrNotEnoughShell   = models.NewError(models.ErrInsufficientFunds, "Insufficient SHELL balance")
	ErrAccountNotFound  = models.NewError(models.ErrNotFound, "Account not found")
	ErrInvalidAmount    = models.NewError(models.ErrValidation, "Amount must be a positive number")
	ErrDepositNotFound  = models.NewError(models.ErrNotFound, "Deposit not found")
)

// TxManager runs a function inside one database transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccountBalanceStore reads, locks and adjusts account balances.
type AccountBalanceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error)
	LockByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*models.AccountDB, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta money.Amount) (money.Amount, error)
}

// ListingLocker reads a listing under a shared lock.
type ListingLocker interface {
	GetForShare(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
}

// PurchaseWriter records listing ownership.
type PurchaseWriter interface {
	Exists(ctx context.Context, buyerID uuid.UUID, listingID uuid.UUID) (bool, error)
	Create(ctx context.Context, purchase *models.PurchaseDB) error
}

// Ledger appends and settles transaction rows.
type Ledger interface {
	Create(ctx context.Context, t *models.TransactionDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
	GetDepositByReferenceForUpdate(ctx context.Context, reference string) (*models.TransactionDB, error)
	Settle(ctx context.Context, id uuid.UUID, status models.TransactionStatus, metadata models.MetadataColumn) (bool, error)
	SumBalanceEffects(ctx context.Context, accountID uuid.UUID) (money.Amount, error)
}

// WithdrawalScheduler hands a pending withdrawal over for delayed maturation.
type WithdrawalScheduler interface {
	Schedule(ctx context.Context, withdrawalID uuid.UUID) error
}

// SettlementConfig holds the fee schedule.
type SettlementConfig struct {
	PurchaseFeeBps   int64 // platform fee on purchases, in basis points
	WithdrawalFeeBps int64 // processing fee on withdrawals, in basis points
	MinWithdrawal    money.Amount
}

// DefaultSettlementConfig is a 5% purchase fee, a 1% withdrawal fee and a 10 SHELL minimum withdrawal.
func DefaultSettlementConfig() SettlementConfig {
	return SettlementConfig{
		PurchaseFeeBps:   500,
		WithdrawalFeeBps: 100,
		MinWithdrawal:    money.FromUnits(10),
	}
}

// PurchaseResult is the outcome of a successful purchase.
type PurchaseResult struct {
	Purchase       models.PurchaseDB
	NewBalance     money.Amount
	Reference      string
	Fee            money.Amount
	SellerReceives money.Amount
}

// DepositResult is the outcome of a credited deposit.
type DepositResult struct {
	NewBalance  money.Amount
	Transaction models.TransactionDB
}

// WithdrawalResult is the outcome of an accepted withdrawal.
type WithdrawalResult struct {
	NewBalance  money.Amount
	NetAmount   money.Amount
	Fee         money.Amount
	Transaction models.TransactionDB
}

// PendingDeposit describes an externally funded deposit awaiting confirmation.
type PendingDeposit struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      money.Amount
	Reference   string
	Description string
	Metadata    models.Metadata
}

// SettlementService performs every balance mutation in the system. Each
// operation runs in a single database transaction; accounts are locked in a
// fixed order and balances are checked only after the locks are held.
type SettlementService struct {
	tm          TxManager
	accounts    AccountBalanceStore
	listings    ListingLocker
	purchases   PurchaseWriter
	ledger      Ledger
	scheduler   WithdrawalScheduler
	kafkaWriter KafkaWriter
	cfg         SettlementConfig
	now         func() time.Time
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	tm TxManager,
	accounts AccountBalanceStore,
	listings ListingLocker,
	purchases PurchaseWriter,
	ledger Ledger,
	scheduler WithdrawalScheduler,
	kafkaWriter KafkaWriter,
	cfg SettlementConfig,
) *SettlementService {
	return &SettlementService{
		tm:          tm,
		accounts:    accounts,
		listings:    listings,
		purchases:   purchases,
		ledger:      ledger,
		scheduler:   scheduler,
		kafkaWriter: kafkaWriter,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SetScheduler wires the withdrawal processor after construction; the processor
// itself depends on this service.
func (s *SettlementService) SetScheduler(scheduler WithdrawalScheduler) {
	s.scheduler = scheduler
}

// Purchase moves the listing price from buyer to seller minus the platform fee,
// records the purchase and appends PURCHASE, SALE and FEE rows sharing one reference.
func (s *SettlementService) Purchase(ctx context.Context, buyerID, listingID uuid.UUID) (res *PurchaseResult, err error) {
	defer func(start time.Time) { observeSettlement("purchase", start, err) }(time.Now())

	var entries []models.TransactionDB
	err = s.tm.WithinTx(ctx, func(ctx context.Context) error {
		entries = entries[:0]

		listing, err := s.listings.GetForShare(ctx, listingID)
		if err != nil {
			return err
		}
		if listing == nil {
			return ErrListingNotFound
		}
		if listing.Status != models.ListingActive {
			return ErrListingInactive
		}
		if listing.SellerID == buyerID {
			return ErrOwnListing
		}

		owned, err := s.purchases.Exists(ctx, buyerID, listingID)
		if err != nil {
			return err
		}
		if owned {
			return ErrAlreadyPurchased
		}

		locked, err := s.accounts.LockByIDs(ctx, buyerID, listing.SellerID)
		if err != nil {
			return err
		}
		buyer, ok := locked[buyerID]
		if !ok {
			return ErrAccountNotFound
		}
		if _, ok := locked[listing.SellerID]; !ok {
			return ErrAccountNotFound
		}

		price := listing.Price
		if buyer.Balance < price {
			return ErrNotEnoughShell
		}
		fee := price.Percent(s.cfg.PurchaseFeeBps)
		sellerReceives := price - fee

		newBalance, err := s.accounts.AdjustBalance(ctx, buyerID, -price)
		if err != nil {
			return insufficient(err)
		}
		if _, err := s.accounts.AdjustBalance(ctx, listing.SellerID, sellerReceives); err != nil {
			return err
		}

		now := s.now()
		purchase := models.PurchaseDB{
			ID:          uuid.New(),
			BuyerID:     buyerID,
			ListingID:   listingID,
			Price:       price,
			Delivered:   true,
			DeliveredAt: &now,
		}
		if err := s.purchases.Create(ctx, &purchase); err != nil {
			if errors.Is(err, models.ErrAlreadyExists) {
				return ErrAlreadyPurchased
			}
			return err
		}

		ref, err := newTxHash()
		if err != nil {
			return err
		}
		from := nullID(buyerID)
		to := nullID(listing.SellerID)

		entries = append(entries,
			models.TransactionDB{
				ID:            uuid.New(),
				Type:          models.TxPurchase,
				Amount:        -price,
				Description:   "Purchased: " + listing.Title,
				Status:        models.TxCompleted,
				Reference:     &ref,
				FromAccountID: from,
				ToAccountID:   to,
			},
			models.TransactionDB{
				ID:            uuid.New(),
				Type:          models.TxSale,
				Amount:        sellerReceives,
				Description:   "Sold: " + listing.Title,
				Status:        models.TxCompleted,
				Reference:     &ref,
				FromAccountID: from,
				ToAccountID:   to,
			},
		)
		if fee > 0 {
			entries = append(entries, models.TransactionDB{
				ID:            uuid.New(),
				Type:          models.TxFee,
				Amount:        fee,
				Description:   "Platform fee for: " + listing.Title,
				Status:        models.TxCompleted,
				Reference:     &ref,
				FromAccountID: to,
			})
		}
		for i := range entries {
			if err := s.ledger.Create(ctx, &entries[i]); err != nil {
				return err
			}
		}

		res = &PurchaseResult{
			Purchase:       purchase,
			NewBalance:     newBalance,
			Reference:      ref,
			Fee:            fee,
			SellerReceives: sellerReceives,
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("purchase failed", "buyer_id", buyerID, "listing_id", listingID, "error", err)
		return nil, err
	}

	settledVolume.WithLabelValues("purchase").Add(float64(res.Purchase.Price))
	publishTransactions(ctx, s.kafkaWriter, entries...)
	return res, nil
}

// Deposit credits an account immediately and appends a COMPLETED DEPOSIT row.
func (s *SettlementService) Deposit(ctx context.Context, accountID uuid.UUID, amount money.Amount, description string, metadata models.Metadata) (res *DepositResult, err error) {
	defer func(start time.Time) { observeSettlement("deposit", start, err) }(time.Now())

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	hash, err := newTxHash()
	if err != nil {
		return nil, err
	}

	err = s.tm.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.accounts.LockByIDs(ctx, accountID)
		if err != nil {
			return err
		}
		if _, ok := locked[accountID]; !ok {
			return ErrAccountNotFound
		}

		newBalance, err := s.accounts.AdjustBalance(ctx, accountID, amount)
		if err != nil {
			return err
		}

		t := models.TransactionDB{
			ID:          uuid.New(),
			Type:        models.TxDeposit,
			Amount:      amount,
			Description: description,
			Status:      models.TxCompleted,
			Reference:   &hash,
			ToAccountID: nullID(accountID),
			Metadata:    models.NewMetadata(metadata),
		}
		if err := s.ledger.Create(ctx, &t); err != nil {
			return err
		}

		res = &DepositResult{NewBalance: newBalance, Transaction: t}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("deposit failed", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}

	settledVolume.WithLabelValues("deposit").Add(float64(amount))
	publishTransactions(ctx, s.kafkaWriter, res.Transaction)
	return res, nil
}

// CreatePendingDeposit appends a PENDING DEPOSIT without touching the balance.
// The row is settled later by FinalizeExternalDeposit.
func (s *SettlementService) CreatePendingDeposit(ctx context.Context, d PendingDeposit) (*models.TransactionDB, error) {
	if d.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ref := d.Reference
	t := models.TransactionDB{
		ID:          d.ID,
		Type:        models.TxDeposit,
		Amount:      d.Amount,
		Description: d.Description,
		Status:      models.TxPending,
		Reference:   &ref,
		ToAccountID: nullID(d.AccountID),
		Metadata:    models.NewMetadata(d.Metadata),
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if err := s.ledger.Create(ctx, &t); err != nil {
		logger.Log.Errorw("failed to record pending deposit", "account_id", d.AccountID, "reference", d.Reference, "error", err)
		return nil, err
	}

	publishTransactions(ctx, s.kafkaWriter, t)
	return &t, nil
}

// Withdraw debits the full amount at once and records a PENDING WITHDRAWAL plus
// a COMPLETED FEE. The withdrawal matures asynchronously.
func (s *SettlementService) Withdraw(ctx context.Context, accountID uuid.UUID, amount money.Amount, destination string) (res *WithdrawalResult, err error) {
	defer func(start time.Time) { observeSettlement("withdraw", start, err) }(time.Now())

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < s.cfg.MinWithdrawal {
		return nil, models.NewError(models.ErrBelowMinimum, fmt.Sprintf("Minimum withdrawal is %s SHELL", s.cfg.MinWithdrawal))
	}
	if destination == "" {
		destination = "bank_account"
	}

	var entries []models.TransactionDB
	err = s.tm.WithinTx(ctx, func(ctx context.Context) error {
		entries = entries[:0]

		locked, err := s.accounts.LockByIDs(ctx, accountID)
		if err != nil {
			return err
		}
		account, ok := locked[accountID]
		if !ok {
			return ErrAccountNotFound
		}
		if account.Balance < amount {
			return ErrNotEnoughShell
		}

		newBalance, err := s.accounts.AdjustBalance(ctx, accountID, -amount)
		if err != nil {
			return insufficient(err)
		}

		fee := amount.Percent(s.cfg.WithdrawalFeeBps)
		net := amount - fee
		ref, err := newTxHash()
		if err != nil {
			return err
		}

		entries = append(entries, models.TransactionDB{
			ID:            uuid.New(),
			Type:          models.TxWithdrawal,
			Amount:        -amount,
			Description:   fmt.Sprintf("Withdrawal to %s (Net: %s)", destination, net),
			Status:        models.TxPending,
			Reference:     &ref,
			FromAccountID: nullID(accountID),
			Metadata: models.NewMetadata(models.WithdrawalMetadata{
				Destination: destination,
				Fee:         fee,
				NetAmount:   net,
			}),
		})
		if fee > 0 {
			entries = append(entries, models.TransactionDB{
				ID:            uuid.New(),
				Type:          models.TxFee,
				Amount:        fee,
				Description:   "Withdrawal processing fee",
				Status:        models.TxCompleted,
				Reference:     &ref,
				FromAccountID: nullID(accountID),
			})
		}
		for i := range entries {
			if err := s.ledger.Create(ctx, &entries[i]); err != nil {
				return err
			}
		}

		res = &WithdrawalResult{
			NewBalance:  newBalance,
			NetAmount:   net,
			Fee:         fee,
			Transaction: entries[0],
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("withdrawal failed", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}

	if s.scheduler != nil {
		if err := s.scheduler.Schedule(ctx, res.Transaction.ID); err != nil {
			// the recovery sweep picks it up from the database on the next start
			logger.Log.Errorw("failed to schedule withdrawal", "transaction_id", res.Transaction.ID, "error", err)
		}
	}

	settledVolume.WithLabelValues("withdraw").Add(float64(amount))
	publishTransactions(ctx, s.kafkaWriter, entries...)
	return res, nil
}

// CompleteWithdrawal matures a PENDING withdrawal. The balance was already
// debited when it was accepted, so only the status changes. It reports false
// when the row was not pending anymore.
func (s *SettlementService) CompleteWithdrawal(ctx context.Context, id uuid.UUID) (bool, error) {
	var done bool
	var settled *models.TransactionDB
	err := s.tm.WithinTx(ctx, func(ctx context.Context) error {
		t, err := s.ledger.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil || t.Type != models.TxWithdrawal {
			return models.NewError(models.ErrNotFound, "Withdrawal not found")
		}

		done, err = s.ledger.Settle(ctx, id, models.TxCompleted, models.MetadataColumn{})
		if err != nil {
			return err
		}
		if done {
			now := s.now()
			t.Status = models.TxCompleted
			t.CompletedAt = &now
			settled = t
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to complete withdrawal", "transaction_id", id, "error", err)
		return false, err
	}

	if settled != nil {
		logger.Log.Infow("withdrawal completed", "transaction_id", id)
		publishTransactions(ctx, s.kafkaWriter, *settled)
	}
	return done, nil
}

// FinalizeExternalDeposit settles the PENDING DEPOSIT with the given external
// reference. Success credits the recorded amount; failure only marks the row
// FAILED. A row that is already terminal is returned unchanged, which makes
// provider retries harmless.
func (s *SettlementService) FinalizeExternalDeposit(ctx context.Context, reference string, outcome models.DepositOutcome) (res *models.TransactionDB, err error) {
	defer func(start time.Time) { observeSettlement("finalize_deposit", start, err) }(time.Now())

	var changed bool
	err = s.tm.WithinTx(ctx, func(ctx context.Context) error {
		changed = false

		t, err := s.ledger.GetDepositByReferenceForUpdate(ctx, reference)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrDepositNotFound
		}
		if t.Status != models.TxPending {
			res = t
			return nil
		}

		status := models.TxFailed
		if outcome.Success {
			status = models.TxCompleted
			if !t.ToAccountID.Valid {
				return ErrAccountNotFound
			}
			locked, err := s.accounts.LockByIDs(ctx, t.ToAccountID.UUID)
			if err != nil {
				return err
			}
			if _, ok := locked[t.ToAccountID.UUID]; !ok {
				return ErrAccountNotFound
			}
			if _, err := s.accounts.AdjustBalance(ctx, t.ToAccountID.UUID, t.Amount); err != nil {
				return err
			}
		}

		metadata := enrichMetadata(t.Metadata, outcome)
		ok, err := s.ledger.Settle(ctx, t.ID, status, metadata)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("deposit %s left pending state while locked", t.ID)
		}

		now := s.now()
		t.Status = status
		t.CompletedAt = &now
		t.Metadata = metadata
		res = t
		changed = true
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to finalize deposit", "reference", reference, "success", outcome.Success, "error", err)
		return nil, err
	}

	if changed {
		logger.Log.Infow("deposit finalized", "reference", reference, "status", res.Status, "amount", res.Amount)
		if res.Status == models.TxCompleted {
			settledVolume.WithLabelValues("deposit").Add(float64(res.Amount))
		}
		publishTransactions(ctx, s.kafkaWriter, *res)
	}
	return res, nil
}

// Reconcile compares the stored balance with the sum of ledger effects.
func (s *SettlementService) Reconcile(ctx context.Context, accountID uuid.UUID) (*models.Reconciliation, error) {
	var rec *models.Reconciliation
	err := s.tm.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.accounts.LockByIDs(ctx, accountID)
		if err != nil {
			return err
		}
		account, ok := locked[accountID]
		if !ok {
			return ErrAccountNotFound
		}

		expected, err := s.ledger.SumBalanceEffects(ctx, accountID)
		if err != nil {
			return err
		}

		rec = &models.Reconciliation{
			AccountID: accountID,
			Actual:    account.Balance,
			Expected:  expected,
			Drift:     account.Balance - expected,
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("reconciliation failed", "account_id", accountID, "error", err)
		return nil, err
	}

	if rec.Drift != 0 {
		logger.Log.Warnw("ledger drift detected", "account_id", accountID, "actual", rec.Actual, "expected", rec.Expected)
	}
	return rec, nil
}

func enrichMetadata(current models.MetadataColumn, outcome models.DepositOutcome) models.MetadataColumn {
	switch m := current.Metadata.(type) {
	case models.CardMetadata:
		m.ChargeID = outcome.ChargeID
		if !outcome.Success {
			m.FailureReason = outcome.FailureReason
		}
		return models.NewMetadata(m)
	case models.CryptoMetadata:
		if !outcome.Success {
			m.FailureReason = outcome.FailureReason
		}
		return models.NewMetadata(m)
	}
	return current
}

func insufficient(err error) error {
	if errors.Is(err, models.ErrInsufficientFunds) {
		return ErrNotEnoughShell
	}
	return err
}

func nullID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

// newTxHash returns a random 0x-prefixed 64 hex digit reference.
func newTxHash() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(b), nil
}
