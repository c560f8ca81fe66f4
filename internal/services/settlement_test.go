package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settlementMocks struct {
	tm        *services.MockTxManager
	accounts  *services.MockAccountBalanceStore
	listings  *services.MockListingLocker
	purchases *services.MockPurchaseWriter
	ledger    *services.MockLedger
	scheduler *services.MockWithdrawalScheduler
}

func newSettlement(t *testing.T) (*services.SettlementService, *settlementMocks) {
	ctrl := gomock.NewController(t)
	m := &settlementMocks{
		tm:        services.NewMockTxManager(ctrl),
		accounts:  services.NewMockAccountBalanceStore(ctrl),
		listings:  services.NewMockListingLocker(ctrl),
		purchases: services.NewMockPurchaseWriter(ctrl),
		ledger:    services.NewMockLedger(ctrl),
		scheduler: services.NewMockWithdrawalScheduler(ctrl),
	}
	m.tm.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	svc := services.NewSettlementService(
		m.tm, m.accounts, m.listings, m.purchases, m.ledger, m.scheduler, nil,
		services.DefaultSettlementConfig(),
	)
	return svc, m
}

func TestSettlementService_Purchase(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()
	listingID := uuid.New()

	activeListing := func(price string) *models.ListingDB {
		return &models.ListingDB{
			ID:       listingID,
			Title:    "Prompt pack",
			Price:    money.MustParse(price),
			SellerID: sellerID,
			Status:   models.ListingActive,
		}
	}

	t.Run("splits price into seller share and fee", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.listings.EXPECT().GetForShare(gomock.Any(), listingID).Return(activeListing("15"), nil)
		m.purchases.EXPECT().Exists(gomock.Any(), buyerID, listingID).Return(false, nil)
		m.accounts.EXPECT().LockByIDs(gomock.Any(), buyerID, sellerID).Return(map[uuid.UUID]*models.AccountDB{
			buyerID:  {ID: buyerID, Balance: money.MustParse("100")},
			sellerID: {ID: sellerID, Balance: money.MustParse("100")},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), buyerID, money.MustParse("-15")).Return(money.MustParse("85"), nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), sellerID, money.MustParse("14.25")).Return(money.MustParse("114.25"), nil)
		m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		var rows []models.TransactionDB
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *models.TransactionDB) error {
				rows = append(rows, *tx)
				return nil
			}).
			Times(3)

		res, err := svc.Purchase(context.Background(), buyerID, listingID)
		require.NoError(t, err)

		assert.Equal(t, money.MustParse("85"), res.NewBalance)
		assert.Equal(t, money.MustParse("0.75"), res.Fee)
		assert.Equal(t, money.MustParse("14.25"), res.SellerReceives)
		assert.Regexp(t, `^0x[0-9a-f]{64}$`, res.Reference)
		assert.True(t, res.Purchase.Delivered)

		require.Len(t, rows, 3)
		assert.Equal(t, models.TxPurchase, rows[0].Type)
		assert.Equal(t, money.MustParse("-15"), rows[0].Amount)
		assert.Equal(t, "Purchased: Prompt pack", rows[0].Description)
		assert.Equal(t, models.TxSale, rows[1].Type)
		assert.Equal(t, money.MustParse("14.25"), rows[1].Amount)
		assert.Equal(t, models.TxFee, rows[2].Type)
		assert.Equal(t, money.MustParse("0.75"), rows[2].Amount)
		assert.Equal(t, sellerID, rows[2].FromAccountID.UUID)
		assert.False(t, rows[2].ToAccountID.Valid)
		for _, r := range rows {
			assert.Equal(t, res.Reference, r.Ref())
			assert.Equal(t, models.TxCompleted, r.Status)
		}
	})

	t.Run("skips fee row when fee rounds to zero", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.listings.EXPECT().GetForShare(gomock.Any(), listingID).Return(activeListing("0.01"), nil)
		m.purchases.EXPECT().Exists(gomock.Any(), buyerID, listingID).Return(false, nil)
		m.accounts.EXPECT().LockByIDs(gomock.Any(), buyerID, sellerID).Return(map[uuid.UUID]*models.AccountDB{
			buyerID:  {ID: buyerID, Balance: money.MustParse("1")},
			sellerID: {ID: sellerID},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), buyerID, money.MustParse("-0.01")).Return(money.MustParse("0.99"), nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), sellerID, money.MustParse("0.01")).Return(money.MustParse("0.01"), nil)
		m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := svc.Purchase(context.Background(), buyerID, listingID)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(0), res.Fee)
	})

	tests := []struct {
		name     string
		listing  *models.ListingDB
		buyer    uuid.UUID
		owned    bool
		balance  money.Amount
		wantErr  error
		wantKind error
	}{
		{
			name:     "listing missing",
			listing:  nil,
			buyer:    buyerID,
			wantErr:  services.ErrListingNotFound,
			wantKind: models.ErrNotFound,
		},
		{
			name:     "listing removed",
			listing:  &models.ListingDB{ID: listingID, SellerID: sellerID, Status: models.ListingRemoved, Price: 100},
			buyer:    buyerID,
			wantErr:  services.ErrListingInactive,
			wantKind: models.ErrInvalidState,
		},
		{
			name:     "own listing",
			listing:  activeListing("5"),
			buyer:    sellerID,
			wantErr:  services.ErrOwnListing,
			wantKind: models.ErrInvalidState,
		},
		{
			name:     "already purchased",
			listing:  activeListing("5"),
			buyer:    buyerID,
			owned:    true,
			wantErr:  services.ErrAlreadyPurchased,
			wantKind: models.ErrInvalidState,
		},
		{
			name:     "insufficient balance",
			listing:  activeListing("5"),
			buyer:    buyerID,
			balance:  money.MustParse("4.99"),
			wantErr:  services.ErrNotEnoughShell,
			wantKind: models.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSettlement(t)

			m.listings.EXPECT().GetForShare(gomock.Any(), listingID).Return(tt.listing, nil)
			if tt.listing != nil && tt.listing.Status == models.ListingActive && tt.buyer != sellerID {
				m.purchases.EXPECT().Exists(gomock.Any(), tt.buyer, listingID).Return(tt.owned, nil)
				if !tt.owned {
					m.accounts.EXPECT().LockByIDs(gomock.Any(), tt.buyer, sellerID).Return(map[uuid.UUID]*models.AccountDB{
						tt.buyer: {ID: tt.buyer, Balance: tt.balance},
						sellerID: {ID: sellerID},
					}, nil)
				}
			}

			res, err := svc.Purchase(context.Background(), tt.buyer, listingID)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestSettlementService_Purchase_UniqueViolationIsAlreadyOwned(t *testing.T) {
	svc, m := newSettlement(t)
	buyerID, sellerID, listingID := uuid.New(), uuid.New(), uuid.New()

	m.listings.EXPECT().GetForShare(gomock.Any(), listingID).Return(&models.ListingDB{
		ID: listingID, SellerID: sellerID, Status: models.ListingActive, Price: 500, Title: "x",
	}, nil)
	m.purchases.EXPECT().Exists(gomock.Any(), buyerID, listingID).Return(false, nil)
	m.accounts.EXPECT().LockByIDs(gomock.Any(), buyerID, sellerID).Return(map[uuid.UUID]*models.AccountDB{
		buyerID:  {ID: buyerID, Balance: 1000},
		sellerID: {ID: sellerID},
	}, nil)
	m.accounts.EXPECT().AdjustBalance(gomock.Any(), buyerID, money.Amount(-500)).Return(money.Amount(500), nil)
	m.accounts.EXPECT().AdjustBalance(gomock.Any(), sellerID, money.Amount(475)).Return(money.Amount(475), nil)
	m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ErrAlreadyExists)

	_, err := svc.Purchase(context.Background(), buyerID, listingID)
	assert.ErrorIs(t, err, services.ErrAlreadyPurchased)
}

func TestSettlementService_Deposit(t *testing.T) {
	accountID := uuid.New()

	t.Run("rejects non-positive amounts without touching the ledger", func(t *testing.T) {
		svc, _ := newSettlement(t)

		for _, amount := range []money.Amount{0, -100} {
			res, err := svc.Deposit(context.Background(), accountID, amount, "x", nil)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, models.ErrValidation)
		}
	})

	t.Run("credits account and records completed deposit", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
			accountID: {ID: accountID, Balance: 100},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, money.Amount(2500)).Return(money.Amount(2600), nil)
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *models.TransactionDB) error {
				assert.Equal(t, models.TxDeposit, tx.Type)
				assert.Equal(t, models.TxCompleted, tx.Status)
				assert.Equal(t, accountID, tx.ToAccountID.UUID)
				assert.Equal(t, models.MethodInstant, tx.Metadata.PaymentMethod())
				return nil
			})

		res, err := svc.Deposit(context.Background(), accountID, 2500, "Fiat Deposit via stripe_test",
			models.InstantMetadata{Source: "stripe_test", Currency: "USD"})
		require.NoError(t, err)
		assert.Equal(t, money.Amount(2600), res.NewBalance)
		assert.Equal(t, "Fiat Deposit via stripe_test", res.Transaction.Description)
		assert.Regexp(t, `^0x[0-9a-f]{64}$`, res.Transaction.Ref())
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{}, nil)

		_, err := svc.Deposit(context.Background(), accountID, 100, "x", nil)
		assert.ErrorIs(t, err, services.ErrAccountNotFound)
	})
}

func TestSettlementService_Withdraw(t *testing.T) {
	accountID := uuid.New()

	t.Run("debits full amount and schedules maturation", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
			accountID: {ID: accountID, Balance: money.MustParse("150")},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, money.MustParse("-100")).Return(money.MustParse("50"), nil)

		var rows []models.TransactionDB
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *models.TransactionDB) error {
				rows = append(rows, *tx)
				return nil
			}).
			Times(2)

		var scheduled uuid.UUID
		m.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) error {
				scheduled = id
				return nil
			})

		res, err := svc.Withdraw(context.Background(), accountID, money.MustParse("100"), "")
		require.NoError(t, err)

		assert.Equal(t, money.MustParse("50"), res.NewBalance)
		assert.Equal(t, money.MustParse("1"), res.Fee)
		assert.Equal(t, money.MustParse("99"), res.NetAmount)
		assert.Equal(t, res.Transaction.ID, scheduled)

		require.Len(t, rows, 2)
		assert.Equal(t, models.TxWithdrawal, rows[0].Type)
		assert.Equal(t, models.TxPending, rows[0].Status)
		assert.Equal(t, money.MustParse("-100"), rows[0].Amount)
		assert.Equal(t, "Withdrawal to bank_account (Net: 99.00)", rows[0].Description)
		meta, ok := rows[0].Metadata.Metadata.(models.WithdrawalMetadata)
		require.True(t, ok)
		assert.Equal(t, money.MustParse("99"), meta.NetAmount)

		assert.Equal(t, models.TxFee, rows[1].Type)
		assert.Equal(t, models.TxCompleted, rows[1].Status)
		assert.Equal(t, money.MustParse("1"), rows[1].Amount)
		assert.Equal(t, rows[0].Ref(), rows[1].Ref())
	})

	t.Run("scheduling failure does not fail the withdrawal", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
			accountID: {ID: accountID, Balance: money.MustParse("20")},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, money.MustParse("-20")).Return(money.Amount(0), nil)
		m.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.scheduler.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		res, err := svc.Withdraw(context.Background(), accountID, money.MustParse("20"), "wallet")
		require.NoError(t, err)
		assert.Equal(t, money.Amount(0), res.NewBalance)
	})

	tests := []struct {
		name     string
		amount   money.Amount
		balance  money.Amount
		wantKind error
	}{
		{"zero", 0, 0, models.ErrValidation},
		{"negative", money.MustParse("-5"), 0, models.ErrValidation},
		{"below minimum", money.MustParse("9.99"), 0, models.ErrBelowMinimum},
		{"over balance", money.MustParse("50"), money.MustParse("49.99"), models.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSettlement(t)
			if tt.balance > 0 {
				m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
					accountID: {ID: accountID, Balance: tt.balance},
				}, nil)
			}

			res, err := svc.Withdraw(context.Background(), accountID, tt.amount, "")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestSettlementService_FinalizeExternalDeposit(t *testing.T) {
	accountID := uuid.New()
	txID := uuid.New()
	ref := "pi_123"

	pending := func() *models.TransactionDB {
		return &models.TransactionDB{
			ID:          txID,
			Type:        models.TxDeposit,
			Amount:      money.MustParse("25"),
			Status:      models.TxPending,
			Reference:   &ref,
			ToAccountID: uuid.NullUUID{UUID: accountID, Valid: true},
			Metadata:    models.NewMetadata(models.CardMetadata{Currency: "USD", PaymentIntentID: ref}),
		}
	}

	t.Run("success credits the recorded amount", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetDepositByReferenceForUpdate(gomock.Any(), ref).Return(pending(), nil)
		m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
			accountID: {ID: accountID},
		}, nil)
		m.accounts.EXPECT().AdjustBalance(gomock.Any(), accountID, money.MustParse("25")).Return(money.MustParse("125"), nil)
		m.ledger.EXPECT().Settle(gomock.Any(), txID, models.TxCompleted, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.TransactionStatus, md models.MetadataColumn) (bool, error) {
				card, ok := md.Metadata.(models.CardMetadata)
				require.True(t, ok)
				assert.Equal(t, "ch_1", card.ChargeID)
				return true, nil
			})

		tx, err := svc.FinalizeExternalDeposit(context.Background(), ref, models.DepositOutcome{Success: true, ChargeID: "ch_1"})
		require.NoError(t, err)
		assert.Equal(t, models.TxCompleted, tx.Status)
		assert.NotNil(t, tx.CompletedAt)
	})

	t.Run("failure marks the row failed without crediting", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetDepositByReferenceForUpdate(gomock.Any(), ref).Return(pending(), nil)
		m.ledger.EXPECT().Settle(gomock.Any(), txID, models.TxFailed, gomock.Any()).Return(true, nil)

		tx, err := svc.FinalizeExternalDeposit(context.Background(), ref, models.DepositOutcome{FailureReason: "card_declined"})
		require.NoError(t, err)
		assert.Equal(t, models.TxFailed, tx.Status)
		card := tx.Metadata.Metadata.(models.CardMetadata)
		assert.Equal(t, "card_declined", card.FailureReason)
	})

	t.Run("terminal row is a no-op", func(t *testing.T) {
		svc, m := newSettlement(t)

		done := pending()
		done.Status = models.TxCompleted
		m.ledger.EXPECT().GetDepositByReferenceForUpdate(gomock.Any(), ref).Return(done, nil)

		tx, err := svc.FinalizeExternalDeposit(context.Background(), ref, models.DepositOutcome{Success: true})
		require.NoError(t, err)
		assert.Equal(t, models.TxCompleted, tx.Status)
	})

	t.Run("unknown reference", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetDepositByReferenceForUpdate(gomock.Any(), "missing").Return(nil, nil)

		_, err := svc.FinalizeExternalDeposit(context.Background(), "missing", models.DepositOutcome{Success: true})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSettlementService_CompleteWithdrawal(t *testing.T) {
	id := uuid.New()

	t.Run("pending row completes", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetByID(gomock.Any(), id).Return(&models.TransactionDB{ID: id, Type: models.TxWithdrawal, Status: models.TxPending}, nil)
		m.ledger.EXPECT().Settle(gomock.Any(), id, models.TxCompleted, models.MetadataColumn{}).Return(true, nil)

		done, err := svc.CompleteWithdrawal(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("already completed", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetByID(gomock.Any(), id).Return(&models.TransactionDB{ID: id, Type: models.TxWithdrawal, Status: models.TxCompleted}, nil)
		m.ledger.EXPECT().Settle(gomock.Any(), id, models.TxCompleted, models.MetadataColumn{}).Return(false, nil)

		done, err := svc.CompleteWithdrawal(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("not a withdrawal", func(t *testing.T) {
		svc, m := newSettlement(t)

		m.ledger.EXPECT().GetByID(gomock.Any(), id).Return(&models.TransactionDB{ID: id, Type: models.TxDeposit}, nil)

		_, err := svc.CompleteWithdrawal(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSettlementService_Reconcile(t *testing.T) {
	svc, m := newSettlement(t)
	accountID := uuid.New()

	m.accounts.EXPECT().LockByIDs(gomock.Any(), accountID).Return(map[uuid.UUID]*models.AccountDB{
		accountID: {ID: accountID, Balance: 12000},
	}, nil)
	m.ledger.EXPECT().SumBalanceEffects(gomock.Any(), accountID).Return(money.Amount(10000), nil)

	rec, err := svc.Reconcile(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(2000), rec.Drift)
}
