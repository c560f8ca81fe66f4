package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/jwt"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
	"github.com/sbilibin2017/shell-market/internal/repositories"
	"github.com/sbilibin2017/shell-market/internal/services"
	"github.com/sbilibin2017/shell-market/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	auth       *services.AuthService
	settlement *services.SettlementService
	listings   *services.ListingsService
	seed       *services.SeedService
	accounts   *repositories.AccountRepository
	txs        *repositories.TransactionRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	db := testutil.StartPostgres(t)

	tm := repositories.NewTxManager(db)
	accounts := repositories.NewAccountRepository(db, repositories.GetTxFromContext)
	listings := repositories.NewListingRepository(db, repositories.GetTxFromContext)
	purchases := repositories.NewPurchaseRepository(db, repositories.GetTxFromContext)
	txs := repositories.NewTransactionRepository(db, repositories.GetTxFromContext)

	return &ledgerFixture{
		auth:       services.NewAuthService(tm, accounts, txs, jwt.New(jwt.WithSecretKey("test"))),
		settlement: services.NewSettlementService(tm, accounts, listings, purchases, txs, nil, nil, services.DefaultSettlementConfig()),
		listings:   services.NewListingsService(listings),
		seed:       services.NewSeedService(tm, accounts, listings, txs),
		accounts:   accounts,
		txs:        txs,
	}
}

func (f *ledgerFixture) register(t *testing.T, name string) uuid.UUID {
	session, err := f.auth.Register(context.Background(), services.RegisterInput{Name: name, Role: models.RoleAgent})
	require.NoError(t, err)
	return session.Account.ID
}

func (f *ledgerFixture) list(t *testing.T, sellerID uuid.UUID, price string) uuid.UUID {
	l, err := f.listings.Create(context.Background(), sellerID, services.ListingInput{
		Title:       "Dataset " + price,
		Description: "A curated dataset of agent conversations.",
		Price:       money.MustParse(price),
		Category:    models.CategoryData,
	})
	require.NoError(t, err)
	return l.ID
}

func (f *ledgerFixture) balance(t *testing.T, id uuid.UUID) money.Amount {
	a, err := f.accounts.GetByID(context.Background(), id)
	require.NoError(t, err)
	return a.Balance
}

func (f *ledgerFixture) assertConserved(t *testing.T, ids ...uuid.UUID) {
	for _, id := range ids {
		rec, err := f.settlement.Reconcile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(0), rec.Drift, "account %s", id)
	}
}

func TestSettlement_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	f := newLedgerFixture(t)

	buyer := f.register(t, "buyer-bot")
	seller := f.register(t, "seller-bot")

	t.Run("welcome bonus is a recorded deposit", func(t *testing.T) {
		assert.Equal(t, services.WelcomeBonus, f.balance(t, buyer))
		rows, err := f.txs.ListByAccount(ctx, buyer, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, models.TxDeposit, rows[0].Type)
		assert.Equal(t, "Welcome Bonus", rows[0].Description)
		f.assertConserved(t, buyer, seller)
	})

	t.Run("purchase splits price exactly", func(t *testing.T) {
		listingID := f.list(t, seller, "15")

		res, err := f.settlement.Purchase(ctx, buyer, listingID)
		require.NoError(t, err)
		assert.Equal(t, money.MustParse("85"), res.NewBalance)
		assert.Equal(t, money.MustParse("85"), f.balance(t, buyer))
		assert.Equal(t, money.MustParse("114.25"), f.balance(t, seller))

		_, err = f.settlement.Purchase(ctx, buyer, listingID)
		assert.ErrorIs(t, err, models.ErrInvalidState)
		assert.Equal(t, money.MustParse("85"), f.balance(t, buyer))

		f.assertConserved(t, buyer, seller)
	})

	t.Run("concurrent purchases cannot overdraw", func(t *testing.T) {
		spender := f.register(t, "spender")
		first := f.list(t, seller, "100")
		second := f.list(t, seller, "100")

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, listingID := range []uuid.UUID{first, second} {
			wg.Add(1)
			go func(i int, listingID uuid.UUID) {
				defer wg.Done()
				_, errs[i] = f.settlement.Purchase(ctx, spender, listingID)
			}(i, listingID)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			default:
				assert.ErrorIs(t, err, models.ErrInsufficientFunds)
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, money.Amount(0), f.balance(t, spender))
		f.assertConserved(t, spender, seller)
	})

	t.Run("withdrawal debits at once and matures in place", func(t *testing.T) {
		before := f.balance(t, seller)

		res, err := f.settlement.Withdraw(ctx, seller, money.MustParse("100"), "")
		require.NoError(t, err)
		assert.Equal(t, before-money.MustParse("100"), res.NewBalance)
		assert.Equal(t, money.MustParse("1"), res.Fee)

		pending, err := f.txs.GetByID(ctx, res.Transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TxPending, pending.Status)
		f.assertConserved(t, seller)

		done, err := f.settlement.CompleteWithdrawal(ctx, res.Transaction.ID)
		require.NoError(t, err)
		assert.True(t, done)

		matured, err := f.txs.GetByID(ctx, res.Transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TxCompleted, matured.Status)
		assert.Equal(t, money.MustParse("-100"), matured.Amount)
		assert.NotNil(t, matured.CompletedAt)
		assert.Equal(t, res.NewBalance, f.balance(t, seller))

		done, err = f.settlement.CompleteWithdrawal(ctx, res.Transaction.ID)
		require.NoError(t, err)
		assert.False(t, done)
		f.assertConserved(t, seller)
	})

	t.Run("finalize replay credits once", func(t *testing.T) {
		before := f.balance(t, buyer)
		_, err := f.settlement.CreatePendingDeposit(ctx, services.PendingDeposit{
			AccountID:   buyer,
			Amount:      money.MustParse("25"),
			Reference:   "pi_replay",
			Description: "Stripe Deposit (Pending)",
			Metadata:    models.CardMetadata{Currency: "USD", PaymentIntentID: "pi_replay"},
		})
		require.NoError(t, err)
		assert.Equal(t, before, f.balance(t, buyer))

		outcome := models.DepositOutcome{Success: true, ChargeID: "ch_1"}
		for i := 0; i < 3; i++ {
			tx, err := f.settlement.FinalizeExternalDeposit(ctx, "pi_replay", outcome)
			require.NoError(t, err)
			assert.Equal(t, models.TxCompleted, tx.Status)
		}
		assert.Equal(t, before+money.MustParse("25"), f.balance(t, buyer))

		_, err = f.settlement.FinalizeExternalDeposit(ctx, "pi_unknown", outcome)
		assert.True(t, errors.Is(err, models.ErrNotFound))
		f.assertConserved(t, buyer)
	})

	t.Run("non-positive deposit writes nothing", func(t *testing.T) {
		rows, err := f.txs.ListByAccount(ctx, buyer, 100)
		require.NoError(t, err)

		_, err = f.settlement.Deposit(ctx, buyer, 0, "x", nil)
		assert.ErrorIs(t, err, models.ErrValidation)

		after, err := f.txs.ListByAccount(ctx, buyer, 100)
		require.NoError(t, err)
		assert.Len(t, after, len(rows))
	})
}

func TestSeedService_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	f := newLedgerFixture(t)
	ctx := context.Background()

	res, err := f.seed.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.SeedResult{Accounts: len(services.DemoSellers), Listings: len(services.DemoListings)}, res)

	res, err = f.seed.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.SeedResult{}, res)

	page, err := f.listings.List(ctx, models.ListingFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, len(services.DemoListings), page.Total)

	// opening balances are backed by ledger rows
	for _, d := range services.DemoSellers {
		account, err := f.accounts.GetByName(ctx, d.Name)
		require.NoError(t, err)
		require.NotNil(t, account, d.Name)
		assert.Equal(t, d.Balance, account.Balance)

		rec, err := f.settlement.Reconcile(ctx, account.ID)
		require.NoError(t, err)
		assert.Zero(t, rec.Drift, d.Name)
	}
}
