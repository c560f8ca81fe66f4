package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

const transactionColumns = `id, type, amount, description, status, reference, from_account_id, to_account_id, metadata, created_at, completed_at`

// TransactionRepository is the append-only ledger. Rows only ever leave PENDING once.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Create appends a ledger row. CreatedAt is filled from the database.
func (r *TransactionRepository) Create(ctx context.Context, t *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (id, type, amount, description, status, reference, from_account_id, to_account_id, metadata, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), CASE WHEN $5 = 'COMPLETED' THEN NOW() END)
		RETURNING created_at, completed_at
	`
	args := []any{t.ID, t.Type, t.Amount, t.Description, t.Status, t.Reference, t.FromAccountID, t.ToAccountID, t.Metadata}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&t.CreatedAt, &t.CompletedAt)

	logQuery(query, []any{t.ID, t.Type, t.Amount, t.Status, t.Reference}, t.ID, err)

	if hasPgCode(err, pgUniqueViolation) {
		return models.ErrAlreadyExists
	}
	return err
}

// GetByID returns a ledger row or nil.
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetDepositByReferenceForUpdate locks the DEPOSIT row with the given external reference.
func (r *TransactionRepository) GetDepositByReferenceForUpdate(ctx context.Context, reference string) (*models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1 AND type = 'DEPOSIT' FOR UPDATE`
	return r.getOne(ctx, query, reference)
}

func (r *TransactionRepository) getOne(ctx context.Context, query string, arg any) (*models.TransactionDB, error) {
	var t models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &t, query, arg)

	logQuery(query, []any{arg}, t.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByAccount returns the most recent rows that touch the account.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE from_account_id = $1 OR to_account_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`

	txs := []models.TransactionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, accountID, limit)

	logQuery(query, []any{accountID, limit}, len(txs), err)

	return txs, err
}

// Settle moves a PENDING row to a terminal status, stamping completed_at and
// replacing its metadata. It reports false when the row is no longer PENDING.
func (r *TransactionRepository) Settle(ctx context.Context, id uuid.UUID, status models.TransactionStatus, metadata models.MetadataColumn) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $2, completed_at = NOW(), metadata = COALESCE($3, metadata)
		WHERE id = $1 AND status = 'PENDING'
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, status, metadata)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id, status}, rowsAffected, err)

	return rowsAffected == 1, err
}

// ListPendingWithdrawals returns ids of withdrawals that have not matured yet, oldest first.
func (r *TransactionRepository) ListPendingWithdrawals(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT id FROM transactions WHERE type = 'WITHDRAWAL' AND status = 'PENDING' ORDER BY created_at`

	ids := []uuid.UUID{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query)

	logQuery(query, nil, len(ids), err)

	return ids, err
}

// ListExpiredCryptoDeposits returns references of PENDING crypto deposits whose payment window has passed.
func (r *TransactionRepository) ListExpiredCryptoDeposits(ctx context.Context, now time.Time) ([]string, error) {
	query := `
		SELECT reference FROM transactions
		WHERE type = 'DEPOSIT' AND status = 'PENDING'
			AND metadata->>'payment_method' = 'crypto'
			AND (metadata->'data'->>'expires_at')::timestamptz < $1
	`

	refs := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &refs, query, now)

	logQuery(query, []any{now}, len(refs), err)

	return refs, err
}

// SumBalanceEffects computes the balance implied by the ledger for an account.
// It mirrors models.TransactionDB.BalanceEffect.
func (r *TransactionRepository) SumBalanceEffects(ctx context.Context, accountID uuid.UUID) (money.Amount, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::BIGINT FROM transactions
		WHERE (type IN ('DEPOSIT', 'SALE', 'REFUND') AND status = 'COMPLETED' AND to_account_id = $1)
			OR (type = 'PURCHASE' AND status = 'COMPLETED' AND from_account_id = $1)
			OR (type = 'WITHDRAWAL' AND status IN ('PENDING', 'COMPLETED') AND from_account_id = $1)
	`

	var sum money.Amount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &sum, query, accountID)

	logQuery(query, []any{accountID}, sum, err)

	return sum, err
}
