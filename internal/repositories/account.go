package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/shell-market/internal/models"
	"github.com/sbilibin2017/shell-market/internal/money"
)

const accountColumns = `id, name, password_hash, role, balance, reputation, verified, api_key, created_at, updated_at`

// AccountRepository reads and mutates account rows.
type AccountRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountRepository {
	return &AccountRepository{db: db, txGetter: txGetter}
}

// Create inserts a new account. A duplicate name yields models.ErrAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, account *models.AccountDB) error {
	query := `
		INSERT INTO accounts (id, name, password_hash, role, balance, reputation, verified, api_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{account.ID, account.Name, account.PasswordHash, account.Role, account.Balance, account.Reputation, account.Verified, account.APIKey}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&account.CreatedAt, &account.UpdatedAt)

	logQuery(query, []any{account.ID, account.Name, account.Role, account.Balance}, account.ID, err)

	if hasPgCode(err, pgUniqueViolation) {
		return models.ErrAlreadyExists
	}
	return err
}

// GetByID returns the account or nil when it does not exist.
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByName returns the account or nil when it does not exist.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1`
	return r.getOne(ctx, query, name)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, arg)

	logQuery(query, []any{arg}, account.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// LockByIDs takes row locks on the given accounts in ascending id order and
// returns them keyed by id. Must be called inside a transaction. Missing
// accounts are absent from the result.
func (r *AccountRepository) LockByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*models.AccountDB, error) {
	ordered := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i][:], ordered[j][:]) < 0
	})

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	// one statement per row keeps the lock order deterministic
	result := make(map[uuid.UUID]*models.AccountDB, len(ordered))
	for _, id := range ordered {
		var account models.AccountDB
		err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, id)

		logQuery(query, []any{id}, account.Balance, err)

		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lock account %s: %w", id, err)
		}
		result[id] = &account
	}
	return result, nil
}

// AdjustBalance adds delta to the balance and returns the new balance. It never
// lets the balance go below zero and reports models.ErrInsufficientFunds instead.
func (r *AccountRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta money.Amount) (money.Amount, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING balance
	`

	var balance money.Amount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, id, delta)

	logQuery(query, []any{id, delta}, balance, err)

	if errors.Is(err, sql.ErrNoRows) || hasPgCode(err, pgCheckViolation) {
		return 0, models.ErrInsufficientFunds
	}
	return balance, err
}
