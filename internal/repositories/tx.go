package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
)

// DefaultTxAttempts is how many times a transaction is run before a
// serialization or deadlock failure is reported as ErrConflictRetryable.
const DefaultTxAttempts = 3

// TxManager runs functions inside a database transaction stored in the context.
type TxManager struct {
	db       *sqlx.DB
	attempts int
}

// NewTxManager creates a TxManager.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db, attempts: DefaultTxAttempts}
}

// WithinTx runs fn in a READ COMMITTED transaction. A transaction already present
// in ctx is reused. Serialization and deadlock failures restart fn from scratch.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		logger.Log.Warnw("transaction conflict, retrying", "attempt", attempt, "error", err)
	}
	return fmt.Errorf("%w: %v", models.ErrConflictRetryable, err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor picks the transaction from ctx when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", oneLine(query),
		"args", args,
		"result", result,
		"error", err,
	)
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
