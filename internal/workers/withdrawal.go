package workers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/sbilibin2017/shell-market/internal/models"
)

//go:generate mockgen -source=withdrawal.go -destination=withdrawal_mock.go -package=workers

var (
	withdrawalsMatured = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shell_withdrawals_matured_total",
		Help: "Withdrawals processed by the delay queue",
	}, []string{"result"})

	depositsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shell_crypto_deposits_expired_total",
		Help: "Crypto deposits marked FAILED after their payment window closed",
	})
)

// DelayQueue is a durable queue of ids ordered by due time.
type DelayQueue interface {
	Schedule(ctx context.Context, id uuid.UUID, dueAt time.Time) error
	ScheduleIfAbsent(ctx context.Context, id uuid.UUID, dueAt time.Time) error
	ClaimDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error)
}

// WithdrawalCompleter moves a pending withdrawal to COMPLETED.
type WithdrawalCompleter interface {
	CompleteWithdrawal(ctx context.Context, id uuid.UUID) (bool, error)
}

// DepositFinalizer settles externally funded deposits.
type DepositFinalizer interface {
	FinalizeExternalDeposit(ctx context.Context, reference string, outcome models.DepositOutcome) (*models.TransactionDB, error)
}

// PendingScanner finds rows the processor is responsible for.
type PendingScanner interface {
	ListPendingWithdrawals(ctx context.Context) ([]uuid.UUID, error)
	ListExpiredCryptoDeposits(ctx context.Context, now time.Time) ([]string, error)
}

// Config controls the processor timings.
type Config struct {
	Delay      time.Duration // time between acceptance and maturation
	RetryDelay time.Duration // backoff after a failed maturation
	Interval   time.Duration // poll interval
	BatchSize  int64         // max ids claimed per poll
}

// DefaultConfig matures withdrawals three seconds after they are accepted.
func DefaultConfig() Config {
	return Config{
		Delay:      3 * time.Second,
		RetryDelay: 5 * time.Second,
		Interval:   500 * time.Millisecond,
		BatchSize:  100,
	}
}

// WithdrawalProcessor matures withdrawals after a delay and expires stale
// crypto deposits. Any number of instances may run against the same queue.
type WithdrawalProcessor struct {
	queue     DelayQueue
	completer WithdrawalCompleter
	deposits  DepositFinalizer
	scanner   PendingScanner
	cfg       Config
	now       func() time.Time
}

// NewWithdrawalProcessor creates a new WithdrawalProcessor.
func NewWithdrawalProcessor(
	queue DelayQueue,
	completer WithdrawalCompleter,
	deposits DepositFinalizer,
	scanner PendingScanner,
	cfg Config,
) *WithdrawalProcessor {
	return &WithdrawalProcessor{
		queue:     queue,
		completer: completer,
		deposits:  deposits,
		scanner:   scanner,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Schedule enqueues a withdrawal for maturation after the configured delay.
func (p *WithdrawalProcessor) Schedule(ctx context.Context, id uuid.UUID) error {
	return p.queue.Schedule(ctx, id, p.now().Add(p.cfg.Delay))
}

// Recover enqueues every PENDING withdrawal found in the database that is not
// already queued. Ids already queued keep their due time.
func (p *WithdrawalProcessor) Recover(ctx context.Context) error {
	ids, err := p.scanner.ListPendingWithdrawals(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pending withdrawals", "error", err)
		return err
	}

	due := p.now().Add(p.cfg.Delay)
	for _, id := range ids {
		if err := p.queue.ScheduleIfAbsent(ctx, id, due); err != nil {
			logger.Log.Errorw("failed to requeue withdrawal", "transaction_id", id, "error", err)
			return err
		}
	}

	logger.Log.Infow("pending withdrawals recovered", "count", len(ids))
	return nil
}

// ProcessDue claims the withdrawals that are due and matures them. It returns
// the number of withdrawals completed. Ids claimed before a queue error are
// still processed; the error is reported afterwards.
func (p *WithdrawalProcessor) ProcessDue(ctx context.Context) (int, error) {
	ids, claimErr := p.queue.ClaimDue(ctx, p.now(), p.cfg.BatchSize)
	if claimErr != nil {
		logger.Log.Errorw("failed to claim due withdrawals", "claimed", len(ids), "error", claimErr)
	}

	completed := 0
	for _, id := range ids {
		done, err := p.completer.CompleteWithdrawal(ctx, id)
		switch {
		case errors.Is(err, models.ErrNotFound):
			withdrawalsMatured.WithLabelValues("skipped").Inc()
			logger.Log.Warnw("dropping queued id that is not a withdrawal", "transaction_id", id)
		case err != nil:
			withdrawalsMatured.WithLabelValues("retry").Inc()
			logger.Log.Errorw("withdrawal maturation failed, requeueing", "transaction_id", id, "error", err)
			if err := p.queue.Schedule(ctx, id, p.now().Add(p.cfg.RetryDelay)); err != nil {
				logger.Log.Errorw("failed to requeue withdrawal", "transaction_id", id, "error", err)
			}
		case done:
			withdrawalsMatured.WithLabelValues("completed").Inc()
			completed++
		default:
			withdrawalsMatured.WithLabelValues("skipped").Inc()
		}
	}
	return completed, claimErr
}

// ExpireDeposits marks crypto deposits whose payment window has closed as FAILED.
func (p *WithdrawalProcessor) ExpireDeposits(ctx context.Context) (int, error) {
	refs, err := p.scanner.ListExpiredCryptoDeposits(ctx, p.now())
	if err != nil {
		logger.Log.Errorw("failed to list expired crypto deposits", "error", err)
		return 0, err
	}

	expired := 0
	for _, ref := range refs {
		_, err := p.deposits.FinalizeExternalDeposit(ctx, ref, models.DepositOutcome{FailureReason: "payment window expired"})
		if err != nil {
			logger.Log.Errorw("failed to expire crypto deposit", "reference", ref, "error", err)
			continue
		}
		depositsExpired.Inc()
		expired++
	}
	return expired, nil
}

// Run recovers pending work and then polls until ctx is cancelled.
func (p *WithdrawalProcessor) Run(ctx context.Context) error {
	if err := p.Recover(ctx); err != nil {
		logger.Log.Warnw("withdrawal recovery failed, continuing with queued work only", "error", err)
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	logger.Log.Infow("withdrawal processor started", "delay", p.cfg.Delay, "interval", p.cfg.Interval)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("withdrawal processor stopped")
			return ctx.Err()
		case <-ticker.C:
			p.ProcessDue(ctx)
			p.ExpireDeposits(ctx)
		}
	}
}
