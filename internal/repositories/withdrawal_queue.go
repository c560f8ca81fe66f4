package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/shell-market/internal/logger"
)

// WithdrawalQueueRepository is a delay queue of withdrawal ids in a Redis sorted
// set scored by the time they become due.
type WithdrawalQueueRepository struct {
	client *redis.Client
	key    string
}

func NewWithdrawalQueueRepository(client *redis.Client) *WithdrawalQueueRepository {
	return &WithdrawalQueueRepository{client: client, key: "withdrawals:pending"}
}

// Schedule enqueues id to become due at dueAt. Re-scheduling moves the due time.
func (r *WithdrawalQueueRepository) Schedule(ctx context.Context, id uuid.UUID, dueAt time.Time) error {
	added, err := r.client.ZAdd(ctx, r.key, r.member(id, dueAt)).Result()

	logger.Log.Infow(
		"queue schedule",
		"key", r.key,
		"member", id,
		"due_at", dueAt,
		"added", added,
		"error", err,
	)

	return err
}

// ScheduleIfAbsent enqueues id only when it is not queued yet; a queued id
// keeps its due time.
func (r *WithdrawalQueueRepository) ScheduleIfAbsent(ctx context.Context, id uuid.UUID, dueAt time.Time) error {
	added, err := r.client.ZAddNX(ctx, r.key, r.member(id, dueAt)).Result()

	logger.Log.Infow(
		"queue schedule if absent",
		"key", r.key,
		"member", id,
		"due_at", dueAt,
		"added", added,
		"error", err,
	)

	return err
}

func (r *WithdrawalQueueRepository) member(id uuid.UUID, dueAt time.Time) redis.Z {
	return redis.Z{Score: float64(dueAt.UnixMilli()), Member: id.String()}
}

// ClaimDue removes and returns up to limit ids due at now. Each id is handed to
// exactly one caller even when several processors poll the same queue. On a
// Redis error the ids claimed so far are returned with the error and must be
// handled by the caller.
func (r *WithdrawalQueueRepository) ClaimDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error) {
	members, err := r.client.ZRangeByScore(ctx, r.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UnixMilli(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		logger.Log.Errorw("failed to read due withdrawals", "key", r.key, "error", err)
		return nil, err
	}

	claimed := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		removed, err := r.client.ZRem(ctx, r.key, m).Result()
		if err != nil {
			logger.Log.Errorw("failed to claim withdrawal", "key", r.key, "member", m, "claimed", len(claimed), "error", err)
			return claimed, err
		}
		if removed != 1 {
			continue
		}
		id, err := uuid.Parse(m)
		if err != nil {
			logger.Log.Warnw("dropping malformed queue member", "member", m, "error", err)
			continue
		}
		claimed = append(claimed, id)
	}

	if len(claimed) > 0 {
		logger.Log.Infow("claimed due withdrawals", "key", r.key, "count", len(claimed))
	}
	return claimed, nil
}

// Len returns the number of queued withdrawals.
func (r *WithdrawalQueueRepository) Len(ctx context.Context) (int64, error) {
	return r.client.ZCard(ctx, r.key).Result()
}
