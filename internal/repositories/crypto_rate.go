package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrRateNotCached is returned on a cache miss.
var ErrRateNotCached = errors.New("rate not found in cache")

// CryptoRateCacheRepository caches crypto quotes in Redis.
type CryptoRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewCryptoRateCacheRepository creates a new repository instance with the given TTL
func NewCryptoRateCacheRepository(client *redis.Client, expiration time.Duration) *CryptoRateCacheRepository {
	return &CryptoRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("crypto_rate:%s:%s", fromCurrency, toCurrency)
}

// GetRate returns how many units of toCurrency one unit of fromCurrency buys.
func (r *CryptoRateCacheRepository) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	key := rateKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"cache get",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w for %s->%s", ErrRateNotCached, fromCurrency, toCurrency)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)

	logger.Log.Infow(
		"cache get",
		"key", key,
		"value", val,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// SetRate caches a rate with the repository TTL.
func (r *CryptoRateCacheRepository) SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	key := rateKey(fromCurrency, toCurrency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"cache set",
		"key", key,
		"rate", rate.String(),
		"error", err,
	)

	return err
}
