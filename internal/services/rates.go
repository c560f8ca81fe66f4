package services

import (
	"context"

	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=rates.go -destination=rates_mock.go -package=services

// ExchangeRateReader retrieves exchange rates from the exchanger service.
type ExchangeRateReader interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) // Returns rate for a currency pair
}

// ExchangeRateCache caches exchange rates.
type ExchangeRateCache interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)    // Returns cached rate
	SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error // Sets cached rate
}

// QuoteCurrency is the fiat currency deposits are denominated in.
const QuoteCurrency = "USD"

// fallbackRates are crypto units per one USD, used when no live quote is available.
var fallbackRates = map[string]decimal.Decimal{
	"ETH":  decimal.NewFromInt(1).Div(decimal.NewFromInt(2500)),
	"BTC":  decimal.NewFromInt(1).Div(decimal.NewFromInt(45000)),
	"USDC": decimal.NewFromInt(1),
	"USDT": decimal.NewFromInt(1),
}

// CryptoRateQuoter quotes how many crypto units one USD buys.
type CryptoRateQuoter struct {
	reader ExchangeRateReader
	cache  ExchangeRateCache
}

// NewCryptoRateQuoter creates a quoter. Both collaborators are optional.
func NewCryptoRateQuoter(reader ExchangeRateReader, cache ExchangeRateCache) *CryptoRateQuoter {
	return &CryptoRateQuoter{
		reader: reader,
		cache:  cache,
	}
}

// Quote returns the rate for USD -> currency: cache first, then the exchanger,
// then the fixed table.
func (q *CryptoRateQuoter) Quote(ctx context.Context, currency string) (decimal.Decimal, error) {
	if q.cache != nil {
		if rate, err := q.cache.GetRate(ctx, QuoteCurrency, currency); err == nil && rate.IsPositive() {
			return rate, nil
		}
	}

	if q.reader != nil {
		rate, err := q.reader.GetRate(ctx, QuoteCurrency, currency)
		if err == nil && rate.IsPositive() {
			if q.cache != nil {
				if err := q.cache.SetRate(ctx, QuoteCurrency, currency, rate); err != nil {
					logger.Log.Warnw("failed to cache crypto rate", "currency", currency, "error", err)
				}
			}
			return rate, nil
		}
		logger.Log.Warnw("exchanger quote unavailable, using fixed rate", "currency", currency, "error", err)
	}

	rate, ok := fallbackRates[currency]
	if !ok {
		return decimal.Zero, ErrUnsupportedCurrency
	}
	return rate, nil
}
