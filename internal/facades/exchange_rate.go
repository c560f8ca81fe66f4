package facades

import (
	"context"
	"fmt"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/sbilibin2017/shell-market/internal/logger"
	"github.com/shopspring/decimal"
)

// ExchangeRatesGRPCFacade quotes currency rates from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetRate returns how many units of toCurrency one unit of fromCurrency buys.
func (f *ExchangeRatesGRPCFacade) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}
	if resp.Rate <= 0 {
		return decimal.Zero, fmt.Errorf("exchanger returned non-positive rate %v for %s->%s", resp.Rate, fromCurrency, toCurrency)
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
